// Package shellwords splits a command line into words the way a POSIX
// shell tokenizes arguments: whitespace separates words, single quotes
// preserve their contents literally, double quotes allow backslash
// escapes, and a bare backslash escapes the next character.
//
// It performs tokenization only. There is no expansion, globbing, or
// operator handling; Halo does not implement a shell grammar.
package shellwords

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnterminated is returned when the input ends inside a quoted
// region or immediately after a backslash.
var ErrUnterminated = errors.New("mismatched quotes")

// Split tokenizes input into words. Empty input yields a nil slice.
func Split(input string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		inWord  bool
	)

	runes := []rune(input)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
			i++

		case r == '\'':
			inWord = true
			end := indexFrom(runes, i+1, '\'')
			if end < 0 {
				return nil, ErrUnterminated
			}
			current.WriteString(string(runes[i+1 : end]))
			i = end + 1

		case r == '"':
			inWord = true
			i++
			closed := false
			for i < len(runes) {
				c := runes[i]
				if c == '"' {
					closed = true
					i++
					break
				}
				if c == '\\' && i+1 < len(runes) {
					next := runes[i+1]
					// Inside double quotes a backslash only escapes
					// characters that are special there.
					if next == '"' || next == '\\' || next == '$' || next == '`' {
						current.WriteRune(next)
						i += 2
						continue
					}
				}
				current.WriteRune(c)
				i++
			}
			if !closed {
				return nil, ErrUnterminated
			}

		case r == '\\':
			if i+1 >= len(runes) {
				return nil, ErrUnterminated
			}
			inWord = true
			current.WriteRune(runes[i+1])
			i += 2

		default:
			inWord = true
			current.WriteRune(r)
			i++
		}
	}

	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}

func indexFrom(runes []rune, start int, want rune) int {
	for i := start; i < len(runes); i++ {
		if runes[i] == want {
			return i
		}
	}
	return -1
}
