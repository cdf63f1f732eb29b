package shellwords

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"spaces only", "   ", nil},
		{"single word", "ls", []string{"ls"}},
		{"simple args", "ls -la /tmp", []string{"ls", "-la", "/tmp"}},
		{"extra whitespace", "  git   status  ", []string{"git", "status"}},
		{"single quotes", "echo 'hello world'", []string{"echo", "hello world"}},
		{"double quotes", `echo "hello world"`, []string{"echo", "hello world"}},
		{"empty quotes", "echo ''", []string{"echo", ""}},
		{"adjacent quoted", "echo a'b c'd", []string{"echo", "ab cd"}},
		{"escaped space", `touch foo\ bar`, []string{"touch", "foo bar"}},
		{"escaped quote in double", `echo "say \"hi\""`, []string{"echo", `say "hi"`}},
		{"backslash literal in double", `echo "a\nb"`, []string{"echo", `a\nb`}},
		{"single quote keeps backslash", `echo 'a\nb'`, []string{"echo", `a\nb`}},
		{"double inside single", `echo 'he said "hi"'`, []string{"echo", `he said "hi"`}},
		{"tab separator", "a\tb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if err != nil {
				t.Fatalf("Split(%q): %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitUnterminated(t *testing.T) {
	tests := []string{
		"echo 'open",
		`echo "open`,
		`echo trailing\`,
	}

	for _, input := range tests {
		if _, err := Split(input); !errors.Is(err, ErrUnterminated) {
			t.Errorf("Split(%q) error = %v, want ErrUnterminated", input, err)
		}
	}
}
