// Package theme defines Halo's color themes: a small palette of
// semantic colors, built-in themes, color-string parsing, and loading
// of user theme files from the themes directory.
package theme
