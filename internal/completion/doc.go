// Package completion generates context-aware suggestions for the input
// line. The first word completes against executables on PATH plus the
// shell builtins; later words complete against filesystem paths, with
// cd restricted to directories.
package completion
