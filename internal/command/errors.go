package command

import "fmt"

// SpawnError reports a command that could not be started, typically
// because the program was not found or the OS refused to start it.
type SpawnError struct {
	// Program is the program name as given to Spawn.
	Program string

	// Err is the underlying OS error.
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("%s: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
