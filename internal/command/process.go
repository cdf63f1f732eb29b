package command

import (
	"io"
	"os/exec"
	"syscall"
)

// running bundles a started process with its captured output streams.
// The supervisor exclusively owns cmd for the rest of its lifetime.
type running struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr io.ReadCloser
}

// launch starts program with args in cwd, stdout and stderr piped and
// stdin disconnected. The child gets its own process group so that a
// group kill also reaps anything it spawned.
//
// A failed launch leaves no state behind: Start closes both pipes on
// failure and no goroutines have been started yet.
func launch(program string, args []string, cwd string) (*running, error) {
	cmd := exec.Command(program, args...)
	cmd.Dir = cwd
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &SpawnError{Program: program, Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &SpawnError{Program: program, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Program: program, Err: err}
	}

	return &running{cmd: cmd, stdout: stdout, stderr: stderr}, nil
}
