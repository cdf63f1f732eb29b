package command

import (
	"bufio"
	"io"
	"strings"
)

// drain reads one output stream to completion, emitting a Line update
// per terminated line. A trailing partial line with no newline is
// dropped. Read errors end the drainer without an error event; the
// supervisor's Finished update is the authoritative outcome signal.
func (m *Manager) drain(r io.Reader, prefix string, updates chan<- Update) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		select {
		case updates <- LineUpdate(prefix + line):
		case <-m.closed:
			// Consumer is gone; stop emitting.
			return
		}
	}
}
