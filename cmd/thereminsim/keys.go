package main

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// rawKeys puts the terminal in raw mode and streams key presses. The
// returned restore function must be called before exit.
func rawKeys() (<-chan byte, func(), error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, err
	}
	keys := make(chan byte, 16)
	go func() {
		buf := make([]byte, 1)
		for {
			if _, err := os.Stdin.Read(buf); err != nil {
				close(keys)
				return
			}
			keys <- buf[0]
		}
	}()
	return keys, func() { term.Restore(fd, state) }, nil
}

// crlfWriter restores line starts on a raw terminal.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	if _, err := c.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
