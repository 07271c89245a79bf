// Package console implements the text prompts and board rendering for a terminal session.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Terminal reads answers line by line and prints the game to the output.
type Terminal struct {
	out     *termenv.Output
	scanner *bufio.Scanner

	once    sync.Once
	lines   chan string
	readErr error
}

// New creates a terminal. With color disabled the output is plain ASCII.
func New(in io.Reader, out io.Writer, color bool) *Terminal {
	var output *termenv.Output
	if color {
		output = termenv.NewOutput(out)
	} else {
		output = termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	}

	return &Terminal{
		out:     output,
		scanner: bufio.NewScanner(in),
	}
}

// readLine blocks until a line is available, the input ends or ctx is done.
func (that *Terminal) readLine(ctx context.Context) (string, error) {
	that.once.Do(that.startReader)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			if that.readErr != nil {
				return "", fmt.Errorf("failed to read input: %w", that.readErr)
			}
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

// startReader moves the blocking reads off the game loop so a cancelled context can interrupt a prompt.
func (that *Terminal) startReader() {
	that.lines = make(chan string)

	go func() {
		defer close(that.lines)

		for that.scanner.Scan() {
			that.lines <- that.scanner.Text()
		}
		that.readErr = that.scanner.Err()
	}()
}

func (that *Terminal) println(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(that.out, line)
	}
}
