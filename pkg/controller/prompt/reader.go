package prompt

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

type readResult struct {
	line string
	err  error
}

// lineReader reads input lines on a separate goroutine so a pending prompt
// can be abandoned when the context is cancelled
type lineReader struct {
	lines chan readResult
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan readResult)}

	go func() {
		defer close(lr.lines)
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				lr.lines <- readResult{line: strings.TrimRight(line, "\r\n")}
			}
			if err != nil {
				lr.lines <- readResult{err: err}
				return
			}
		}
	}()

	return lr
}

// ReadLine blocks until a line is available. End of input is reported as
// ErrQuit and context cancellation as ErrInterrupted.
func (lr *lineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", goerr.Wrap(ErrInterrupted, "input interrupted", goerr.V("cause", ctx.Err()))
	case res, ok := <-lr.lines:
		if !ok || errors.Is(res.err, io.EOF) {
			return "", goerr.Wrap(ErrQuit, "end of input")
		}
		if res.err != nil {
			return "", goerr.Wrap(res.err, "failed to read input")
		}
		return res.line, nil
	}
}
