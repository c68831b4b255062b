// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"encoding/json"
	"io"
)

// Start spins up a writer goroutine that encodes each received item as
// one JSON line. The sender must close the channel; the first error is
// reported on the returned error channel once the input drains.
// Broken-pipe classification is left to the caller.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	errCh := make(chan error, 1)

	go func() {
		enc := json.NewEncoder(out)
		var err error
		for v := range in {
			if err != nil {
				continue // drain so the sender never blocks
			}
			err = encode(enc, v)
		}
		errCh <- err
	}()

	return in, errCh
}
