// internal/writers/feature.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"genblast2gff/internal/gff"
	"genblast2gff/internal/jsonlutil"
	"genblast2gff/pkg/api"
)

// StartFeatureWriter spins up a writer goroutine for gff.Feature items
// and dispatches on the output format:
//
//	gff   — header line (unless suppressed) then one feature line each
//	json  — buffered, indented v1 JSON array
//	jsonl — one v1 JSON object per line, streaming
//
// The sender must close the returned channel; the writer's first error
// arrives on the error channel after the input drains.
func StartFeatureWriter(out io.Writer, format string, header bool, bufSize int) (chan<- gff.Feature, <-chan error) {
	if format == "jsonl" {
		return jsonlutil.Start[gff.Feature](out, bufSize,
			func(enc *json.Encoder, f gff.Feature) error {
				return enc.Encode(gff.ToAPI(f))
			})
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan gff.Feature, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "gff":
			if header {
				_, err = fmt.Fprintln(out, gff.Header)
			}
			for f := range in {
				if err != nil {
					continue
				}
				_, err = fmt.Fprintln(out, f.Line())
			}

		case "json":
			buf := []api.FeatureV1{}
			for f := range in {
				buf = append(buf, gff.ToAPI(f))
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			err = enc.Encode(buf)

		default:
			for range in {
			}
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}
