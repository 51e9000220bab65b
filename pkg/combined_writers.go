package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees log output to every writer. A failing writer, like a log
// file on a full disk, does not stop the others.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{
		writers: make([]io.Writer, 0, len(writers)),
	}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}

// Write returns the most bytes any single writer took, and the errors of all failed writers.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		written int
		errs    error
	)
	for _, w := range cw.writers {
		n, err := w.Write(p)
		if err != nil {
			errs = multierr.Append(errs, err)
		}
		written = max(written, n)
	}
	return written, errs
}
