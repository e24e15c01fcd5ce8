package logio

import (
	"bytes"
	"sync"
)

// Writer adapts a printf-style logging function into an io.Writer: every
// complete line written is logged as one message, without its newline.
// Writer is safe to use from multiple goroutines.
type Writer struct {
	Logf func(string, ...interface{})

	mu      sync.Mutex
	partial []byte
}

// Write logs any lines completed by p, holding back a trailing partial line
// until it is completed by a later Write, or flushed by Sync.
// Never returns an error.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	n = len(p)
	for {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			break
		}
		lw.emit(p[:i])
		p = p[i+1:]
	}
	lw.partial = append(lw.partial, p...)
	return n, nil
}

// Sync logs any held back partial line.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.partial) > 0 {
		lw.emit(nil)
	}
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error { return lw.Sync() }

func (lw *Writer) emit(tail []byte) {
	line := string(lw.partial) + string(tail)
	lw.partial = lw.partial[:0]
	lw.Logf("%s", line)
}
