package logger

import (
	"bufio"
	"errors"
	"io"
	"sync"
)

// asyncWriter fans log lines out to its sinks from a single goroutine so
// handlers never block on slow disks. A full queue degrades to a blocking send.
type asyncWriter struct {
	queue   chan []byte
	flushes chan chan error
	done    chan struct{}
	once    sync.Once

	sinks []*bufio.Writer

	errMu sync.Mutex
	err   error
}

func newAsyncWriter(writers []io.Writer, bufSize int) *asyncWriter {
	if bufSize <= 0 {
		bufSize = 64 * 1024
	}
	w := &asyncWriter{
		queue:   make(chan []byte, 256),
		flushes: make(chan chan error),
		done:    make(chan struct{}),
	}
	for _, out := range writers {
		if out != nil {
			w.sinks = append(w.sinks, bufio.NewWriterSize(out, bufSize))
		}
	}
	go w.run()
	return w
}

func (w *asyncWriter) run() {
	defer close(w.done)
	for {
		select {
		case line, ok := <-w.queue:
			if !ok {
				w.flush()
				return
			}
			w.write(line)
			// Flush once the burst is drained to keep tail -f responsive.
			if len(w.queue) == 0 {
				w.flush()
			}
		case ack := <-w.flushes:
			for len(w.queue) > 0 {
				w.write(<-w.queue)
			}
			ack <- w.flush()
		}
	}
}

// Write enqueues a copy of p for the writer goroutine.
func (w *asyncWriter) Write(p []byte) error {
	if err := w.loadErr(); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	line := append([]byte(nil), p...)
	select {
	case <-w.done:
		return errors.New("logger: writer closed")
	case w.queue <- line:
		return nil
	}
}

// Flush waits until every queued line reached the sinks.
func (w *asyncWriter) Flush() error {
	ack := make(chan error, 1)
	select {
	case <-w.done:
		return w.loadErr()
	case w.flushes <- ack:
		return <-ack
	}
}

// Close drains the queue and reports the first encountered write error.
func (w *asyncWriter) Close() error {
	w.once.Do(func() { close(w.queue) })
	<-w.done
	return w.loadErr()
}

func (w *asyncWriter) write(line []byte) {
	for _, s := range w.sinks {
		if _, err := s.Write(line); err != nil {
			w.storeErr(err)
		}
	}
}

func (w *asyncWriter) flush() error {
	var errs []error
	for _, s := range w.sinks {
		if err := s.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	err := errors.Join(errs...)
	w.storeErr(err)
	return err
}

func (w *asyncWriter) loadErr() error {
	w.errMu.Lock()
	defer w.errMu.Unlock()
	return w.err
}

func (w *asyncWriter) storeErr(err error) {
	if err == nil {
		return
	}
	w.errMu.Lock()
	defer w.errMu.Unlock()
	if w.err == nil {
		w.err = err
	}
}
