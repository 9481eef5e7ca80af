package middleware

import "net/http"

// trackingWriter records what a handler has sent so far.
type trackingWriter struct {
	http.ResponseWriter
	status  int
	bytes   int
	started bool
}

// wrapWriter reuses w when it is already tracked, so Logger and Recovery see
// the same state.
func wrapWriter(w http.ResponseWriter) *trackingWriter {
	if tw, ok := w.(*trackingWriter); ok {
		return tw
	}
	return &trackingWriter{ResponseWriter: w, status: http.StatusOK}
}

func (w *trackingWriter) WriteHeader(code int) {
	if !w.started {
		w.status = code
		w.started = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *trackingWriter) Write(b []byte) (int, error) {
	w.started = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *trackingWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
