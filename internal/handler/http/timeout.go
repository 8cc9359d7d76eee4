package http

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"

	"textstats/internal/handler/http/respond"
)

// Timeout returns middleware that enforces a per-request deadline.
// The handler runs with a context cancelled after d and writes into a buffer;
// the buffer is copied to the client only if the handler finishes in time.
// Otherwise the client gets 504 {"error":"request timeout"} and later writes
// from the handler fail with http.ErrHandlerTimeout.
// A panic in the handler is re-raised on the serving goroutine so Recover sees it.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutWriter{
				header: make(http.Header),
				code:   http.StatusOK,
			}

			done := make(chan struct{})
			panicked := make(chan any, 1)
			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				dst := w.Header()
				for k, vv := range tw.header {
					dst[k] = vv
				}
				w.WriteHeader(tw.code)
				_, _ = w.Write(tw.buf.Bytes())
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				respond.SafeError(w, http.StatusGatewayTimeout,
					respond.NewAppError(http.StatusGatewayTimeout, respond.MsgRequestTimeout, nil))
			}
		})
	}
}

// timeoutWriter buffers a handler's response until Timeout decides its fate.
type timeoutWriter struct {
	mu          sync.Mutex
	header      http.Header
	buf         bytes.Buffer
	code        int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.wroteHeader = true
	tw.code = code
}

func (tw *timeoutWriter) Write(p []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.wroteHeader = true
	}
	return tw.buf.Write(p)
}
