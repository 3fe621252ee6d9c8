package xhttp

import (
	"bufio"
	"fmt"
	"log"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"golang.org/x/text/message"

	"oss.terrastruct.com/cmdlog"
)

type ResponseWriter interface {
	http.ResponseWriter
	http.Hijacker
	http.Flusher
	writtenResponseWriter
}

var _ ResponseWriter = &responseWriter{}

// responseWriter records the status and length of a response for Log.
type responseWriter struct {
	rw http.ResponseWriter

	written  bool
	hijacked bool
	status   int
	length   int
}

func (rw *responseWriter) Header() http.Header {
	return rw.rw.Header()
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.written = true
		rw.status = statusCode
	}
	rw.rw.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(p []byte) (int, error) {
	if !rw.written && len(p) > 0 {
		rw.written = true
		if rw.status == 0 {
			rw.status = http.StatusOK
		}
	}
	rw.length += len(p)
	return rw.rw.Write(p)
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := rw.rw.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("underlying response writer does not implement http.Hijacker: %T", rw.rw)
	}
	conn, buf, err := hj.Hijack()
	if err == nil {
		rw.hijacked = true
	}
	return conn, buf, err
}

func (rw *responseWriter) Flush() {
	f, ok := rw.rw.(http.Flusher)
	if !ok {
		return
	}
	f.Flush()
}

func (rw *responseWriter) Written() bool {
	return rw.written
}

// Log logs every request with its status, size and duration and turns panics
// into 500s.
func Log(clog *cmdlog.Logger, next http.Handler) http.Handler {
	englishPrinter := message.NewPrinter(message.MatchLanguage("en"))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{
			rw: w,
		}
		start := time.Now()

		defer func() {
			rec := recover()
			if rec != nil {
				clog.Error.Printf("caught panic: %#v\n%s", rec, debug.Stack())
				if !rw.Written() {
					JSON(clog, rw, http.StatusInternalServerError, map[string]interface{}{
						"error": http.StatusText(http.StatusInternalServerError),
					})
				}
			}

			dur := time.Since(start)
			switch {
			case rw.hijacked:
				clog.Success.Printf("%s %s %v: hijacked", r.Method, r.URL, dur)
				return
			case !rw.Written():
				clog.Warn.Printf("%s %s %v: no response written", r.Method, r.URL, dur)
				return
			}

			statusLogger := statusLogger(clog, rw.status)
			lengthStr := englishPrinter.Sprint(rw.length)
			statusLogger.Printf("%s %s %d %sB %v", r.Method, r.URL, rw.status, lengthStr, dur)
		}()

		next.ServeHTTP(rw, r)
	})
}

func statusLogger(clog *cmdlog.Logger, status int) *log.Logger {
	switch {
	case 100 <= status && status <= 299:
		return clog.Success
	case 300 <= status && status <= 399:
		return clog.Info
	case 400 <= status && status <= 499:
		return clog.Warn
	default:
		return clog.Error
	}
}
