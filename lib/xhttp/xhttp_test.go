package xhttp

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"
)

func testLogger() (*cmdlog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return cmdlog.Log(xos.NewEnv(nil), buf), buf
}

func TestHandlerFuncAdapter(t *testing.T) {
	t.Parallel()

	clog, buf := testLogger()
	h := Log(clog, HandlerFuncAdapter{
		Log: clog,
		Func: func(w http.ResponseWriter, r *http.Request) error {
			switch r.URL.Path {
			case "/bad":
				return Errorf(http.StatusBadRequest, "missing type", "request has no type")
			case "/fail":
				return errors.New("disk full")
			case "/odd":
				return Errorf(http.StatusFound, nil, "not an error code")
			}
			JSON(clog, w, http.StatusOK, nil)
			return nil
		},
	})

	tca := []struct {
		path string
		code int
		body string
	}{
		{"/ok", http.StatusOK, `{"status":"OK"}`},
		{"/bad", http.StatusBadRequest, `{"error":"missing type"}`},
		{"/fail", http.StatusInternalServerError, `{"error":"Internal Server Error"}`},
		{"/odd", http.StatusInternalServerError, `{"error":"Internal Server Error"}`},
	}
	for _, tc := range tca {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.code, rec.Code, tc.path)
		assert.Equal(t, tc.body, rec.Body.String(), tc.path)
	}
	assert.Contains(t, buf.String(), "request has no type")
	assert.Contains(t, buf.String(), "unexpected non error http status code 302")
}

func TestLogPanic(t *testing.T) {
	t.Parallel()

	clog, buf := testLogger()
	h := Log(clog, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "caught panic")
}

func TestErrorIs(t *testing.T) {
	t.Parallel()

	base := errors.New("base")
	err := ErrorWrap(http.StatusNotFound, nil, base)
	assert.True(t, errors.Is(err, Error{http.StatusNotFound, "Not Found", base}))
	assert.True(t, errors.Is(err, base))
	assert.False(t, errors.Is(err, Error{http.StatusBadRequest, "Not Found", base}))
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	var v struct {
		Type string `json:"type"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"type":"sequence"}`))
	assert.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "sequence", v.Type)

	var herr Error
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"kind":1}`))
	assert.True(t, errors.As(DecodeJSON(r, &v), &herr))
	assert.Equal(t, http.StatusBadRequest, herr.Code)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.True(t, errors.As(DecodeJSON(r, &v), &herr))
	assert.Equal(t, "empty request body", herr.Resp)

	rec := httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"type":"`+strings.Repeat("x", 64)+`"}`))
	r.Body = http.MaxBytesReader(rec, r.Body, 16)
	assert.True(t, errors.As(DecodeJSON(r, &v), &herr))
	assert.Equal(t, http.StatusRequestEntityTooLarge, herr.Code)
}

func TestServeShutdown(t *testing.T) {
	t.Parallel()

	clog, _ := testLogger()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	s := NewServer(clog.Warn, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		JSON(clog, w, http.StatusOK, nil)
	}))
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, time.Second, s, l)
	}()

	resp, err := http.Get("http://" + l.Addr().String())
	assert.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	cancel()
	assert.NoError(t, <-done)
}
