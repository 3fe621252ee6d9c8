package layrcli

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/layr-arb/layr/layrcompose"
	"github.com/layr-arb/layr/lib/log"
	"github.com/layr-arb/layr/lib/version"
	"github.com/layr-arb/layr/lib/xbrowser"
	"github.com/layr-arb/layr/lib/xhttp"
	"github.com/layr-arb/layr/lib/xmain"
)

type server struct {
	ctx context.Context
	ms  *xmain.State
	c   *layrcompose.Composer
}

func serve(ctx context.Context, ms *xmain.State, c *layrcompose.Composer, host, port string, open bool) error {
	l, err := net.Listen("tcp", net.JoinHostPort(host, port))
	if err != nil {
		return err
	}
	url := "http://" + l.Addr().String()
	ms.Log.Success.Printf("listening on %s", url)
	if open {
		err = xbrowser.Open(ctx, ms.Env, url, false)
		if err != nil {
			ms.Log.Warn.Printf("failed to open %s: %v", url, err)
		}
	}

	s := &server{ctx: ctx, ms: ms, c: c}
	return xhttp.Serve(ctx, time.Second*10, xhttp.NewServer(ms.Log.Warn, s.handler()), l)
}

func (s *server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/diagrams", s.route(http.MethodPost, s.handleRender))
	mux.Handle("/diagrams/", s.route(http.MethodGet, s.handleFile))
	mux.Handle("/healthz", s.route(http.MethodGet, s.handleHealth))
	return xhttp.Log(s.ms.Log, mux)
}

func (s *server) route(method string, fn xhttp.HandlerFunc) http.Handler {
	return xhttp.HandlerFuncAdapter{
		Log: s.ms.Log,
		Func: func(w http.ResponseWriter, r *http.Request) error {
			if r.Method != method {
				w.Header().Set("Allow", method)
				return xhttp.Errorf(http.StatusMethodNotAllowed, nil, "%s %s", r.Method, r.URL.Path)
			}
			return fn(w, r)
		},
	}
}

// handleRender responds with the rendered result, as a 422 when the render
// failed.
func (s *server) handleRender(w http.ResponseWriter, r *http.Request) error {
	req := &Request{}
	err := xhttp.DecodeJSON(r, req)
	if err != nil {
		return err
	}
	err = req.Validate()
	if err != nil {
		return xhttp.ErrorWrap(http.StatusBadRequest, err.Error(), err)
	}

	ctx := log.Inherit(r.Context(), s.ctx)
	resp := Render(ctx, s.c, req)
	code := http.StatusOK
	if !resp.Success() {
		code = http.StatusUnprocessableEntity
	}
	xhttp.JSON(s.ms.Log, w, code, resp)
	return nil
}

func (s *server) handleFile(w http.ResponseWriter, r *http.Request) error {
	name := strings.TrimPrefix(r.URL.Path, "/diagrams/")
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return xhttp.Errorf(http.StatusBadRequest, "invalid file name", "invalid file name %q", name)
	}
	fp := filepath.Join(s.c.Options().OutputDir, name)
	d, err := os.Stat(fp)
	if errors.Is(err, fs.ErrNotExist) {
		return xhttp.ErrorWrap(http.StatusNotFound, nil, err)
	}
	if err != nil {
		return err
	}
	if d.IsDir() {
		return xhttp.Errorf(http.StatusNotFound, nil, "%s is a directory", name)
	}
	http.ServeFile(w, r, fp)
	return nil
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) error {
	xhttp.JSON(s.ms.Log, w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": version.Version,
	})
	return nil
}
