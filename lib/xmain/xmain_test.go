package xmain

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"
)

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

func testState(t *testing.T, env ...string) (*State, *bytes.Buffer) {
	stderr := &bytes.Buffer{}
	ms := &State{
		Name:   "layr",
		PWD:    t.TempDir(),
		Stdin:  strings.NewReader(""),
		Stdout: nopWriteCloser{&bytes.Buffer{}},
		Stderr: nopWriteCloser{stderr},
		Env:    xos.NewEnv(env),
	}
	ms.Log = cmdlog.Log(ms.Env, stderr)
	ms.Opts = NewOpts(ms.Env, ms.Log, nil)
	return ms, stderr
}

func TestOptsEnv(t *testing.T) {
	t.Parallel()

	ms, _ := testState(t, "LAYR_PORT=9090", "LAYR_OPEN=true", "LAYR_THEME=Night")
	port, err := ms.Opts.Int64("LAYR_PORT", "port", "p", 0, "listening port")
	assert.NoError(t, err)
	open, err := ms.Opts.Bool("LAYR_OPEN", "open", "", false, "open the result")
	assert.NoError(t, err)
	theme := ms.Opts.String("LAYR_THEME", "theme", "t", "", "theme name")

	assert.NoError(t, ms.Opts.Flags.Parse([]string{"--theme", "Blueprint"}))
	assert.Equal(t, int64(9090), *port)
	assert.True(t, *open)
	assert.Equal(t, "Blueprint", *theme, "flags take precedence")

	ms, _ = testState(t, "LAYR_OPEN=maybe")
	_, err = ms.Opts.Bool("LAYR_OPEN", "open", "", false, "open the result")
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	ms, _ := testState(t)
	ms.Opts.String("LAYR_OUT_DIR", "out-dir", "o", "", "directory rendered files are written to")
	_, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	assert.NoError(t, err)

	defaults := ms.Opts.Defaults()
	assert.Contains(t, defaults, "-o, --out-dir string")
	assert.Contains(t, defaults, "($LAYR_OUT_DIR)")
	assert.Contains(t, defaults, "-v, --version")
	assert.Len(t, strings.Split(defaults, "\n"), 2)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\n  b", wrap(2, 0, "a\nb"))
	s := wrap(4, 40, "the quick brown fox jumps over the lazy dog and keeps running")
	for _, line := range strings.Split(s, "\n")[1:] {
		assert.True(t, strings.HasPrefix(line, "    "), line)
	}
	assert.Equal(t, "the quick brown fox jumps over the lazy dog and keeps running", strings.Join(strings.Fields(s), " "))
}

func TestLoadDotenv(t *testing.T) {
	t.Parallel()

	ms, _ := testState(t, "LAYR_THEME=Night")
	fp := filepath.Join(ms.PWD, ".env")
	assert.NoError(t, ms.LoadDotenv(fp), "missing file")

	err := os.WriteFile(fp, []byte("LAYR_THEME=Blueprint\nLAYR_OUT_DIR=out\n"), 0644)
	assert.NoError(t, err)
	assert.NoError(t, ms.LoadDotenv(fp))
	assert.Equal(t, "Night", ms.Env.Getenv("LAYR_THEME"))
	assert.Equal(t, "out", ms.Env.Getenv("LAYR_OUT_DIR"))
}

func TestPaths(t *testing.T) {
	t.Parallel()

	ms, _ := testState(t)
	abs := ms.AbsPath("req.json")
	assert.Equal(t, filepath.Join(ms.PWD, "req.json"), abs)
	assert.Equal(t, "req.json", ms.HumanPath(abs))
	assert.Equal(t, "-", ms.AbsPath("-"))

	assert.NoError(t, ms.WritePath("out/a.txt", []byte("hi")))
	b, err := ms.ReadPath("out/a.txt")
	assert.NoError(t, err)
	assert.Equal(t, "hi", string(b))
}

func TestMainErrors(t *testing.T) {
	t.Parallel()

	ms, _ := testState(t)
	err := ms.Main(context.Background(), nil, func(ctx context.Context, ms *State) error {
		return UsageErrorf("missing %s", "request")
	})
	var uerr UsageError
	assert.True(t, errors.As(err, &uerr))
	assert.Equal(t, "bad usage: missing request", err.Error())
	assert.Equal(t, "exiting with code 2: failed", ExitErrorf(2, "failed").Error())
}
