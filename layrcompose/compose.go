// Package layrcompose turns diagram records into finished images.
//
// A Composer is configured once and is safe for concurrent use. Every
// operation is a single synchronous render that returns a
// *layrtarget.Result and never panics: failures are reported through
// Result.Error.
package layrcompose

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"runtime/debug"

	"cdr.dev/slog"

	"oss.terrastruct.com/xdefer"

	"github.com/layr-arb/layr/layrtarget"
	"github.com/layr-arb/layr/layrthemes"
	"github.com/layr-arb/layr/layrthemes/layrthemescatalog"
	"github.com/layr-arb/layr/lib/env"
	"github.com/layr-arb/layr/lib/log"
)

// DEFAULT_MAX_DIMENSION bounds both sides of a canvas unless Options or
// LAYR_MAX_DIMENSION say otherwise.
const DEFAULT_MAX_DIMENSION = 8192

type Options struct {
	// Zero value means layrthemescatalog.ReviewBoard.
	Theme layrthemes.Theme
	// Rendered files are written here. Empty means the working directory.
	OutputDir string
	// Canvases wider or taller than this fail. Zero means the default.
	MaxDimension int
}

type Composer struct {
	opts    Options
	palette *layrthemes.Compiled
}

func New(opts Options) (_ *Composer, err error) {
	defer xdefer.Errorf(&err, "failed to create composer")

	if opts.Theme.Name == "" {
		opts.Theme = layrthemescatalog.ReviewBoard
	}
	if opts.MaxDimension <= 0 {
		if limit, ok := env.MaxDimension(); ok {
			opts.MaxDimension = limit
		} else {
			opts.MaxDimension = DEFAULT_MAX_DIMENSION
		}
	}
	palette, err := opts.Theme.Compile()
	if err != nil {
		return nil, err
	}
	return &Composer{
		opts:    opts,
		palette: palette,
	}, nil
}

func (c *Composer) Options() Options {
	return c.opts
}

var unsafeFileChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// FileName is the name a diagram titled title is saved under.
func FileName(title, ext string) string {
	return unsafeFileChars.ReplaceAllString(title+"_diagram"+ext, "_")
}

func (c *Composer) filePath(fileName string) string {
	if c.opts.OutputDir == "" {
		return fileName
	}
	return filepath.Join(c.opts.OutputDir, fileName)
}

func (c *Composer) write(fileName string, encode func(io.Writer) error) (_ string, err error) {
	path := c.filePath(fileName)
	defer xdefer.Errorf(&err, "failed to write %s", path)

	if c.opts.OutputDir != "" {
		err = os.MkdirAll(c.opts.OutputDir, 0755)
		if err != nil {
			return "", err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	err = encode(f)
	if err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// recoverResult converts a panic in a render into a failed result.
func recoverResult(ctx context.Context, kind string, res **layrtarget.Result) {
	v := recover()
	if v == nil {
		return
	}
	log.Error(ctx, "render panicked",
		slog.F("panic", v),
		slog.F("stack", string(debug.Stack())),
	)
	*res = layrtarget.Failure(fmt.Errorf("failed to render %s diagram: %v", kind, v))
}

func (c *Composer) checkDimensions(width, height float64) (int, int, error) {
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	if w > c.opts.MaxDimension || h > c.opts.MaxDimension {
		return 0, 0, fmt.Errorf("canvas %dx%d exceeds the maximum dimension of %d", w, h, c.opts.MaxDimension)
	}
	return w, h, nil
}

// paint runs draw on a fresh canvas and saves the result as a PNG.
// ctx already carries the diagram field.
func (c *Composer) paint(ctx context.Context, kind, title string, width, height float64, draw func(*render) error) (res *layrtarget.Result) {
	defer recoverResult(ctx, kind, &res)

	w, h, err := c.checkDimensions(width, height)
	if err != nil {
		log.Warn(ctx, "canvas too large", slog.Error(err))
		return layrtarget.Failure(err)
	}

	r, err := c.newRender(ctx, w, h)
	if err != nil {
		return layrtarget.Failure(err)
	}
	r.title(title)
	err = draw(r)
	if err != nil {
		return layrtarget.Failure(err)
	}

	fileName := FileName(title, ".png")
	filePath, err := c.write(fileName, r.canvas.EncodePNG)
	if err != nil {
		log.Error(ctx, "failed to save diagram", slog.Error(err))
		return layrtarget.Failure(err)
	}

	for _, d := range r.diags {
		log.Warn(ctx, "skipped input", slog.F("code", d.Code), slog.F("subject", d.Subject), slog.F("message", d.Message))
	}
	log.Debug(ctx, "rendered diagram",
		slog.F("path", filePath),
		slog.F("width", w),
		slog.F("height", h),
		slog.F("connectors", r.connectors),
	)
	return &layrtarget.Result{
		FileName:    fileName,
		FilePath:    filePath,
		Width:       w,
		Height:      h,
		Success:     true,
		Connectors:  r.connectors,
		Diagnostics: r.diags,
	}
}
