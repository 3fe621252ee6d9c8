package layrcompose

import (
	"context"
	"io"

	"cdr.dev/slog"

	"github.com/layr-arb/layr/layrmarkup"
	"github.com/layr-arb/layr/layrtarget"
	"github.com/layr-arb/layr/lib/log"
)

const DEFAULT_MARKUP_TITLE = "Diagram"

// Markup hands code back for client-side rendering. With an output
// directory it is also saved as a markdown document.
func (c *Composer) Markup(ctx context.Context, code, title string) (res *layrtarget.Result) {
	if title == "" {
		title = DEFAULT_MARKUP_TITLE
	}
	ctx = log.Fields(ctx, slog.F("diagram", "markup"))
	defer recoverResult(ctx, "markup", &res)

	fileName := FileName(title, ".md")
	filePath := c.filePath(fileName)
	if c.opts.OutputDir != "" {
		var err error
		filePath, err = c.write(fileName, func(w io.Writer) error {
			_, err := io.WriteString(w, layrmarkup.Document(title, code))
			return err
		})
		if err != nil {
			log.Error(ctx, "failed to save markup", slog.Error(err))
			return layrtarget.Failure(err)
		}
	}
	log.Debug(ctx, "rendered markup", slog.F("path", filePath), slog.F("bytes", len(code)))
	return &layrtarget.Result{
		FileName: fileName,
		FilePath: filePath,
		Success:  true,
		Markup:   code,
	}
}
