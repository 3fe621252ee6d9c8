// Package layrcli implements the layr command: render a request file, watch
// it for changes, or serve the HTTP API.
package layrcli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/xjson"

	"github.com/layr-arb/layr/layrcompose"
	"github.com/layr-arb/layr/layrthemes"
	"github.com/layr-arb/layr/layrthemes/layrthemescatalog"
	"github.com/layr-arb/layr/lib/log"
	"github.com/layr-arb/layr/lib/version"
	"github.com/layr-arb/layr/lib/xbrowser"
	"github.com/layr-arb/layr/lib/xmain"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	ctx = log.WithWriter(ctx, ms.Stderr)

	outDirFlag := ms.Opts.String("LAYR_OUT_DIR", "out-dir", "o", ".", "directory rendered files are written to")
	themeFlag := ms.Opts.String("LAYR_THEME", "theme", "t", "", "theme name or ID, as listed by the themes subcommand (default Review Board)")
	themeFileFlag := ms.Opts.String("LAYR_THEME_FILE", "theme-file", "", "", "HCL theme file. Colors it leaves out come from --theme")
	maxDimensionFlag, err := ms.Opts.Int64("LAYR_MAX_DIMENSION", "max-dimension", "", 0, fmt.Sprintf("largest canvas side in pixels (default %d)", layrcompose.DEFAULT_MAX_DIMENSION))
	if err != nil {
		return err
	}
	openFlag, err := ms.Opts.Bool("LAYR_OPEN", "open", "", false, "open rendered files in the browser. With --serve, opens the server")
	if err != nil {
		return err
	}
	watchFlag, err := ms.Opts.Bool("LAYR_WATCH", "watch", "w", false, "re-render whenever the request file changes")
	if err != nil {
		return err
	}
	serveFlag, err := ms.Opts.Bool("LAYR_SERVE", "serve", "s", false, "serve the HTTP API on --host and --port")
	if err != nil {
		return err
	}
	hostFlag := ms.Opts.String("HOST", "host", "", "localhost", "host listening address when used with serve")
	portFlag := ms.Opts.String("PORT", "port", "p", "8080", "port listening address when used with serve. 0 picks a free port")
	debugFlag, err := ms.Opts.Bool("LAYR_DEBUG", "debug", "d", false, "print debug logs")
	if err != nil {
		ms.Log.Warn.Printf("Invalid LAYR_DEBUG flag value ignored")
		f := false
		debugFlag = &f
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}
	if err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
		ms.Env.Setenv("DEBUG", "1")
	}

	args := ms.Opts.Flags.Args()
	if len(args) > 0 {
		switch args[0] {
		case "themes":
			fmt.Fprintf(ms.Stdout, "Available themes:\n%s", layrthemescatalog.CLIString())
			return nil
		case "version":
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
	}
	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}
	if len(args) > 1 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	theme, err := resolveTheme(ms, *themeFlag, *themeFileFlag)
	if err != nil {
		return err
	}
	ms.Log.Debug.Printf("using theme %s (ID: %d)", theme.Name, theme.ID)

	c, err := layrcompose.New(layrcompose.Options{
		Theme:        theme,
		OutputDir:    ms.AbsPath(*outDirFlag),
		MaxDimension: int(*maxDimensionFlag),
	})
	if err != nil {
		return err
	}

	if *serveFlag {
		if len(args) > 0 {
			return xmain.UsageErrorf("--serve takes no request file")
		}
		return serve(ctx, ms, c, *hostFlag, *portFlag, *openFlag)
	}

	if len(args) == 0 {
		help(ms)
		return nil
	}
	inputPath := ms.AbsPath(args[0])

	if *watchFlag {
		if inputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading the request from stdin")
		}
		w, err := newWatcher(ms, c, inputPath, *openFlag)
		if err != nil {
			return err
		}
		return w.run(ctx)
	}

	resp, err := renderFile(ctx, ms, c, inputPath)
	if err != nil {
		return err
	}
	if *openFlag {
		openFiles(ctx, ms, resp)
	}
	if !resp.Success() {
		return xmain.ExitErrorf(1, "failed to render %s", ms.HumanPath(inputPath))
	}
	return nil
}

// resolveTheme finds the catalog theme named or numbered by name and
// overlays the theme file on it.
func resolveTheme(ms *xmain.State, name, file string) (layrthemes.Theme, error) {
	theme := layrthemescatalog.ReviewBoard
	if name != "" {
		if id, err := strconv.ParseInt(name, 10, 64); err == nil {
			theme = layrthemescatalog.Find(id)
		} else {
			theme = layrthemescatalog.FindByName(name)
		}
		if theme.Name == "" {
			return layrthemes.Theme{}, xmain.UsageErrorf("-t[heme] could not be found. The available options are:\n%s\nYou provided: %s", layrthemescatalog.CLIString(), name)
		}
	}
	if file != "" {
		t, err := layrthemes.LoadFile(ms.AbsPath(file), theme)
		if err != nil {
			return layrthemes.Theme{}, xmain.UsageErrorf("%v", err)
		}
		theme = t
	}
	return theme, nil
}

// renderFile renders the request at inputPath and prints the response to stdout.
func renderFile(ctx context.Context, ms *xmain.State, c *layrcompose.Composer, inputPath string) (*Response, error) {
	b, err := ms.ReadPath(inputPath)
	if err != nil {
		return nil, err
	}
	req, err := DecodeRequest(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ms.HumanPath(inputPath), err)
	}

	resp := Render(ctx, c, req)
	_, err = ms.Stdout.Write(append([]byte(xjson.MarshalIndent(resp)), '\n'))
	if err != nil {
		return nil, err
	}

	for _, fp := range resp.Files() {
		ms.Log.Success.Printf("rendered %s to %s", ms.HumanPath(inputPath), ms.HumanPath(fp))
	}
	return resp, nil
}

func openFiles(ctx context.Context, ms *xmain.State, resp *Response) {
	for _, fp := range resp.Files() {
		err := xbrowser.Open(ctx, ms.Env, fp, true)
		if err != nil {
			ms.Log.Warn.Printf("failed to open %s: %v", ms.HumanPath(fp), err)
		}
	}
}
