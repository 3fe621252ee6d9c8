// Package xbrowser opens rendered diagrams for viewing.
package xbrowser

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/pkg/browser"

	"oss.terrastruct.com/xos"
)

// Open shows target (a URL or a local file path) in the user's browser.
// $BROWSER takes precedence over the system default.
func Open(ctx context.Context, env *xos.Env, target string, isFile bool) error {
	if browserEnv := env.Getenv("BROWSER"); browserEnv != "" {
		browserSh := fmt.Sprintf("%s '$1'", browserEnv)
		cmd := exec.CommandContext(ctx, "sh", "-c", browserSh, "--", target)
		out, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("failed to run %v (out: %q): %w", cmd.Args, out, err)
		}
		return nil
	}
	if isFile {
		return browser.OpenFile(target)
	}
	return browser.OpenURL(target)
}
