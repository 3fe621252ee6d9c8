package layrcli

import (
	"fmt"
	"path/filepath"

	"github.com/layr-arb/layr/lib/version"
	"github.com/layr-arb/layr/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--out-dir=.] [--theme=0] [--watch] request.json
  %[1]s --serve [--host=localhost] [--port=8080]
  %[1]s themes

%[1]s renders the diagram described by request.json into --out-dir and prints
the result as JSON. Use - to read the request from stdin.

A request names its type (architecture, deployment, sequence, data-model,
markup or application) and the records to draw:

  {"type": "architecture", "title": "Shop",
   "components": [{"name": "Web", "type": "service"}, {"name": "DB", "type": "database"}],
   "connections": [{"from": "Web", "to": "DB", "description": "queries"}]}

Variables in ./.env are loaded unless already set.

Flags:
%[3]s

Subcommands:
  %[1]s themes - Lists available themes
  %[1]s version - Prints the version

HTTP API (--serve):
  POST /api/diagrams - render a request, responds with the result
  GET /diagrams/<file> - a rendered file
  GET /healthz
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}
