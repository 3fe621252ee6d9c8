package layrcompose

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/sloghuman"
	"cdr.dev/slog/sloggers/slogtest"
	"github.com/stretchr/testify/assert"

	"github.com/layr-arb/layr/layrgraph"
	"github.com/layr-arb/layr/layrtarget"
	"github.com/layr-arb/layr/layrthemes/layrthemescatalog"
	"github.com/layr-arb/layr/lib/log"
)

func newComposer(t *testing.T) *Composer {
	t.Helper()

	c, err := New(Options{OutputDir: t.TempDir()})
	assert.NoError(t, err)
	return c
}

func testContext(t *testing.T) context.Context {
	return log.WithTB(context.Background(), t, &slogtest.Options{IgnoreErrors: true})
}

func decode(t *testing.T, res *layrtarget.Result) image.Image {
	t.Helper()

	f, err := os.Open(res.FilePath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func isBackground(img image.Image, x, y int) bool {
	return color.RGBAModel.Convert(img.At(x, y)) == color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
}

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := New(Options{})
	assert.NoError(t, err)
	assert.Equal(t, layrthemescatalog.ReviewBoard.Name, c.Options().Theme.Name)
	assert.Greater(t, c.Options().MaxDimension, 0)

	broken := layrthemescatalog.ReviewBoard
	broken.Name = "broken"
	broken.Colors.Line = "not-a-color"
	_, err = New(Options{Theme: broken})
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Shop_diagram.png", FileName("Shop", ".png"))
	assert.Equal(t, "a_b_c_d_e_f_g_h_i_diagram.md", FileName(`a\b/c*d?e:f"g<h>i`, ".md"))
	assert.Equal(t, "x_y_diagram.png", FileName("x|y", ".png"))
}

func TestArchitecture(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	c := newComposer(t)
	res := c.Architecture(ctx,
		[]layrgraph.Entity{
			{Name: "API", Kind: layrgraph.KindService},
			{Name: "DB", Kind: layrgraph.KindDatabase},
		},
		[]layrgraph.Connection{{From: "API", To: "DB", Description: "queries"}},
		"Shop",
	)
	assert.True(t, res.Success, res.Error)
	assert.Equal(t, "Shop_diagram.png", res.FileName)
	assert.Equal(t, filepath.Join(c.Options().OutputDir, "Shop_diagram.png"), res.FilePath)
	assert.Equal(t, 800, res.Width)
	assert.Equal(t, 600, res.Height)
	assert.Equal(t, 1, res.Connectors)
	assert.Empty(t, res.Diagnostics)

	img := decode(t, res)
	assert.Equal(t, image.Rect(0, 0, 800, 600), img.Bounds())
	// the connector runs along y = 330 between the two cells
	assert.False(t, isBackground(img, 400, 330))
}

func TestArchitectureUnresolvedEndpoint(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	c := newComposer(t)
	res := c.Architecture(ctx,
		[]layrgraph.Entity{{Name: "API", Kind: layrgraph.KindService}},
		[]layrgraph.Connection{{From: "API", To: "Cache"}},
		"Dropped",
	)
	assert.True(t, res.Success, res.Error)
	assert.Equal(t, 0, res.Connectors)
	assert.Equal(t, 1, layrtarget.Diagnostics(res.Diagnostics).Count(layrtarget.UnresolvedEndpoint))
}

func TestArchitectureKinds(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	c := newComposer(t)
	res := c.Architecture(ctx,
		[]layrgraph.Entity{
			{Name: "A", Kind: "spaceship"},
			{Name: "B"},
			{Name: "A"},
		},
		[]layrgraph.Connection{{From: "A", To: "B", Kind: "wormhole"}},
		"Kinds",
	)
	assert.True(t, res.Success, res.Error)
	ds := layrtarget.Diagnostics(res.Diagnostics)
	assert.Equal(t, 1, ds.Count(layrtarget.UnknownEntityKind))
	assert.Equal(t, 1, ds.Count(layrtarget.UnknownConnectionKind))
	assert.Equal(t, 1, ds.Count(layrtarget.DuplicateEntity))
	assert.Equal(t, 1, res.Connectors)
}

func TestEveryEntityKind(t *testing.T) {
	t.Parallel()

	for _, k := range layrgraph.EntityKinds {
		k := k
		t.Run(string(k), func(t *testing.T) {
			t.Parallel()

			ctx := testContext(t)
			c := newComposer(t)
			entities := []layrgraph.Entity{
				{Name: "Subject", Kind: k},
				{Name: "Peer", Kind: layrgraph.KindService},
			}
			connections := []layrgraph.Connection{{From: "Subject", To: "Peer"}}

			res := c.Architecture(ctx, entities, connections, "Kind "+string(k))
			assert.True(t, res.Success, res.Error)
			assert.Equal(t, 1, res.Connectors)
			assert.FileExists(t, res.FilePath)

			res = c.Deployment(ctx, nil, []layrgraph.Component{
				{Entity: entities[0], Env: "Production"},
				{Entity: entities[1], Env: "Production"},
			}, connections, "Deploy "+string(k))
			assert.True(t, res.Success, res.Error)
			assert.Equal(t, 1, res.Connectors)
		})
	}
}

func TestLogFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := log.With(context.Background(), slog.Make(sloghuman.Sink(&buf)))
	res := newComposer(t).Architecture(ctx,
		[]layrgraph.Entity{{Name: "API", Kind: layrgraph.KindService}},
		[]layrgraph.Connection{{From: "API", To: "Cache"}},
		"Fields",
	)
	assert.True(t, res.Success, res.Error)

	var warned bool
	for _, line := range strings.Split(buf.String(), "\n") {
		if !strings.Contains(line, "skipped input") {
			continue
		}
		warned = true
		assert.Equal(t, 1, strings.Count(line, "architecture"), line)
	}
	assert.True(t, warned, buf.String())
}

func TestArchitectureEmpty(t *testing.T) {
	t.Parallel()

	res := newComposer(t).Architecture(testContext(t), nil, nil, "")
	assert.True(t, res.Success, res.Error)
	assert.Equal(t, "System Architecture_diagram.png", res.FileName)
	assert.Equal(t, 800, res.Width)
	assert.Equal(t, 600, res.Height)
}

func TestArchitectureNamelessEntity(t *testing.T) {
	t.Parallel()

	res := newComposer(t).Architecture(testContext(t), []layrgraph.Entity{{Kind: "service"}}, nil, "x")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "no name")
	assert.Empty(t, res.FilePath)
}

func TestMaxDimension(t *testing.T) {
	t.Parallel()

	c, err := New(Options{OutputDir: t.TempDir(), MaxDimension: 700})
	assert.NoError(t, err)
	res := c.Architecture(testContext(t), []layrgraph.Entity{{Name: "A"}}, nil, "big")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "exceeds")
}

func TestWriteFailure(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file")
	assert.NoError(t, os.WriteFile(file, nil, 0644))

	c, err := New(Options{OutputDir: file})
	assert.NoError(t, err)
	res := c.Architecture(testContext(t), []layrgraph.Entity{{Name: "A"}}, nil, "x")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "failed to write")
}

func TestDeploymentDefaultEnvironment(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	c := newComposer(t)
	res := c.Deployment(ctx,
		[]layrgraph.Environment{{Name: "Production"}},
		[]layrgraph.Component{
			{Entity: layrgraph.Entity{Name: "API", Kind: "service"}, Env: "Production", Host: "vm-1"},
			{Entity: layrgraph.Entity{Name: "Worker"}},
			{Entity: layrgraph.Entity{Name: "Cache", Kind: "database"}, Env: "Staging", Host: "Cache"},
		},
		[]layrgraph.Connection{{From: "API", To: "Cache"}},
		"",
	)
	assert.True(t, res.Success, res.Error)
	assert.Equal(t, "Deployment Architecture_diagram.png", res.FileName)
	assert.Equal(t, 2, layrtarget.Diagnostics(res.Diagnostics).Count(layrtarget.SynthesizedEnvironment))
	assert.Equal(t, 1, res.Connectors)
}

func TestGroupEnvironments(t *testing.T) {
	t.Parallel()

	var diags layrtarget.Diagnostics
	groups := groupEnvironments(
		[]layrgraph.Environment{{Name: "Production"}, {Name: "Production"}, {Name: "Empty"}},
		[]layrgraph.Component{
			{Entity: layrgraph.Entity{Name: "a"}, Env: "Production"},
			{Entity: layrgraph.Entity{Name: "b"}},
			{Entity: layrgraph.Entity{Name: "c"}, Env: "Staging"},
			{Entity: layrgraph.Entity{Name: "d"}},
		},
		&diags,
	)

	var names []string
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Production", "Empty", layrgraph.DefaultEnvironment, "Staging"}, names)
	assert.Equal(t, []int{0}, groups[0].members)
	assert.Empty(t, groups[1].members)
	assert.Equal(t, []int{1, 3}, groups[2].members)
	assert.Equal(t, 2, diags.Count(layrtarget.SynthesizedEnvironment))
}

func TestDeploymentManyComponents(t *testing.T) {
	t.Parallel()

	var comps []layrgraph.Component
	for i := 0; i < 20; i++ {
		comps = append(comps, layrgraph.Component{Entity: layrgraph.Entity{Name: fmt.Sprintf("svc-%d", i)}, Env: "Production"})
	}
	res := newComposer(t).Deployment(testContext(t), nil, comps, nil, "many")
	assert.True(t, res.Success, res.Error)
	assert.Equal(t, 20*60+100, res.Height)
}

func TestSequenceSelfLoop(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	c := newComposer(t)
	res := c.Sequence(ctx, []layrgraph.SequenceStep{{From: "User", To: "User", Action: "validate"}}, "Login")
	assert.True(t, res.Success, res.Error)
	assert.Equal(t, 1, res.Connectors)
	assert.Equal(t, 800, res.Width)
	assert.Equal(t, 600, res.Height)

	img := decode(t, res)
	// far side of the loop, right of the lifeline at x = 150
	assert.False(t, isBackground(img, 190, 160))
	// inside the loop
	assert.True(t, isBackground(img, 170, 160))
}

func TestSequenceNotesAndSkips(t *testing.T) {
	t.Parallel()

	res := newComposer(t).Sequence(testContext(t), []layrgraph.SequenceStep{
		{From: "User", To: "API", Action: "login", Notes: "over TLS"},
		{From: "API", Action: "lost"},
	}, "")
	assert.True(t, res.Success, res.Error)
	assert.Equal(t, 1, res.Connectors)
	assert.Equal(t, 1, layrtarget.Diagnostics(res.Diagnostics).Count(layrtarget.EmptyStep))
}

func TestDataModel(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	c := newComposer(t)
	entities := []layrgraph.Entity{
		{Name: "User", Attributes: []layrgraph.Attribute{{Name: "id", Type: "int", Key: true}, {Name: "email"}}},
		{Name: "Post", Attributes: []layrgraph.Attribute{{Name: "id", Key: true}, {Name: "user_id"}}},
		{Name: "Tag"},
	}
	res := c.DataModel(ctx, entities, []layrgraph.Connection{
		{From: "User", To: "Post"},
		{From: "Post", To: "Tag", Kind: "inheritance"},
	}, "")
	assert.True(t, res.Success, res.Error)
	assert.Equal(t, 2, res.Connectors)
	assert.Equal(t, 1, layrtarget.Diagnostics(res.Diagnostics).Count(layrtarget.UnknownConnectionKind))
	assert.Equal(t, 800, res.Width)
	assert.Equal(t, 600, res.Height)
}

func TestDataModelTallEntity(t *testing.T) {
	t.Parallel()

	var attrs []layrgraph.Attribute
	for i := 0; i < 20; i++ {
		attrs = append(attrs, layrgraph.Attribute{Name: fmt.Sprintf("col%d", i)})
	}
	res := newComposer(t).DataModel(testContext(t), []layrgraph.Entity{{Name: "Wide", Attributes: attrs}}, nil, "tall")
	assert.True(t, res.Success, res.Error)
	// the cell fits 30 + 20*20 with 40 above and below it, then the title
	// bar and bottom margin
	assert.Equal(t, 60+(430+80)+40, res.Height)
}

func TestMarkup(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	c := newComposer(t)
	res := c.Markup(ctx, "graph TD\n    a --> b", "Flow")
	assert.True(t, res.Success, res.Error)
	assert.Equal(t, "Flow_diagram.md", res.FileName)
	assert.Equal(t, "graph TD\n    a --> b", res.Markup)

	b, err := os.ReadFile(res.FilePath)
	assert.NoError(t, err)
	assert.Equal(t, "# Flow\n\n```mermaid\ngraph TD\n    a --> b\n```\n", string(b))

	noDir, err := New(Options{})
	assert.NoError(t, err)
	res = noDir.Markup(ctx, "graph TD", "")
	assert.True(t, res.Success)
	assert.Equal(t, "Diagram_diagram.md", res.FilePath)
	_, err = os.Stat(res.FilePath)
	assert.True(t, os.IsNotExist(err))
}

func TestConcurrentRenders(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	c := newComposer(t)

	var wg sync.WaitGroup
	results := make([]*layrtarget.Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Architecture(ctx,
				[]layrgraph.Entity{{Name: "Web"}, {Name: "API", Kind: "service"}, {Name: "DB", Kind: "database"}},
				[]layrgraph.Connection{{From: "Web", To: "API"}, {From: "API", To: "DB", Kind: "bidirectional"}},
				fmt.Sprintf("concurrent %d", i),
			)
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		assert.Truef(t, res.Success, "%d: %s", i, res.Error)
		assert.Equal(t, 2, res.Connectors)
	}
}

func TestTypeForKind(t *testing.T) {
	t.Parallel()

	for _, k := range layrgraph.EntityKinds {
		_, ok := TypeForKind(k)
		assert.True(t, ok, k)
	}
	got, ok := TypeForKind("Database")
	assert.True(t, ok)
	assert.Equal(t, "Cylinder", got)
	got, ok = TypeForKind("blob")
	assert.False(t, ok)
	assert.Equal(t, "Rectangle", got)
}
