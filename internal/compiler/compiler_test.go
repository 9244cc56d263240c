package compiler

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"chuckscope/internal/config"
	"chuckscope/pkg/color"
	"chuckscope/pkg/frame"
	"chuckscope/pkg/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, dir, name, src string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestCompileVerbose(t *testing.T) {
	color.EnableColor(false)
	dir := t.TempDir()

	var out bytes.Buffer
	c := &Compiler{
		Verbose: true,
		SourceFiles: []string{
			writeSource(t, dir, "a.ck", "int x; { int y; } int z;"),
			writeSource(t, dir, "b.ck", "fun void tick(dur d) { d => now; }"),
		},
		Out: &out,
	}

	require.NoError(t, c.Compile(context.Background()))

	report := out.String()
	assert.Contains(t, report, "=== Frame Layout: "+c.SourceFiles[0])
	assert.Contains(t, report, "@code (16 bytes)")
	assert.Contains(t, report, "tick (8 bytes)")
	assert.Contains(t, report, "OFFSET")
	assert.NotContains(t, report, "Diagnostics")
}

func TestCompileReportsDiagnostics(t *testing.T) {
	color.EnableColor(false)
	dir := t.TempDir()

	var out bytes.Buffer
	c := &Compiler{
		SourceFiles: []string{writeSource(t, dir, "bad.ck", "undefinedThing => dac;")},
		Out:         &out,
	}

	err := c.Compile(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 problems")
	assert.Contains(t, out.String(), "Undefined identifier `undefinedThing`")
}

func TestCompileMissingFile(t *testing.T) {
	c := &Compiler{SourceFiles: []string{filepath.Join(t.TempDir(), "missing.ck")}, Out: &bytes.Buffer{}}

	err := c.Compile(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveKeepsOrderAndConfig(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeSource(t, dir, "1.ck", "Object @ o;"),
		writeSource(t, dir, "2.ck", "int i;"),
		writeSource(t, dir, "3.ck", "myBus => dac;"),
	}

	cfgPath := writeSource(t, dir, "chuckscope.toml", "word_size = 4\nbuiltins = [\"myBus\"]\n")
	c := &Compiler{ConfigFile: cfgPath, SourceFiles: files}

	cfg, err := c.loadConfig()
	require.NoError(t, err)

	units, err := c.Resolve(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, units, 3)

	for i, u := range units {
		assert.Equal(t, files[i], u.File)
	}
	assert.Equal(t, uint(4), units[0].Result.Frames[0].Size)
	assert.Equal(t, uint(8), units[1].Result.Frames[0].Size)
	assert.Empty(t, units[2].Result.Diagnostics)
}

func TestWordSizeFlagOverridesConfig(t *testing.T) {
	c := &Compiler{WordSize: 2}

	cfg, err := c.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, uint(2), cfg.WordSize)
	assert.Equal(t, config.Default().Buckets, cfg.Buckets)
}

func TestRenderLayouts(t *testing.T) {
	color.EnableColor(false)

	out := RenderLayouts([]resolver.Layout{
		{Name: "empty"},
		{Name: "@code", Size: 16, Locals: []resolver.LocalInfo{
			{Local: &frame.Local{Name: "osc", Size: 8, Offset: 0, IsObj: true}, Type: "SinOsc", Uses: 2},
			{Local: &frame.Local{Name: "g", Size: 8, Offset: 8, IsRef: true, IsGlobal: true}, Type: "Object", Depth: 1},
		}},
	})

	assert.Contains(t, out, "empty (0 bytes)")
	assert.Contains(t, out, "no locals")
	assert.Contains(t, out, "@code (16 bytes)")
	assert.Contains(t, out, "SinOsc")
	assert.Contains(t, out, "-o-")
	assert.Contains(t, out, "r-g")
}
