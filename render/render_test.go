package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/riskpath/astar"
	"github.com/katalvlaran/riskpath/render"
	"github.com/katalvlaran/riskpath/riskgrid"
)

func TestGrid_Plain(t *testing.T) {
	g, err := riskgrid.Parse([]string{"116", "138", "213"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Grid(&buf, g, nil, render.ColorAuto))
	assert.Equal(t, "116\n138\n213\n\n", buf.String(), "a bytes.Buffer is not a terminal")
}

func TestGrid_Emphasis(t *testing.T) {
	g, err := riskgrid.Parse([]string{"116", "138", "213"})
	require.NoError(t, err)
	res, err := astar.Search(g)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Grid(&buf, g, res.Path, render.ColorAlways))
	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 5)

	// Row 0: (0,0) on path, rest off.
	assert.Equal(t, "\x1b[1m1\x1b[0m\x1b[2m16\x1b[0m", lines[0])
	// Row 2: whole row on path.
	assert.Equal(t, "\x1b[1m213\x1b[0m", lines[2])
	assert.Equal(t, "", lines[3])
}

func TestGrid_NoPathMarksEnds(t *testing.T) {
	g, err := riskgrid.Parse([]string{"12", "34"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Grid(&buf, g, nil, render.ColorAlways))
	assert.Equal(t,
		"\x1b[1m1\x1b[0m\x1b[2m2\x1b[0m\n\x1b[2m3\x1b[0m\x1b[1m4\x1b[0m\n\n",
		buf.String())

	buf.Reset()
	require.NoError(t, render.Grid(&buf, g, nil, render.ColorNever))
	assert.Equal(t, "12\n34\n\n", buf.String())
}
