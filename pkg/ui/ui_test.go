package ui

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"testing"

	"github.com/arthur-debert/geommat/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func foundResult() *types.FindResult {
	return &types.FindResult{
		Name:    "wood",
		Dir:     ".",
		Found:   true,
		Scanned: 1,
		Pair: &types.Pair{
			Identity: types.Identity{Material: "wood", Variant: "01"},
			Vertex:   "gm.wood.01.vert",
			Fragment: "gm.wood.01.frag",
		},
	}
}

func listResult() *types.ListResult {
	return &types.ListResult{
		Dir: ".",
		Entries: []types.ListEntry{
			{
				MaterialFile: types.MaterialFile{Name: "gm.wood.01.vert", Material: "wood", Variant: "01", Stage: types.StageVertex},
				Counterpart:  "gm.wood.01.frag",
			},
			{
				MaterialFile: types.MaterialFile{Name: "gm.glass.01.frag", Material: "glass", Variant: "01", Stage: types.StageFragment},
			},
		},
		Pairs: []types.Pair{
			{
				Identity: types.Identity{Material: "wood", Variant: "01"},
				Vertex:   "gm.wood.01.vert",
				Fragment: "gm.wood.01.frag",
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"TERM", FormatTerminal, false},
		{"terminal", FormatTerminal, false},
		{"plain", FormatText, false},
		{"json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"xml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	for _, f := range []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON, FormatYAML} {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	assert.Equal(t, "unknown", Format(99).String())
}

func TestNewRenderer_AutoOnBufferIsText(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatAuto, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(foundResult()))
	assert.Equal(t, "found!\n", buf.String())
}

func TestNewRenderer_Unknown(t *testing.T) {
	_, err := NewRenderer(Format(42), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&types.FindResult{Name: "wood", Found: false}))
	assert.Empty(t, buf.String(), "a miss prints nothing")

	require.NoError(t, r.RenderResult(listResult()))
	assert.Equal(t, "gm.wood.01.vert -> gm.wood.01.frag\ngm.glass.01.frag (unpaired)\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New("boom")))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(foundResult()))
	assert.Contains(t, buf.String(), "found!")

	buf.Reset()
	require.NoError(t, r.RenderResult(listResult()))
	out := buf.String()
	assert.Contains(t, out, "FILE")
	assert.Contains(t, out, "gm.wood.01.vert")
	assert.Contains(t, out, "gm.wood.01.frag")
	assert.Contains(t, out, "unpaired")

	buf.Reset()
	require.NoError(t, r.RenderResult(&types.ListResult{Dir: "shaders", Entries: []types.ListEntry{}}))
	assert.Contains(t, buf.String(), "No geometry material files in shaders")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(foundResult()))

	var got map[string]interface{}
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, true, got["found"])
	pair := got["pair"].(map[string]interface{})
	assert.Equal(t, "gm.wood.01.vert", pair["vertex"])

	buf.Reset()
	require.NoError(t, r.RenderResult(listResult()))
	var list map[string]interface{}
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &list))
	entries := list["entries"].([]interface{})
	first := entries[0].(map[string]interface{})
	assert.Equal(t, "gm.wood.01.vert", first["name"], "embedded material fields are flattened")
	assert.Equal(t, "gm.wood.01.frag", first["counterpart"])
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatYAML, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(listResult()))

	var got types.ListResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *listResult(), got)

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New("boom")))
	assert.Equal(t, "error: boom\n", buf.String())
}
