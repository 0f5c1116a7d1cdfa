/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: render_test.go
Description: Comprehensive tests for the render package. Tests format name
parsing, the detailed JSON rendering, hex and binary output of the canonical
block bytes and the human-readable value rendering.
*/

package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-inspector/pkg/pipeline"
	"github.com/kleascm/akaylee-inspector/pkg/render"
)

// sampleResults builds two processed blocks for rendering tests
func sampleResults() []pipeline.BlockResult {
	return []pipeline.BlockResult{
		{
			ID:        "block-one",
			Index:     0,
			FormatTag: 98,
			SizeHint:  184,
			HintRule:  "lead-bigendian",
			Strategy:  1,
			Outcome:   pipeline.OutcomeDecoded,
			Value:     map[string]interface{}{"title": "hello"},
			Reencoded: []byte{0x92, 0xd5, 0x62, 0xcc, 0xb8},
		},
		{
			ID:        "block-two",
			Index:     1,
			FormatTag: 98,
			Outcome:   pipeline.OutcomeEmpty,
			Value:     nil,
			Reencoded: []byte{0xaa, 0xbb},
		},
	}
}

// TestParseFormat tests format name resolution
func TestParseFormat(t *testing.T) {
	for name, want := range map[string]render.Format{
		"json":   render.FormatJSON,
		"hex":    render.FormatHex,
		"binary": render.FormatBinary,
		"human":  render.FormatHuman,
		"JSON":   render.FormatJSON,
	} {
		got, err := render.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := render.ParseFormat("yaml")
	require.Error(t, err)
}

// TestRenderJSON tests the detailed JSON rendering
func TestRenderJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, render.Render(&out, sampleResults(), render.FormatJSON))

	var details []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &details))
	require.Len(t, details, 2)

	assert.Equal(t, "block-one", details[0]["id"])
	assert.Equal(t, "92d562ccb8", details[0]["messagepack_hex"])
	assert.Equal(t, "lead-bigendian", details[0]["hint_rule"])

	value, ok := details[0]["human_readable"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hello", value["title"])

	assert.Nil(t, details[1]["human_readable"])
}

// TestRenderHex tests one hex line per block
func TestRenderHex(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, render.Render(&out, sampleResults(), render.FormatHex))

	assert.Equal(t, "92d562ccb8\naabb\n", out.String())
}

// TestRenderBinary tests the raw byte concatenation
func TestRenderBinary(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, render.Render(&out, sampleResults(), render.FormatBinary))

	assert.Equal(t, []byte{0x92, 0xd5, 0x62, 0xcc, 0xb8, 0xaa, 0xbb}, out.Bytes())
}

// TestRenderHuman tests the pretty value rendering
func TestRenderHuman(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, render.Render(&out, sampleResults(), render.FormatHuman))

	rendered := out.String()
	assert.Contains(t, rendered, `"title": "hello"`)
	assert.Contains(t, rendered, "null")
}
