/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: render.go
Description: Output rendering for the Akaylee Inspector. Formats processed
block results as detailed JSON, raw hex, raw binary, or a human-readable
pretty form of the recovered values.
*/

package render

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/akaylee-inspector/pkg/pipeline"
)

// Format selects the output rendering of processed results
type Format int

const (
	FormatJSON Format = iota
	FormatHex
	FormatBinary
	FormatHuman
)

// ParseFormat resolves a format name. Unknown names are an error so a typo
// never silently falls back to a different rendering.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "hex":
		return FormatHex, nil
	case "binary":
		return FormatBinary, nil
	case "human":
		return FormatHuman, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (expected json, hex, binary or human)", name)
	}
}

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatHex:
		return "hex"
	case FormatBinary:
		return "binary"
	case FormatHuman:
		return "human"
	default:
		return "unknown"
	}
}

// blockDetail is the per-block JSON rendering
type blockDetail struct {
	ID             string      `json:"id"`
	Index          int         `json:"index"`
	FormatTag      int         `json:"format_tag"`
	SizeHint       int         `json:"size_hint"`
	HintRule       string      `json:"hint_rule"`
	Strategy       int         `json:"strategy"`
	HeaderLen      int         `json:"header_len"`
	PayloadLen     int         `json:"payload_len"`
	DecodedLen     int         `json:"decoded_len"`
	Outcome        string      `json:"outcome"`
	MessagePackHex string      `json:"messagepack_hex"`
	HumanReadable  interface{} `json:"human_readable"`
}

// Render writes the processed results to w in the requested format
func Render(w io.Writer, results []pipeline.BlockResult, format Format) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, results)
	case FormatHex:
		return renderHex(w, results)
	case FormatBinary:
		return renderBinary(w, results)
	case FormatHuman:
		return renderHuman(w, results)
	default:
		return fmt.Errorf("unknown output format %d", format)
	}
}

// renderJSON emits the full per-block detail as pretty-printed JSON
func renderJSON(w io.Writer, results []pipeline.BlockResult) error {
	details := make([]blockDetail, 0, len(results))
	for _, r := range results {
		details = append(details, blockDetail{
			ID:             r.ID,
			Index:          r.Index,
			FormatTag:      r.FormatTag,
			SizeHint:       r.SizeHint,
			HintRule:       r.HintRule,
			Strategy:       r.Strategy,
			HeaderLen:      r.HeaderLen,
			PayloadLen:     r.PayloadLen,
			DecodedLen:     r.DecodedLen,
			Outcome:        r.Outcome,
			MessagePackHex: hex.EncodeToString(r.Reencoded),
			HumanReadable:  r.Value,
		})
	}
	out, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize results: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// renderHex emits the canonical MessagePack bytes of every block as one
// lowercase hex string per line.
func renderHex(w io.Writer, results []pipeline.BlockResult) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, hex.EncodeToString(r.Reencoded)); err != nil {
			return err
		}
	}
	return nil
}

// renderBinary emits the raw canonical MessagePack bytes of every block
func renderBinary(w io.Writer, results []pipeline.BlockResult) error {
	for _, r := range results {
		if _, err := w.Write(r.Reencoded); err != nil {
			return err
		}
	}
	return nil
}

// renderHuman emits the recovered values as pretty-printed JSON, one
// document per block.
func renderHuman(w io.Writer, results []pipeline.BlockResult) error {
	for _, r := range results {
		out, err := json.MarshalIndent(r.Value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize block %d value: %w", r.Index, err)
		}
		if _, err := fmt.Fprintln(w, string(out)); err != nil {
			return err
		}
	}
	return nil
}
