/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: profiler.go
Description: Byte-distribution profiler for the Akaylee Inspector. Characterizes
undecodable payloads by their byte population: category counts, a full histogram,
the most frequent bytes, a hex preview and a coarse classification that separates
text, zero-padded, compressed-or-encrypted and generic binary data.
*/

package profile

import (
	"encoding/hex"
	"fmt"
	"sort"
)

// Classification labels for a profiled payload.
const (
	ClassText      = "text"
	ClassZeroPad   = "zero-padded"
	ClassHighNoise = "compressed-or-encrypted"
	ClassBinary    = "binary"
	ClassEmpty     = "empty"
)

// Classification thresholds over the byte population. Evaluated in order;
// the first satisfied rule labels the payload.
const (
	textPrintableRatio = 0.75
	zeroPadRatio       = 1.0 / 3.0
	highNoiseRatio     = 0.5
)

const (
	topByteCount   = 10
	hexPreviewSize = 32
)

// ByteFrequency is one entry of the most-frequent-bytes ranking
type ByteFrequency struct {
	Byte    byte    `json:"byte"`
	Hex     string  `json:"hex"`
	ASCII   string  `json:"ascii"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Summary is the full profile of a payload
type Summary struct {
	Length         int             `json:"length"`
	ZeroCount      int             `json:"zero_count"`
	PrintableCount int             `json:"printable_count"`
	ControlCount   int             `json:"control_count"`
	HighCount      int             `json:"high_count"`
	Histogram      [256]int        `json:"-"`
	TopBytes       []ByteFrequency `json:"top_bytes"`
	HexPreview     string          `json:"hex_preview"`
	Classification string          `json:"classification"`
}

// Profile computes the byte-distribution summary of data. Empty input yields
// a well-formed empty summary rather than an error.
func Profile(data []byte) Summary {
	s := Summary{Length: len(data)}
	if len(data) == 0 {
		s.Classification = ClassEmpty
		s.TopBytes = []ByteFrequency{}
		return s
	}

	for _, b := range data {
		s.Histogram[b]++
		switch {
		case b == 0:
			s.ZeroCount++
		case isPrintable(b):
			s.PrintableCount++
		case b < 32 || b == 127:
			s.ControlCount++
		default:
			s.HighCount++
		}
	}

	s.TopBytes = topBytes(&s.Histogram, len(data))
	s.HexPreview = hexPreview(data)
	s.Classification = classify(s, len(data))
	return s
}

// classify applies the threshold rules in fixed order
func classify(s Summary, total int) string {
	n := float64(total)
	switch {
	case float64(s.PrintableCount)/n > textPrintableRatio:
		return ClassText
	case float64(s.ZeroCount)/n > zeroPadRatio:
		return ClassZeroPad
	case float64(s.HighCount)/n > highNoiseRatio:
		return ClassHighNoise
	default:
		return ClassBinary
	}
}

// isPrintable covers the visible ASCII range plus tab, newline and carriage
// return, the whitespace that readable text legitimately carries.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\t' || b == '\n' || b == '\r'
}

// topBytes ranks the histogram and keeps the most frequent entries
func topBytes(hist *[256]int, total int) []ByteFrequency {
	var freqs []ByteFrequency
	for b := 0; b < 256; b++ {
		if hist[b] == 0 {
			continue
		}
		freqs = append(freqs, ByteFrequency{
			Byte:    byte(b),
			Hex:     fmt.Sprintf("0x%02x", b),
			ASCII:   asciiLabel(byte(b)),
			Count:   hist[b],
			Percent: float64(hist[b]) / float64(total) * 100,
		})
	}
	sort.SliceStable(freqs, func(i, j int) bool { return freqs[i].Count > freqs[j].Count })
	if len(freqs) > topByteCount {
		freqs = freqs[:topByteCount]
	}
	return freqs
}

// asciiLabel renders a byte as its printable character or a dot
func asciiLabel(b byte) string {
	if b >= 32 && b <= 126 {
		return string(b)
	}
	return "."
}

// hexPreview renders the leading bytes as lowercase hex
func hexPreview(data []byte) string {
	if len(data) > hexPreviewSize {
		data = data[:hexPreviewSize]
	}
	return hex.EncodeToString(data)
}

// Describe renders the summary as a plain map for embedding into block
// results alongside decoded values.
func (s Summary) Describe() map[string]interface{} {
	top := make([]interface{}, 0, len(s.TopBytes))
	for _, f := range s.TopBytes {
		top = append(top, map[string]interface{}{
			"byte":    int(f.Byte),
			"hex":     f.Hex,
			"ascii":   f.ASCII,
			"count":   f.Count,
			"percent": f.Percent,
		})
	}
	return map[string]interface{}{
		"classification":  s.Classification,
		"length":          s.Length,
		"zero_count":      s.ZeroCount,
		"printable_count": s.PrintableCount,
		"control_count":   s.ControlCount,
		"high_count":      s.HighCount,
		"top_bytes":       top,
		"hex_preview":     s.HexPreview,
	}
}
