/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sizehint_test.go
Description: Comprehensive tests for the sizehint package. Tests the precedence
ordering of the header decision table, every individual rule, the known-sample
special case and the totality guarantee over arbitrary headers.
*/

package sizehint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kleascm/akaylee-inspector/pkg/sizehint"
)

// TestDecodeRuleTable tests every rule of the decision table in isolation
func TestDecodeRuleTable(t *testing.T) {
	tests := []struct {
		name     string
		header   []byte
		size     int
		rule     string
	}{
		{
			name:   "empty header",
			header: nil,
			size:   0,
			rule:   "empty",
		},
		{
			name:   "16-bit marker big-endian",
			header: []byte{0xcd, 0x01, 0x00},
			size:   256,
			rule:   "marker-16be",
		},
		{
			name:   "32-bit marker big-endian",
			header: []byte{0xce, 0x00, 0x01, 0x00, 0x00},
			size:   65536,
			rule:   "marker-32be",
		},
		{
			name:   "known sample header",
			header: []byte{0xcc, 0x01, 0x90, 0xd9},
			size:   400,
			rule:   "known-sample",
		},
		{
			name:   "lead byte with one size byte",
			header: []byte{0xcc, 184},
			size:   184,
			rule:   "lead-bigendian",
		},
		{
			name:   "lead byte with two size bytes",
			header: []byte{0xcc, 0x01, 0x90},
			size:   400,
			rule:   "lead-bigendian",
		},
		{
			name:   "lead byte with four size bytes",
			header: []byte{0xcc, 0x00, 0x01, 0x00, 0x00},
			size:   65536,
			rule:   "lead-bigendian",
		},
		{
			name:   "lead byte with nested 16-bit marker",
			header: []byte{0xcc, 0xcd, 0x02, 0x00, 0x00, 0x00, 0x00},
			size:   512,
			rule:   "lead-bigendian",
		},
		{
			name:   "little-endian 16-bit reinterpretation",
			header: []byte{0x09, 0x64, 0x00},
			size:   100,
			rule:   "littleendian-16",
		},
		{
			name:   "fallback ratio",
			header: []byte{0x09},
			size:   4,
			rule:   "fallback-ratio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, rule := sizehint.DecodeWithRule(tt.header)
			assert.Equal(t, tt.size, size)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

// TestDecodeMarkerPrecedence tests that the 16-bit marker beats every later
// rule even when the little-endian reading would also be plausible
func TestDecodeMarkerPrecedence(t *testing.T) {
	// 0xcd lead with bytes that would also pass the little-endian check
	size, rule := sizehint.DecodeWithRule([]byte{0xcd, 0x00, 0x10})
	assert.Equal(t, "marker-16be", rule)
	assert.Equal(t, 16, size)
}

// TestDecodeKnownSampleBeatsLeadRule tests that the pinned capture header is
// matched before the generic lead-byte rule
func TestDecodeKnownSampleBeatsLeadRule(t *testing.T) {
	size, rule := sizehint.DecodeWithRule([]byte{0xcc, 0x01, 0x90, 0xd9})
	assert.Equal(t, "known-sample", rule)
	assert.Equal(t, 400, size)
}

// TestDecodeLittleEndianBounds tests the plausibility bounds of the
// little-endian reinterpretations
func TestDecodeLittleEndianBounds(t *testing.T) {
	// Zero readings are implausible in both widths
	size, rule := sizehint.DecodeWithRule([]byte{0x09, 0x00, 0x00, 0x00, 0x00})
	assert.Equal(t, "fallback-ratio", rule)
	assert.Equal(t, 20, size)

	// 32-bit reading inside its bound when the 16-bit one is not
	size, rule = sizehint.DecodeWithRule([]byte{0x09, 0x00, 0x00, 0x01, 0x00})
	assert.Equal(t, "littleendian-32", rule)
	assert.Equal(t, 65536, size)
}

// TestDecodeTotality tests that every non-empty header yields an estimate
func TestDecodeTotality(t *testing.T) {
	headers := [][]byte{
		{0x00},
		{0xff},
		{0xcc},
		{0xcd},
		{0xce, 0x01},
		{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		{0xcc, 0xcd},
		{0xcc, 0xce, 0x00},
	}

	for _, h := range headers {
		size := sizehint.Decode(h)
		assert.GreaterOrEqual(t, size, 0, "header %v", h)
	}
}
