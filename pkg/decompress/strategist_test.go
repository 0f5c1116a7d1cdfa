/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strategist_test.go
Description: Comprehensive tests for the decompress package. Tests the strategy
waterfall ordering, bounded and unbounded attempts, stray-prefix skips, brute
force offset scanning, the empty-payload short circuit and total failure.
*/

package decompress_test

import (
	"bytes"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-inspector/pkg/decompress"
)

// compress produces an LZ4 block for test input
func compress(t *testing.T, src []byte) []byte {
	t.Helper()
	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	n, err := lz4.CompressBlock(src, dst, nil)
	require.NoError(t, err)
	require.Greater(t, n, 0, "test input must be compressible")
	return dst[:n]
}

// literalBlock encodes src as a single literal-only LZ4 sequence
func literalBlock(src []byte) []byte {
	out := []byte{byte(len(src)) << 4}
	return append(out, src...)
}

// junkPrefix is a prefix byte sequence that no offset of can decompress:
// each 0xf0 token demands a literal run far longer than the input.
func junkPrefix(n int) []byte {
	return bytes.Repeat([]byte{0xf0}, n)
}

// TestDecompressEmptyPayload tests the zero-length short circuit
func TestDecompressEmptyPayload(t *testing.T) {
	out, strategy, ok := decompress.Decompress(nil, 100)
	assert.True(t, ok)
	assert.Equal(t, 0, strategy)
	assert.Empty(t, out)
}

// TestDecompressBoundedHint tests the first strategy with an accurate hint
func TestDecompressBoundedHint(t *testing.T) {
	original := bytes.Repeat([]byte("hello world "), 50)
	payload := compress(t, original)

	out, strategy, ok := decompress.Decompress(payload, len(original))
	require.True(t, ok)
	assert.Equal(t, decompress.StrategyBoundedHint, strategy)
	assert.Equal(t, original, out)
}

// TestDecompressLiteralBlock tests a hand-built literal-only block
func TestDecompressLiteralBlock(t *testing.T) {
	payload := literalBlock([]byte("abc"))

	out, strategy, ok := decompress.Decompress(payload, 3)
	require.True(t, ok)
	assert.Equal(t, decompress.StrategyBoundedHint, strategy)
	assert.Equal(t, []byte("abc"), out)
}

// TestDecompressMisleadingHint tests that a far too small hint falls through
// to the unbounded strategy
func TestDecompressMisleadingHint(t *testing.T) {
	original := bytes.Repeat([]byte("repetitive data block "), 100)
	payload := compress(t, original)

	// Hint of 1 bounds the first attempt to 10 bytes, which cannot hold
	// the real output
	out, strategy, ok := decompress.Decompress(payload, 1)
	require.True(t, ok)
	assert.Equal(t, decompress.StrategyUnbounded, strategy)
	assert.Equal(t, original, out)
}

// TestDecompressSkipStrayPrefix tests the fixed skip offsets
func TestDecompressSkipStrayPrefix(t *testing.T) {
	block := literalBlock([]byte("xyz"))

	payload := append(junkPrefix(2), block...)
	out, strategy, ok := decompress.Decompress(payload, 3)
	require.True(t, ok)
	assert.Equal(t, decompress.StrategySkip2, strategy)
	assert.Equal(t, []byte("xyz"), out)
}

// TestDecompressBruteForce tests offsets covered by neither the fixed skips
// nor the magic scan
func TestDecompressBruteForce(t *testing.T) {
	block := literalBlock([]byte("qrs"))

	payload := append(junkPrefix(7), block...)
	out, strategy, ok := decompress.Decompress(payload, 3)
	require.True(t, ok)
	assert.Equal(t, decompress.StrategyBruteForce, strategy)
	assert.Equal(t, []byte("qrs"), out)
}

// TestDecompressTotalFailure tests that a hopeless payload fails block-locally
func TestDecompressTotalFailure(t *testing.T) {
	out, strategy, ok := decompress.Decompress([]byte{0xf0}, 5)
	assert.False(t, ok)
	assert.Equal(t, 0, strategy)
	assert.Nil(t, out)
}

// TestDecompressInputNotMutated tests that the payload survives the waterfall
func TestDecompressInputNotMutated(t *testing.T) {
	payload := append(junkPrefix(7), literalBlock([]byte("qrs"))...)
	snapshot := append([]byte(nil), payload...)

	_, _, ok := decompress.Decompress(payload, 3)
	require.True(t, ok)
	assert.Equal(t, snapshot, payload)
}

// TestDecompressZeroHint tests that an absent hint still succeeds
func TestDecompressZeroHint(t *testing.T) {
	original := bytes.Repeat([]byte("zero hint data "), 40)
	payload := compress(t, original)

	out, _, ok := decompress.Decompress(payload, 0)
	require.True(t, ok)
	assert.Equal(t, original, out)
}
