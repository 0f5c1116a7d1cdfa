/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strategist.go
Description: Decompression strategist for the Akaylee Inspector. Runs an ordered
waterfall of LZ4 block decompression attempts against a payload whose framing
convention is unknown: bounded and unbounded attempts, stray-prefix skips, a
magic-marker scan, and an offset brute force. The first success wins; total
failure is block-local and non-fatal.
*/

package decompress

import (
	"bytes"

	"github.com/pierrec/lz4/v4"
)

// MaxOutputBound is the hard ceiling on any decompression output bound,
// independent of the header hint. A hostile hint cannot request more.
const MaxOutputBound = 64 << 20

const (
	hintMultiplier  = 10
	magicScanWindow = 20
	bruteForceStart = 5
	bruteForceEnd   = 20
	minUnboundedBuf = 256
)

// frameMagic is the LZ4 frame magic number in wire order, the one 4-byte
// compression marker observed inside stray-prefixed payloads.
var frameMagic = []byte{0x04, 0x22, 0x4d, 0x18}

// Strategy identifiers reported with a successful decompression.
const (
	StrategyBoundedHint = iota + 1
	StrategyUnbounded
	StrategySkip1
	StrategySkip2
	StrategySkip4
	StrategyMagicScan
	StrategyBruteForce
)

// Decompress tries the waterfall in fixed order against the payload and
// returns the decompressed bytes with the id of the winning strategy.
// An empty payload short-circuits to success with zero-length output.
// All strategies failing returns ok=false; the input is never mutated.
func Decompress(payload []byte, hint int) (out []byte, strategy int, ok bool) {
	if len(payload) == 0 {
		return []byte{}, 0, true
	}

	tried := map[int]bool{0: true, 1: true, 2: true, 4: true}

	// 1. Bounded by the advisory hint (or the payload length when absent)
	bound := hint * hintMultiplier
	if hint <= 0 {
		bound = len(payload) * hintMultiplier
	}
	if bound > MaxOutputBound {
		bound = MaxOutputBound
	}
	if out, ok := tryBounded(payload, bound); ok {
		return out, StrategyBoundedHint, true
	}

	// 2. Without a size bound
	if out, ok := tryUnbounded(payload); ok {
		return out, StrategyUnbounded, true
	}

	// 3-5. Skip candidate stray header bytes
	skips := []struct {
		offset   int
		strategy int
	}{
		{1, StrategySkip1},
		{2, StrategySkip2},
		{4, StrategySkip4},
	}
	for _, s := range skips {
		if len(payload) <= s.offset {
			continue
		}
		if out, ok := tryUnbounded(payload[s.offset:]); ok {
			return out, s.strategy, true
		}
	}

	// 6. Scan the leading window for the frame magic marker
	window := payload
	if len(window) > magicScanWindow {
		window = window[:magicScanWindow]
	}
	if i := bytes.Index(window, frameMagic); i >= 0 {
		tried[i] = true
		if out, ok := tryUnbounded(payload[i:]); ok {
			return out, StrategyMagicScan, true
		}
	}

	// 7. Brute force the remaining leading offsets
	for offset := bruteForceStart; offset < bruteForceEnd; offset++ {
		if tried[offset] || len(payload) <= offset {
			continue
		}
		if out, ok := tryUnbounded(payload[offset:]); ok {
			return out, StrategyBruteForce, true
		}
	}

	return nil, 0, false
}

// tryBounded attempts one block decompression into a buffer of the given size
func tryBounded(data []byte, bound int) ([]byte, bool) {
	if bound <= 0 {
		return nil, false
	}
	dst := make([]byte, bound)
	n, err := lz4.UncompressBlock(data, dst)
	if err != nil {
		return nil, false
	}
	return dst[:n], true
}

// tryUnbounded grows the destination buffer geometrically up to the hard
// ceiling. The block format does not carry its own output size, so "no
// bound" means retrying until the buffer is large enough or the ceiling
// is reached.
func tryUnbounded(data []byte) ([]byte, bool) {
	bound := len(data) * 4
	if bound < minUnboundedBuf {
		bound = minUnboundedBuf
	}
	for {
		if out, ok := tryBounded(data, bound); ok {
			return out, true
		}
		if bound >= MaxOutputBound {
			return nil, false
		}
		bound *= 2
		if bound > MaxOutputBound {
			bound = MaxOutputBound
		}
	}
}
