/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: envelope.go
Description: Envelope parser for the Akaylee Inspector. Splits a capture document
into ordered header/payload block pairs. The envelope grammar is not authoritative:
pairing mismatches are skipped defensively rather than aborting, and only whole-batch
structural defects are surfaced as errors.
*/

package envelope

import (
	"encoding/json"
	"fmt"
)

// SupportedTag is the only format tag processed on the happy path.
// Any differing tag among collected blocks is a batch-wide structural failure.
const SupportedTag = 98

// Block is one header/payload descriptor pair from the envelope sequence.
// Created once by Parse and consumed read-only by the rest of the pipeline.
type Block struct {
	FormatTag int    `json:"format_tag"` // Discriminator from the header descriptor
	Header    []byte `json:"header"`     // Nested header bytes; never empty for a well-formed block
	Payload   []byte `json:"payload"`    // Compressed payload bytes; may be empty
}

// StructuralError marks a defect that invalidates the whole batch: too few
// descriptors, no valid block pairs, or an unsupported format tag.
type StructuralError struct {
	Reason string
}

// Error returns the structural failure description
func (e *StructuralError) Error() string {
	return "structural error: " + e.Reason
}

// NewStructuralError creates a StructuralError with a formatted reason
func NewStructuralError(format string, args ...interface{}) *StructuralError {
	return &StructuralError{Reason: fmt.Sprintf(format, args...)}
}

// Parse splits a capture document into ordered blocks. The document is a JSON
// array where blocks occupy consecutive position pairs: a header descriptor
// {"type": <tag>, "buffer": {"data": [...]}} followed by a payload descriptor
// {"data": [...]}. Elements that do not pair up are skipped one position at a
// time; the scan only fails if the document is malformed, has fewer than two
// elements, or yields zero valid blocks.
func Parse(document string) ([]Block, error) {
	var elements []interface{}
	if err := json.Unmarshal([]byte(document), &elements); err != nil {
		return nil, NewStructuralError("failed to parse envelope document: %v", err)
	}

	if len(elements) < 2 {
		return nil, NewStructuralError("envelope must contain at least 2 elements, got %d", len(elements))
	}

	blocks := make([]Block, 0, len(elements)/2)
	i := 0
	for i < len(elements)-1 {
		block, ok := pairAt(elements, i)
		if !ok {
			// Pairing mismatch: advance one position and keep scanning
			i++
			continue
		}
		blocks = append(blocks, block)
		i += 2
	}

	if len(blocks) == 0 {
		return nil, NewStructuralError("no valid header/payload block pairs found in %d elements", len(elements))
	}

	return blocks, nil
}

// pairAt attempts to read a header/payload pair starting at position i
func pairAt(elements []interface{}, i int) (Block, bool) {
	header, ok := elements[i].(map[string]interface{})
	if !ok {
		return Block{}, false
	}

	tag, ok := intField(header, "type")
	if !ok {
		return Block{}, false
	}

	buffer, ok := header["buffer"].(map[string]interface{})
	if !ok {
		return Block{}, false
	}
	headerBytes, ok := byteField(buffer, "data")
	if !ok || len(headerBytes) == 0 {
		return Block{}, false
	}

	payload, ok := elements[i+1].(map[string]interface{})
	if !ok {
		return Block{}, false
	}
	payloadBytes, ok := byteField(payload, "data")
	if !ok {
		return Block{}, false
	}

	return Block{FormatTag: tag, Header: headerBytes, Payload: payloadBytes}, true
}

// intField extracts an integer field from a descriptor object
func intField(obj map[string]interface{}, key string) (int, bool) {
	n, ok := obj[key].(float64)
	if !ok || n != float64(int(n)) {
		return 0, false
	}
	return int(n), true
}

// byteField extracts a byte array field from a descriptor object.
// Every element must be a number in 0..255.
func byteField(obj map[string]interface{}, key string) ([]byte, bool) {
	arr, ok := obj[key].([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]byte, len(arr))
	for i, v := range arr {
		n, ok := v.(float64)
		if !ok || n < 0 || n > 255 || n != float64(int(n)) {
			return nil, false
		}
		out[i] = byte(n)
	}
	return out, true
}
