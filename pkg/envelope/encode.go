/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: encode.go
Description: Envelope encoder for the Akaylee Inspector. Produces capture envelopes
from plain JSON documents (JSON -> MessagePack -> LZ4 block -> header/payload pair)
and re-encodes parsed blocks back into their MessagePack extension form. This is the
reverse path of the decoder and the generator behind the test fixtures.
*/

package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"
)

// headerLeadByte opens every generated header; the remaining bytes carry the
// uncompressed size big-endian, using as few bytes as the size needs.
const headerLeadByte = 0xcc

// BuildDocument encodes a single JSON document into a one-block capture
// envelope, returning the envelope as pretty-printed JSON.
func BuildDocument(jsonDoc []byte) (string, error) {
	value, err := parseJSONValue(jsonDoc)
	if err != nil {
		return "", fmt.Errorf("failed to parse JSON document: %w", err)
	}

	elements, err := AppendBlock(nil, value, SupportedTag)
	if err != nil {
		return "", err
	}

	return MarshalDocument(elements)
}

// AppendBlock serializes a value to MessagePack, compresses it, and appends
// the resulting header/payload descriptor pair to the envelope element list.
func AppendBlock(elements []interface{}, value interface{}, tag int) ([]interface{}, error) {
	encoded, err := msgpack.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize value to MessagePack: %w", err)
	}

	compressed, err := compressBlock(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	header := buildHeader(len(encoded))

	elements = append(elements,
		map[string]interface{}{
			"buffer": map[string]interface{}{
				"type": "Buffer",
				"data": toNumberArray(header),
			},
			"type": tag,
		},
		map[string]interface{}{
			"type": "Buffer",
			"data": toNumberArray(compressed),
		},
	)
	return elements, nil
}

// MarshalDocument renders an envelope element list as pretty-printed JSON
func MarshalDocument(elements []interface{}) (string, error) {
	out, err := json.MarshalIndent(elements, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize envelope: %w", err)
	}
	return string(out), nil
}

// Reencode rebuilds the MessagePack form of a block: a two-element array of
// the extension value (format tag + header bytes) and the raw payload binary.
func Reencode(b Block) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)

	if err := enc.EncodeArrayLen(2); err != nil {
		return nil, err
	}
	if err := enc.EncodeExtHeader(int8(b.FormatTag), len(b.Header)); err != nil {
		return nil, err
	}
	if _, err := enc.Writer().Write(b.Header); err != nil {
		return nil, err
	}
	if err := enc.EncodeBytes(b.Payload); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// buildHeader encodes the uncompressed size big-endian after the lead byte
func buildHeader(size int) []byte {
	header := []byte{headerLeadByte}
	switch {
	case size <= 0xff:
		header = append(header, byte(size))
	case size <= 0xffff:
		header = append(header, byte(size>>8), byte(size))
	case size <= 0xffffff:
		header = append(header, byte(size>>16), byte(size>>8), byte(size))
	default:
		header = append(header, byte(size>>24), byte(size>>16), byte(size>>8), byte(size))
	}
	return header
}

// compressBlock produces an LZ4 block for the given bytes. Incompressible
// input falls back to a literal-only block so the output always round-trips
// through UncompressBlock.
func compressBlock(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	n, err := lz4.CompressBlock(src, dst, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return literalBlock(src), nil
	}
	return dst[:n], nil
}

// literalBlock encodes src as a single literal-only LZ4 sequence
func literalBlock(src []byte) []byte {
	n := len(src)
	out := make([]byte, 0, n+n/255+2)
	if n < 15 {
		out = append(out, byte(n)<<4)
	} else {
		out = append(out, 0xf0)
		r := n - 15
		for r >= 255 {
			out = append(out, 255)
			r -= 255
		}
		out = append(out, byte(r))
	}
	return append(out, src...)
}

// parseJSONValue decodes a JSON document preserving integer values
func parseJSONValue(doc []byte) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(string(doc)))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeNumbers(v), nil
}

// normalizeNumbers converts json.Number nodes to int64 where exact, else float64
func normalizeNumbers(v interface{}) interface{} {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case []interface{}:
		for i, elem := range val {
			val[i] = normalizeNumbers(elem)
		}
		return val
	case map[string]interface{}:
		for k, elem := range val {
			val[k] = normalizeNumbers(elem)
		}
		return val
	default:
		return v
	}
}

// toNumberArray renders bytes as a JSON number array (the capture convention)
func toNumberArray(data []byte) []int {
	out := make([]int, len(data))
	for i, b := range data {
		out[i] = int(b)
	}
	return out
}
