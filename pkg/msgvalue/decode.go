/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: decode.go
Description: Self-describing value decoder for the Akaylee Inspector. Delegates
the MessagePack tag grammar and primitive decoding to the msgpack library and
assembles the results into the generic tagged value tree, reporting the cursor
position on failure.
*/

package msgvalue

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// ParseError reports a decode failure together with the number of bytes
// consumed before the failure.
type ParseError struct {
	Offset int
	Err    error
}

// Error returns the failure description with the cursor position
func (e *ParseError) Error() string {
	return fmt.Sprintf("value parse failed at offset %d: %v", e.Offset, e.Err)
}

// Unwrap exposes the underlying decode error
func (e *ParseError) Unwrap() error { return e.Err }

// Decode parses one self-describing value from the start of data. Trailing
// bytes after a complete value are ignored, matching the upstream convention.
func Decode(data []byte) (Value, error) {
	v, _, err := decodeOne(data)
	return v, err
}

// decodeOne parses a single value and reports the bytes consumed. On failure
// the consumed count covers everything read before the error.
func decodeOne(data []byte) (Value, int, error) {
	r := bytes.NewReader(data)
	d := msgpack.NewDecoder(r)
	v, err := decodeValue(d, r)
	consumed := len(data) - r.Len()
	if err != nil {
		return Value{}, consumed, &ParseError{Offset: consumed, Err: err}
	}
	return v, consumed, nil
}

// decodeValue reads one value at the decoder's cursor. The reader is the
// decoder's direct source (no intermediate buffering), so extension payloads
// can be read from it without desynchronizing the cursor.
func decodeValue(d *msgpack.Decoder, r *bytes.Reader) (Value, error) {
	code, err := d.PeekCode()
	if err != nil {
		return Value{}, err
	}

	switch {
	case code == msgpcode.Nil:
		if err := d.DecodeNil(); err != nil {
			return Value{}, err
		}
		return Nil(), nil

	case code == msgpcode.True || code == msgpcode.False:
		b, err := d.DecodeBool()
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil

	case msgpcode.IsFixedNum(code),
		code == msgpcode.Int8, code == msgpcode.Int16,
		code == msgpcode.Int32, code == msgpcode.Int64:
		i, err := d.DecodeInt64()
		if err != nil {
			return Value{}, err
		}
		return IntValue(i), nil

	case code == msgpcode.Uint8, code == msgpcode.Uint16,
		code == msgpcode.Uint32, code == msgpcode.Uint64:
		u, err := d.DecodeUint64()
		if err != nil {
			return Value{}, err
		}
		if u > math.MaxInt64 {
			// Out of int64 range; represented as a float (documented lossy)
			return FloatValue(float64(u)), nil
		}
		return IntValue(int64(u)), nil

	case code == msgpcode.Float:
		f, err := d.DecodeFloat32()
		if err != nil {
			return Value{}, err
		}
		return FloatValue(float64(f)), nil

	case code == msgpcode.Double:
		f, err := d.DecodeFloat64()
		if err != nil {
			return Value{}, err
		}
		return FloatValue(f), nil

	case msgpcode.IsString(code):
		s, err := d.DecodeString()
		if err != nil {
			return Value{}, err
		}
		return StringValue(s), nil

	case msgpcode.IsBin(code):
		b, err := d.DecodeBytes()
		if err != nil {
			return Value{}, err
		}
		return BinaryValue(b), nil

	case msgpcode.IsFixedArray(code), code == msgpcode.Array16, code == msgpcode.Array32:
		n, err := d.DecodeArrayLen()
		if err != nil {
			return Value{}, err
		}
		items := make([]Value, 0, clampPrealloc(n, r.Len()))
		for i := 0; i < n; i++ {
			item, err := decodeValue(d, r)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return ArrayValue(items...), nil

	case msgpcode.IsFixedMap(code), code == msgpcode.Map16, code == msgpcode.Map32:
		n, err := d.DecodeMapLen()
		if err != nil {
			return Value{}, err
		}
		pairs := make([]Pair, 0, clampPrealloc(n, r.Len()))
		for i := 0; i < n; i++ {
			key, err := decodeValue(d, r)
			if err != nil {
				return Value{}, err
			}
			val, err := decodeValue(d, r)
			if err != nil {
				return Value{}, err
			}
			pairs = append(pairs, Pair{Key: key, Value: val})
		}
		return MapValue(pairs...), nil

	case msgpcode.IsExt(code):
		extType, extLen, err := d.DecodeExtHeader()
		if err != nil {
			return Value{}, err
		}
		data := make([]byte, extLen)
		if _, err := io.ReadFull(r, data); err != nil {
			return Value{}, err
		}
		return ExtValue(extType, data), nil

	default:
		return Value{}, fmt.Errorf("unknown tag byte 0x%02x", code)
	}
}

// clampPrealloc bounds an untrusted length prefix for preallocation. Every
// element occupies at least one input byte, so the remaining input bounds
// any honest count; a hostile prefix cannot force a huge allocation and the
// slices grow normally if the clamp undershoots.
func clampPrealloc(n, remaining int) int {
	if n < 0 {
		return 0
	}
	if n > remaining {
		return remaining
	}
	return n
}
