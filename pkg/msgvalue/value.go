/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: value.go
Description: Generic tagged value tree for the Akaylee Inspector. Represents a
decoded self-describing document as a recursive sum type over the MessagePack
value kinds, built bottom-up from a byte cursor and acyclic by construction.
*/

package msgvalue

// Kind discriminates the variants of a decoded value
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBinary
	KindArray
	KindMap
	KindExt
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBinary:
		return "binary"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindExt:
		return "ext"
	default:
		return "unknown"
	}
}

// Pair is one key/value entry of a decoded map. Keys are full values:
// non-string keys exist here and are only dropped during JSON conversion.
type Pair struct {
	Key   Value
	Value Value
}

// Value is one node of the decoded tree. Only the fields relevant to its
// Kind are populated.
type Value struct {
	Kind    Kind
	Bool    bool
	Int     int64
	Float   float64
	Str     string
	Bin     []byte
	Items   []Value
	Pairs   []Pair
	ExtType int8
	ExtData []byte
}

// Nil returns the nil value
func Nil() Value { return Value{Kind: KindNil} }

// BoolValue wraps a boolean
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IntValue wraps an integer
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue wraps a float
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// StringValue wraps a string
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// BinaryValue wraps raw bytes
func BinaryValue(b []byte) Value { return Value{Kind: KindBinary, Bin: b} }

// ArrayValue wraps an ordered element list
func ArrayValue(items ...Value) Value { return Value{Kind: KindArray, Items: items} }

// MapValue wraps an ordered key/value pair list
func MapValue(pairs ...Pair) Value { return Value{Kind: KindMap, Pairs: pairs} }

// ExtValue wraps an extension payload with its type tag
func ExtValue(extType int8, data []byte) Value {
	return Value{Kind: KindExt, ExtType: extType, ExtData: data}
}
