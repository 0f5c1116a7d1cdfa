/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: convert.go
Description: JSON conversion and record-shape promotion for decoded values.
Converts the tagged value tree into plain JSON-compatible structures and
recognizes the conventional five-field problem-detail record layout, promoting
matching positional arrays into named-field objects.
*/

package msgvalue

// Names assigned to the five positional fields of a recognized record
var recordFieldNames = [5]string{"type", "title", "status", "detail", "instance"}

// ToJSON converts the value into plain JSON-compatible Go data. Integers stay
// int64, binary becomes a number array (the capture convention), map keys must
// be strings and non-string-keyed entries are dropped, extensions become an
// object carrying the type tag and a number array of the data.
func (v Value) ToJSON() interface{} {
	switch v.Kind {
	case KindNil:
		return nil
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindString:
		return v.Str
	case KindBinary:
		return bytesToNumbers(v.Bin)
	case KindArray:
		items := make([]interface{}, 0, len(v.Items))
		for _, item := range v.Items {
			items = append(items, item.ToJSON())
		}
		return items
	case KindMap:
		m := make(map[string]interface{}, len(v.Pairs))
		for _, p := range v.Pairs {
			if p.Key.Kind != KindString {
				continue
			}
			m[p.Key.Str] = p.Value.ToJSON()
		}
		return m
	case KindExt:
		return map[string]interface{}{
			"ext_type": int(v.ExtType),
			"ext_data": bytesToNumbers(v.ExtData),
		}
	default:
		return nil
	}
}

// PromoteRecordShape rewrites a top-level positional array carrying the
// conventional record layout (string, string, number, string, string in the
// first five slots) into an object with the field names type, title, status,
// detail and instance. Promotion requires all five slots to match; anything
// else passes through unchanged. Nested arrays are never promoted.
func PromoteRecordShape(v interface{}) interface{} {
	items, ok := v.([]interface{})
	if !ok || !matchesRecordShape(items) {
		return v
	}
	record := make(map[string]interface{}, len(recordFieldNames))
	for i, name := range recordFieldNames {
		record[name] = items[i]
	}
	return record
}

// matchesRecordShape reports whether the first five elements carry the
// positional record layout
func matchesRecordShape(items []interface{}) bool {
	if len(items) < len(recordFieldNames) {
		return false
	}
	return isString(items[0]) && isString(items[1]) && isNumber(items[2]) &&
		isString(items[3]) && isString(items[4])
}

func isString(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

func isNumber(v interface{}) bool {
	switch v.(type) {
	case int64, float64:
		return true
	default:
		return false
	}
}

// bytesToNumbers renders bytes as a JSON number array
func bytesToNumbers(data []byte) []interface{} {
	out := make([]interface{}, len(data))
	for i, b := range data {
		out[i] = int64(b)
	}
	return out
}
