/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: recover.go
Description: Partial value recovery for corrupted or misaligned streams. Walks
the byte stream decoding one value at a time, advancing past the consumed bytes
on success and sliding forward a single byte on failure, so readable fragments
surface even when the stream as a whole is broken.
*/

package msgvalue

// maxRecoveredValues caps the scan so a pathological stream cannot inflate
// the result without limit.
const maxRecoveredValues = 100

// Recovered is one value pulled out of a damaged stream together with the
// offset it was decoded at.
type Recovered struct {
	Value  Value
	Offset int
}

// RecoverStream scans data for decodable values. Each success advances the
// cursor by the bytes the value consumed; each failure (or a decode that
// consumed nothing) advances by one byte. The scan always terminates: the
// cursor strictly advances and the result is capped.
func RecoverStream(data []byte) []Recovered {
	var found []Recovered
	offset := 0
	for offset < len(data) && len(found) < maxRecoveredValues {
		v, consumed, err := decodeOne(data[offset:])
		if err != nil || consumed <= 0 {
			offset++
			continue
		}
		found = append(found, Recovered{Value: v, Offset: offset})
		offset += consumed
	}
	return found
}
