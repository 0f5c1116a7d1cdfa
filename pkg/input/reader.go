/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reader.go
Description: Document acquisition for the Akaylee Inspector. Resolves the input
source into a raw capture document: an explicit file path, "-" for stdin, or an
embedded reference capture when no source is given.
*/

package input

import (
	"fmt"
	"io"
	"os"

	_ "embed"
)

// StdinSentinel selects standard input as the document source
const StdinSentinel = "-"

//go:embed default_input.json
var defaultDocument string

// FileReader resolves document sources against the filesystem, with stdin
// and embedded-default fallbacks. Satisfies interfaces.Reader.
type FileReader struct {
	// Stdin overrides the standard input stream, for tests
	Stdin io.Reader
}

// NewFileReader creates a reader bound to the process standard input
func NewFileReader() *FileReader {
	return &FileReader{Stdin: os.Stdin}
}

// Read resolves source into a raw document. An empty source yields the
// embedded reference capture; "-" reads standard input to EOF; anything
// else is treated as a file path.
func (r *FileReader) Read(source string) (string, error) {
	switch source {
	case "":
		return defaultDocument, nil
	case StdinSentinel:
		data, err := io.ReadAll(r.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read document from stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(source)
		if err != nil {
			return "", fmt.Errorf("failed to read document file %s: %w", source, err)
		}
		return string(data), nil
	}
}

// DefaultDocument returns the embedded reference capture
func DefaultDocument() string {
	return defaultDocument
}
