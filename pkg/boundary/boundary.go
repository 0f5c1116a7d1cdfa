/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: boundary.go
Description: Infallible string boundary for the Akaylee Inspector. Wraps the
decoding pipeline behind a string-in/string-out surface for embedding hosts:
success returns the rendered result, failure returns a prefixed error string,
and the call itself never fails.
*/

package boundary

import (
	"strings"

	"github.com/kleascm/akaylee-inspector/pkg/pipeline"
	"github.com/kleascm/akaylee-inspector/pkg/render"
)

// ErrorPrefix opens every failure result. Callers distinguish success from
// failure by this prefix alone.
const ErrorPrefix = "Error: "

// ProcessDocument decodes a capture document and renders it in the named
// format. All failures, structural or otherwise, come back as a string
// opened by ErrorPrefix.
func ProcessDocument(document string, formatName string) string {
	format, err := render.ParseFormat(formatName)
	if err != nil {
		return ErrorPrefix + err.Error()
	}

	results, err := pipeline.New(nil).ProcessDocument(document)
	if err != nil {
		return ErrorPrefix + err.Error()
	}

	var out strings.Builder
	if err := render.Render(&out, results, format); err != nil {
		return ErrorPrefix + err.Error()
	}
	return out.String()
}

// IsError reports whether a boundary result carries the failure prefix
func IsError(result string) bool {
	return strings.HasPrefix(result, ErrorPrefix)
}
