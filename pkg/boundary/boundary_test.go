/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: boundary_test.go
Description: Comprehensive tests for the boundary package. Tests the infallible
string surface: success results, prefixed failure results and the error
discrimination helper.
*/

package boundary_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-inspector/pkg/boundary"
	"github.com/kleascm/akaylee-inspector/pkg/envelope"
	"github.com/kleascm/akaylee-inspector/pkg/input"
)

// TestProcessDocumentSuccess tests the happy path over a valid envelope
func TestProcessDocumentSuccess(t *testing.T) {
	document, err := envelope.BuildDocument([]byte(`{"status": "ok"}`))
	require.NoError(t, err)

	result := boundary.ProcessDocument(document, "human")
	assert.False(t, boundary.IsError(result))
	assert.Contains(t, result, `"status": "ok"`)
}

// TestProcessDocumentReferenceCapture tests the embedded capture through
// the boundary surface
func TestProcessDocumentReferenceCapture(t *testing.T) {
	result := boundary.ProcessDocument(input.DefaultDocument(), "json")
	assert.False(t, boundary.IsError(result))
	assert.Contains(t, result, "messagepack_hex")
	assert.Contains(t, result, "Phone number is required")
}

// TestProcessDocumentStructuralFailure tests the failure prefix convention
func TestProcessDocumentStructuralFailure(t *testing.T) {
	result := boundary.ProcessDocument("not a document", "json")
	assert.True(t, boundary.IsError(result))
	assert.True(t, strings.HasPrefix(result, boundary.ErrorPrefix))
}

// TestProcessDocumentUnknownFormat tests that a bad format name fails the
// same way as a bad document
func TestProcessDocumentUnknownFormat(t *testing.T) {
	document, err := envelope.BuildDocument([]byte(`{}`))
	require.NoError(t, err)

	result := boundary.ProcessDocument(document, "yaml")
	assert.True(t, boundary.IsError(result))
}

// TestIsError tests prefix discrimination
func TestIsError(t *testing.T) {
	assert.True(t, boundary.IsError("Error: anything"))
	assert.False(t, boundary.IsError("{\"ok\": true}"))
}
