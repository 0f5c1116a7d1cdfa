/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: commands_test.go
Description: Tests for the commands package. Tests that banners and summaries
stay off stdout so piped rendered output remains machine-consumable.
*/

package commands

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kleascm/akaylee-inspector/pkg/pipeline"
)

// TestStatusOutputDefaultsToStderr tests the status stream destination
func TestStatusOutputDefaultsToStderr(t *testing.T) {
	assert.Equal(t, os.Stderr, statusOut)
}

// TestPrintDecodeSummaryUsesStatusStream tests that the per-outcome summary
// goes to the status stream, not stdout
func TestPrintDecodeSummaryUsesStatusStream(t *testing.T) {
	var captured bytes.Buffer
	previous := statusOut
	statusOut = &captured
	defer func() { statusOut = previous }()

	printDecodeSummary([]pipeline.BlockResult{
		{Outcome: pipeline.OutcomeDecoded},
		{Outcome: pipeline.OutcomeDecoded},
		{Outcome: pipeline.OutcomeProfiled},
	})

	out := captured.String()
	assert.Contains(t, out, "Decoded 3 block(s)")
	assert.Contains(t, out, "decoded: 2")
	assert.Contains(t, out, "profiled: 1")
}
