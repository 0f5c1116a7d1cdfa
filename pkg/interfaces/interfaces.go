/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Core interfaces for the Akaylee Inspector. Defines the contracts for
pipeline diagnostics observation and raw document acquisition so that components
stay decoupled and testable without global state.
*/

package interfaces

// Observer receives diagnostic events emitted by the decoding pipeline.
// The logging package satisfies this interface; tests can substitute a
// recording implementation to assert on emitted diagnostics deterministically.
type Observer interface {
	// Debug records a low-level diagnostic event
	Debug(msg string, fields map[string]interface{})

	// Info records a notable pipeline event
	Info(msg string, fields map[string]interface{})

	// Warning records a recoverable anomaly (e.g. a block-local failure)
	Warning(msg string, fields map[string]interface{})

	// Error records a failure surfaced to the caller
	Error(msg string, fields map[string]interface{})
}

// NopObserver discards all diagnostic events. Used when no logger is wired in.
type NopObserver struct{}

// Debug discards the event
func (NopObserver) Debug(msg string, fields map[string]interface{}) {}

// Info discards the event
func (NopObserver) Info(msg string, fields map[string]interface{}) {}

// Warning discards the event
func (NopObserver) Warning(msg string, fields map[string]interface{}) {}

// Error discards the event
func (NopObserver) Error(msg string, fields map[string]interface{}) {}

// Reader supplies the raw capture document for the pipeline.
// Implementations resolve a file path, the "-" stdin sentinel, or an
// embedded default fixture; the pipeline only ever sees a string of bytes.
type Reader interface {
	// Read resolves the given source into a raw document
	Read(source string) (string, error)
}
