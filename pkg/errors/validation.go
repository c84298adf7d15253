package errors

import (
	"strings"
	"unicode"
)

// ValidateVertexID validates a vertex or hyper-vertex identifier from
// external input (manifest files, CLI arguments, HTTP query parameters).
//
// The core graph treats identifiers as opaque and never rejects them; this
// validation exists only at the input boundary so that malformed files fail
// with a useful message instead of producing a confusing graph.
func ValidateVertexID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidVertex, "vertex ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidVertex, "vertex ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidVertex, "vertex ID contains control characters")
		}
	}

	return nil
}

// ValidateGraphName validates a name used to store a graph document.
// Names become storage keys, so they are deliberately conservative.
func ValidateGraphName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "graph name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidName, "graph name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "graph name contains control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidName, "graph name cannot contain path separators")
	}

	return nil
}

// ValidateConstraint validates a constraint annotation from external input.
// Constraints are opaque to the graph, but files carrying control characters
// are almost always corrupt, so reject them early.
func ValidateConstraint(text string) error {
	if text == "" {
		return New(ErrCodeInvalidInput, "constraint cannot be empty")
	}

	for _, r := range text {
		if r != '\t' && unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "constraint contains control characters")
		}
	}

	return nil
}
