package graph

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeID returns the canonical form of a node identifier: the first
// letter of each word uppercased, the rest lowercased ("new york" → "New
// York", "BOB" → "Bob"). Every Graph operation normalizes its identifier
// arguments with this function before touching storage, so two identifiers
// that differ only in capitalization name the same node.
//
// Normalizing an already-normalized identifier is a no-op (idempotent).
func NormalizeID(id string) string {
	// Casers are stateful, so a fresh one is built per call rather than
	// shared at package level.
	return cases.Title(language.Und).String(id)
}
