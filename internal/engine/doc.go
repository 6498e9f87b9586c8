// Package engine orchestrates credential discovery: it resolves the
// effective scanner set, walks each scanner's candidate paths under a home
// directory, and aggregates findings into a single deterministic result.
package engine
