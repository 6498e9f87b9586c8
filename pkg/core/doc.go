// Package core provides a small, stable facade over aicred's internal engine
// for external integrations. It deliberately re-exports a narrow API surface
// so other tools can depend on a stable import path without exposing internal
// implementation packages.
//
// Example:
//
//	res, err := core.Scan("", core.DefaultOptions())
//	if err != nil { /* handle */ }
//	_ = core.MarshalResult(os.Stdout, res)
package core
