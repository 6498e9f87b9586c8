// Package detectors implements the per-provider credential detectors.
// Each detector classifies key/value pairs and scans raw content for the
// key material one GenAI provider issues.
package detectors
