//go:build !cgo

// Without cgo the C bindings in ffi.go and cerr.go are excluded from the
// build, taking their main with them. This stub keeps the package linkable
// (e.g. under CGO_ENABLED=0); the c-shared library build is unaffected.
package main

func main() {}
