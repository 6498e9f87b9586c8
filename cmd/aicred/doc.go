// Package aicred provides the command-line interface for the aicred tool.
// It configures subcommands (scan, providers, detect, etc.), parses flags,
// and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/aicred/aicred/cmd/aicred"
//	func main() { aicred.Execute() }
package aicred
