// Package coldscan provides the command-line interface for the Coldscan
// engine. It configures subcommands (scan, sigs, watch, quarantine,
// history), parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/coldscan/coldscan/cmd/coldscan"
//	func main() { coldscan.Execute() }
package coldscan
