// Package main hosts the adlib CLI entrypoint and command graph.
//
// The Cobra-based command tree loads tagged or CSV exports into a record
// collection, converts them back to tagged text, looks up single records,
// lists the field catalog and checks the files and links that records refer
// to. Configuration resolution and structured logging are set up once in the
// command context so subcommands only deal with their own flags.
//
// Keep this package lean: add functionality to the internal packages first and
// surface it here through dedicated commands or flags.
package main
