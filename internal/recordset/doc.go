// Package recordset owns a named, ordered collection of Adlib records.
//
// A Collection is filled from tagged export files (which replace its content)
// or CSV exports (which append), answers field-keyed lookups, serializes
// selected fields back to tagged text and runs reference checks over field
// values. Collections are not safe for concurrent mutation; callers sharing
// one across goroutines must serialize access.
package recordset
