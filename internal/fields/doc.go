// Package fields holds the compiled Adlib field catalog.
//
// Every tagged export line starts with a two-character field code. The catalog
// maps those codes to the human-readable field names used in CSV headers and
// fixes the order in which a full export enumerates fields. Lookups never fail
// loudly: unknown codes and names simply report false.
package fields
