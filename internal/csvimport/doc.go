// Package csvimport reads delimited exports into ordered rows of column
// values. Columns sharing a header are grouped so that a repeated header
// produces a multi-valued cell. Header interpretation (codes or field names)
// is left to the caller.
package csvimport
