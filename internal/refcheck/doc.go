// Package refcheck verifies references stored in record fields: local
// reproduction files and external URLs.
//
// Both checkers collect one result per input value, in input order, and never
// stop early. A failing probe is reported in its result rather than returned
// as an error. Links are probed one at a time; each request finishes before
// the next is sent.
package refcheck
