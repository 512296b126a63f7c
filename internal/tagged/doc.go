// Package tagged reads and writes the Adlib tagged export format.
//
// A document is a sequence of record blocks separated by "**". Inside a block
// every content line carries a two-character field tag, one separator
// character and the value:
//
//	IN AT-OeAI-02-000298
//	TI Rohton-Probe
//	BE first part of a long
//	   description continued here
//	**
//
// A line prefixed by two spaces continues the last value of the previous tag
// and is appended without a separator. Lines that fit neither shape are
// skipped, so Decode never fails on content. Encode is the inverse for the
// selected fields, except that records without any selected field are
// dropped instead of being written as empty stanzas.
//
// Rich-text values with embedded line breaks are not reconstructed; their
// breaks are lost on decode.
package tagged
