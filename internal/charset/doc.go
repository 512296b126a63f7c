// Package charset turns export files in legacy encodings into UTF-8 text.
//
// Cataloguing systems commonly write exports as UTF-8 with a byte-order mark,
// UTF-16 or a Windows code page. Labels follow the WHATWG encoding names
// understood by golang.org/x/text/encoding/htmlindex.
package charset
