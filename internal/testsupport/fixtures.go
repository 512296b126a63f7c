package testsupport

import (
	"path/filepath"
	"testing"
)

// TaggedSample is a small tagged export: three records, a continuation line,
// CRLF line endings in the last record and a trailing separator that decodes
// to an empty fourth record.
const TaggedSample = "\uFEFF%0 1\n" +
	"IN AT-OeAW-BA-3-27-A-GL1083_09_01\n" +
	"TI GL1083_09_01\n" +
	"OB Glasplattennegativ\n" +
	"FN img/GL1083_09_01.jpg\n" +
	"UR https://example.org/objects/1\n" +
	"**\n" +
	"%0 2\n" +
	"IN AT-OeAW-BA-3-27-A-GL1083_09_02\n" +
	"TI GL1083_09_02\n" +
	"BE Ansicht des Tempels,\n" +
	"   aufgenommen von Norden\n" +
	"FN img/GL1083_09_02.jpg\n" +
	"**\n" +
	"%0 3\r\n" +
	"IN AT-OeAW-BA-3-27-A-GL1083_09_03\r\n" +
	"TI GL1083_09_03\r\n" +
	"nt AT-OeAW-BA-3-27-A-GL1083_09_01\r\n" +
	"nt AT-OeAW-BA-3-27-A-GL1083_09_02\r\n" +
	"**\n"

// CSVSample uses field names and codes as headers, repeats the
// related_object.reference column and contains one row whose only
// resolvable cell is empty.
const CSVSample = "object_number;object_name;related_object.reference;related_object.reference;nt;nt;bogus\n" +
	"AT-OeAI-02-000298;Rohton-Probe;AT-OeAI-02-000121;AT-OeAI-02-000122;AT-OeAI-02-000123;AT-OeAI-02-000124;x\n" +
	"AT-OeAI-02-000300;Rohton-Probe;AT-OeAI-02-000125;;;AT-OeAI-02-000126;y\n" +
	";;;;;;only unknown data\n"

// SampleSet holds the paths written by WriteSampleSet.
type SampleSet struct {
	Dir     string
	Tagged  string
	CSV     string
	FileDir string
}

// WriteSampleSet writes the tagged and CSV samples plus the first referenced
// reproduction file (the second one is deliberately missing).
func WriteSampleSet(t testing.TB) SampleSet {
	t.Helper()

	dir := t.TempDir()
	set := SampleSet{
		Dir:     dir,
		Tagged:  WriteFile(t, filepath.Join(dir, "testset.dat"), TaggedSample),
		CSV:     WriteFile(t, filepath.Join(dir, "testset.csv"), CSVSample),
		FileDir: dir,
	}
	WriteFile(t, filepath.Join(dir, "img", "GL1083_09_01.jpg"), "jpeg")
	return set
}
