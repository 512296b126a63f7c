package refcheck

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// File check statuses.
const (
	StatusOK   = "OK"
	StatusFail = "FAIL"
)

// FileResult is the outcome for one referenced path.
type FileResult struct {
	Path   string `json:"path"`
	Status string `json:"status"`
}

// OK reports whether the file was found and readable.
func (r FileResult) OK() bool { return r.Status == StatusOK }

// CheckFiles resolves each value against baseDir and reports whether a
// readable file exists there. Absolute values are used as they are.
func CheckFiles(values []string, baseDir string) []FileResult {
	out := make([]FileResult, 0, len(values))
	for _, value := range values {
		path := value
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, value)
		}
		status := StatusFail
		if readable(path) {
			status = StatusOK
		}
		out = append(out, FileResult{Path: path, Status: status})
	}
	return out
}

func readable(path string) bool {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false
	}
	if st.Mode&unix.S_IFMT == unix.S_IFDIR {
		return false
	}
	return unix.Access(path, unix.R_OK) == nil
}
