package report

import (
	"os"
	"path/filepath"

	"PriceReport/internal/model"
)

// WriteFile places content at dir/name atomically: it writes a temp file in dir
// and renames it over the target, so a failed run never leaves a partial report.
func WriteFile(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &model.IOError{Op: "create output dir", Path: dir, Err: err}
	}
	target := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", &model.IOError{Op: "create temp file", Path: dir, Err: err}
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(content); err != nil {
		return "", &model.IOError{Op: "write report", Path: tmpPath, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return "", &model.IOError{Op: "sync report", Path: tmpPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &model.IOError{Op: "close report", Path: tmpPath, Err: err}
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return "", &model.IOError{Op: "chmod report", Path: tmpPath, Err: err}
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return "", &model.IOError{Op: "rename report", Path: target, Err: err}
	}
	committed = true

	if err := syncDir(dir); err != nil {
		return "", &model.IOError{Op: "sync output dir", Path: dir, Err: err}
	}
	return target, nil
}

// syncDir flushes the directory entry so a completed rename survives a crash.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
