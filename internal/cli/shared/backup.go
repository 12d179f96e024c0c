package shared

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// BackupCopy describes a file copied into a backup directory.
type BackupCopy struct {
	Path    string
	Content []byte
}

// BackupFile copies path into dir under name, creating dir first. A missing
// path is not an error: it returns nil and leaves only the directory behind.
func BackupFile(path, dir, name string) (*BackupCopy, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	dest := filepath.Join(dir, name)
	content, err := CopyFile(path, dest, info)
	if err != nil {
		return nil, err
	}
	if err := verifyCopy(dest, content); err != nil {
		return nil, err
	}
	return &BackupCopy{Path: dest, Content: content}, nil
}

// CopyFile writes the content of src to dst with the permission bits and
// modification time from info.
func CopyFile(src, dst string, info os.FileInfo) ([]byte, error) {
	content, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(dst, content, info.Mode().Perm()); err != nil {
		return nil, err
	}
	// WriteFile only applies the mode on create and is subject to umask.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return nil, err
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return nil, err
	}
	return content, nil
}

func verifyCopy(path string, want []byte) error {
	got, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if BLAKE3Hex(got) != BLAKE3Hex(want) {
		return fmt.Errorf("backup verification failed: %s", path)
	}
	return nil
}
