package dbreset

import (
	"os"
	"path/filepath"

	"github.com/pirakansa/reset-test-db/internal/cli/shared"
	"gopkg.in/yaml.v3"
)

const ManifestVersion = "v1"

// Manifest records the backups written by one run.
type Manifest struct {
	Version      string          `yaml:"version"`
	RunTimestamp string          `yaml:"run_timestamp"`
	Root         string          `yaml:"root"`
	Files        []ManifestEntry `yaml:"files"`
}

// ManifestEntry describes one backup file.
type ManifestEntry struct {
	Name   string `yaml:"name"`
	Backup string `yaml:"backup"`
	Size   int    `yaml:"size"`
	BLAKE3 string `yaml:"blake3"`
	SHA256 string `yaml:"sha256"`
}

func newManifestEntry(name string, copied *shared.BackupCopy) ManifestEntry {
	return ManifestEntry{
		Name:   name,
		Backup: filepath.Base(copied.Path),
		Size:   len(copied.Content),
		BLAKE3: shared.BLAKE3Hex(copied.Content),
		SHA256: shared.SHA256Hex(copied.Content),
	}
}

func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func SaveManifest(path string, m *Manifest) error {
	if m.Version == "" {
		m.Version = ManifestVersion
	}
	b, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
