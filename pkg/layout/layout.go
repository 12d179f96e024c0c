package layout

import (
	"fmt"
	"path/filepath"
	"time"
)

const (
	// BackupRootName is the directory under the repository root holding per-run backups.
	BackupRootName = "backups"
	// TimestampLayout formats run and backup timestamps as YYYYMMDD_HHMMSS.
	TimestampLayout = "20060102_150405"
	// ManifestSuffix is appended to the run timestamp to name the backup manifest.
	ManifestSuffix = ".manifest.yaml"
)

// TargetNames lists the JSON database files reset by the tool, in processing order.
var TargetNames = []string{
	"approved_confessions.json",
	"pending_confessions.json",
	"comments.json",
	"contacts.json",
}

// Target is one JSON database file resolved against a repository root.
type Target struct {
	Name string
	Path string
}

// Targets resolves TargetNames against root.
func Targets(root string) []Target {
	targets := make([]Target, 0, len(TargetNames))
	for _, name := range TargetNames {
		targets = append(targets, Target{Name: name, Path: filepath.Join(root, name)})
	}
	return targets
}

func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

func BackupRoot(root string) string {
	return filepath.Join(root, BackupRootName)
}

// BackupDir returns backups/<runTimestamp> under root.
func BackupDir(root, runTimestamp string) string {
	return filepath.Join(BackupRoot(root), runTimestamp)
}

// ManifestPath returns backups/<runTimestamp>.manifest.yaml under root.
func ManifestPath(root, runTimestamp string) string {
	return filepath.Join(BackupRoot(root), runTimestamp+ManifestSuffix)
}

// BackupName returns <name>.bak.<timestamp>.
func BackupName(name, timestamp string) string {
	return fmt.Sprintf("%s.bak.%s", name, timestamp)
}
