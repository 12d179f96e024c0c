package dbreset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/pirakansa/reset-test-db/internal/cli/shared"
	"github.com/pirakansa/reset-test-db/internal/logger"
	"github.com/pirakansa/reset-test-db/pkg/layout"
)

const (
	OutcomeBackedUp = "backed_up"
	OutcomeMissing  = "missing"
	OutcomeSkipped  = "skipped"
)

// Options controls a reset run.
type Options struct {
	RootDir    string
	SkipBackup bool
	Confirmer  Confirmer
	Out        io.Writer
	Now        func() time.Time
}

// FileResult describes what happened to one target file.
type FileResult struct {
	Name    string
	Path    string
	Outcome string
	Backup  string
	Cleared bool
}

// Result describes a reset run. BackupDir is set even when backups were skipped.
type Result struct {
	Aborted      bool
	BackupDir    string
	ManifestPath string
	Files        []FileResult
}

// Run backs up and clears the target files under opts.RootDir. Files cleared
// before a failure stay cleared.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.RootDir == "" {
		return nil, errors.New("root dir is required")
	}
	if opts.Confirmer == nil {
		return nil, errors.New("confirmer is required")
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	log := logger.FromContext(ctx)

	color.New(color.Bold).Fprintln(opts.Out, "🔄 Reset Test Database Script")
	fmt.Fprintln(opts.Out, "Repo root:", opts.RootDir)

	ok, err := opts.Confirmer.Confirm(ctx, ConfirmQuestion)
	if err != nil {
		return nil, fmt.Errorf("read confirmation: %w", err)
	}
	if !ok {
		fmt.Fprintln(opts.Out, "Aborted by user.")
		return &Result{Aborted: true}, nil
	}

	runTimestamp := layout.Timestamp(opts.Now())
	res := &Result{BackupDir: layout.BackupDir(opts.RootDir, runTimestamp)}
	targets := layout.Targets(opts.RootDir)
	for _, target := range targets {
		res.Files = append(res.Files, FileResult{Name: target.Name, Path: target.Path, Outcome: OutcomeSkipped})
	}
	log.Debug().Str("backup_dir", res.BackupDir).Bool("skip_backup", opts.SkipBackup).Msg("reset started")

	if !opts.SkipBackup {
		if err := backupTargets(ctx, res, runTimestamp, opts); err != nil {
			return res, err
		}
	}

	for i := range res.Files {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		file := &res.Files[i]
		if err := clearFile(file.Path); err != nil {
			return res, fmt.Errorf("clear %s: %w", file.Name, err)
		}
		file.Cleared = true
		fmt.Fprintf(opts.Out, "Cleared %s\n", file.Name)
		log.Debug().Str("file", file.Path).Msg("cleared")
	}

	color.New(color.FgGreen).Fprintln(opts.Out, "\n✅ Test DB reset complete.")
	fmt.Fprintf(opts.Out, "Backups saved to: %s\n", res.BackupDir)
	return res, nil
}

func backupTargets(ctx context.Context, res *Result, runTimestamp string, opts Options) error {
	log := logger.FromContext(ctx)
	manifest := &Manifest{
		Version:      ManifestVersion,
		RunTimestamp: runTimestamp,
		Root:         opts.RootDir,
	}

	for i := range res.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		file := &res.Files[i]
		name := layout.BackupName(file.Name, layout.Timestamp(opts.Now()))
		copied, err := shared.BackupFile(file.Path, res.BackupDir, name)
		if err != nil {
			return fmt.Errorf("backup %s: %w", file.Name, err)
		}
		if copied == nil {
			file.Outcome = OutcomeMissing
			fmt.Fprintf(opts.Out, "No %s file to back up.\n", file.Name)
			continue
		}
		file.Outcome = OutcomeBackedUp
		file.Backup = copied.Path
		manifest.Files = append(manifest.Files, newManifestEntry(file.Name, copied))
		fmt.Fprintf(opts.Out, "Backed up %s -> %s\n", file.Name, name)
		log.Debug().Str("file", file.Path).Str("backup", copied.Path).Int("bytes", len(copied.Content)).Msg("backed up")
	}

	if len(manifest.Files) == 0 {
		return nil
	}
	manifestPath := layout.ManifestPath(opts.RootDir, runTimestamp)
	if err := SaveManifest(manifestPath, manifest); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	res.ManifestPath = manifestPath
	return nil
}
