package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pirakansa/reset-test-db/internal/cli/dbreset"
	"github.com/pirakansa/reset-test-db/internal/cli/shared"
	"github.com/pirakansa/reset-test-db/internal/config"
	"github.com/pirakansa/reset-test-db/internal/logger"
	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

type appContext struct {
	skipBackup  bool
	autoConfirm bool
	envFile     string
	now         func() time.Time
}

func NewRootCmd(version string) *cobra.Command {
	return newRootCmd(&appContext{envFile: defaultEnvFile}, version)
}

func newRootCmd(app *appContext, version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset-test-db",
		Short: "Back up and clear the test JSON database files",
		Long: `Back up and clear the test JSON database files.

Each of approved_confessions.json, pending_confessions.json, comments.json and
contacts.json under the repository root is copied to backups/<timestamp>/ and
then overwritten with an empty JSON list.

The repository root defaults to the working directory and can be set with
RESET_TEST_DB_ROOT. This removes data required for production use.`,
		Args:    cobra.NoArgs,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(cmd, app)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&app.skipBackup, "no-backup", false, "skip creating backups")
	cmd.Flags().BoolVarP(&app.autoConfirm, "yes", "y", false, "skip confirmation prompt")
	return cmd
}

func Execute(ctx context.Context, version string) int {
	if err := NewRootCmd(version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return mapExitCode(err)
	}
	return shared.ExitOK
}

func runReset(cmd *cobra.Command, app *appContext) error {
	cfg, err := config.Load(app.envFile)
	if err != nil {
		return newExitCodeError(shared.ExitConfigError, err)
	}
	ctx := logger.WithLogger(cmd.Context(), logger.New(cmd.ErrOrStderr(), cfg.LogLevel))

	var confirmer dbreset.Confirmer = dbreset.PromptConfirmer{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	if app.autoConfirm {
		confirmer = dbreset.AutoConfirmer{}
	}
	_, err = dbreset.Run(ctx, dbreset.Options{
		RootDir:    cfg.Root,
		SkipBackup: app.skipBackup,
		Confirmer:  confirmer,
		Out:        cmd.OutOrStdout(),
		Now:        app.now,
	})
	if errors.Is(err, context.Canceled) {
		return newExitCodeError(shared.ExitInterrupted, err)
	}
	if err != nil {
		return newExitCodeError(shared.ExitResetFailed, err)
	}
	return nil
}

func mapExitCode(err error) int {
	var codeErr *exitCodeError
	if errors.As(err, &codeErr) {
		return codeErr.code
	}
	return 1
}

type exitCodeError struct {
	code int
	err  error
}

func newExitCodeError(code int, err error) *exitCodeError {
	return &exitCodeError{code: code, err: err}
}

func (e *exitCodeError) Error() string {
	return e.err.Error()
}

func (e *exitCodeError) Unwrap() error {
	return e.err
}
