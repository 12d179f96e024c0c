package shared

const (
	ExitOK          = 0
	ExitResetFailed = 2
	ExitConfigError = 3
	// ExitInterrupted follows the shell convention for SIGINT.
	ExitInterrupted = 130
)
