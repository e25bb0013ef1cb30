package analyze

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
)

// Runner executes the external speech analyzer against a finalized audio
// artifact. Implementations must write a JSON analysis document to
// outputPath and return nil only when that document exists.
type Runner interface {
	Run(ctx context.Context, inputPath, outputPath string) error
}

// CommandRunner invokes the analyzer as a subprocess. The command is the
// base argv (for example ["python3", "analyzer/main.py"]); input and output
// paths are appended as --input/--output flags.
type CommandRunner struct {
	Command []string
	Logger  *zap.Logger
}

func NewCommandRunner(command []string, logger *zap.Logger) (*CommandRunner, error) {
	if len(command) == 0 {
		return nil, errors.New("analyzer command is not configured")
	}
	return &CommandRunner{Command: command, Logger: logger}, nil
}

// Run executes the analyzer and waits for it to finish. Failures carry the
// subprocess's captured stdout and stderr so the user can see what the
// analyzer reported.
func (r *CommandRunner) Run(ctx context.Context, inputPath, outputPath string) error {
	args := append(append([]string{}, r.Command[1:]...),
		"--input", inputPath,
		"--output", outputPath,
	)

	cmd := exec.CommandContext(ctx, r.Command[0], args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.Info("running analyzer",
		zap.Strings("command", r.Command),
		zap.String("input", inputPath))

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("analyzer failed: %w\nstdout:\n%s\nstderr:\n%s",
			err, stdout.String(), stderr.String())
	}

	if _, err := os.Stat(outputPath); err != nil {
		return fmt.Errorf("analyzer exited successfully but wrote no output at %s\nstdout:\n%s\nstderr:\n%s",
			outputPath, stdout.String(), stderr.String())
	}

	return nil
}
