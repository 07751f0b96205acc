package scaffold

import (
	"context"
	"io"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/logger"
)

// RunFormatCommand runs command once with paths appended as arguments, e.g.
// "npx prettier --write". The command is split with shell quoting rules but not
// run through a shell. An empty command or no paths is a no-op.
func RunFormatCommand(ctx context.Context, command string, paths []string, stdout, stderr io.Writer) error {
	if command == "" || len(paths) == 0 {
		return nil
	}

	args, err := shellquote.Split(command)
	if err != nil {
		return errors.Wrapf(err, "invalid output.format_command %q", command)
	}
	if len(args) == 0 {
		return nil
	}
	args = append(args, paths...)

	logger.Debugw("Running format command",
		logger.FieldCommand, args[0],
		logger.FieldCount, len(paths))
	if logger.ShouldLogTrace(logger.Verbosity) {
		logger.Debugw("Format command line", "argv", shellquote.Join(args...))
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		err = errors.Wrapf(err, "format command %s failed", args[0])
		return errors.WithHint(err, "generated files were written; fix or clear output.format_command")
	}
	return nil
}
