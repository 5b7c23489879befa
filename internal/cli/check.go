package cli

import (
	"context"
	"fmt"

	"github.com/go-kit/log/level"
)

// Check parses documents and prints a diagnostic for each one that fails.
type Check struct {
	Files []string `arg:"" help:"Files to check, '-' for stdin." name:"file"`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context, env *Env) error {
	failed := 0
	for _, name := range c.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, _, err := env.parse(name, env.Out); err != nil {
			failed++
			continue
		}
		_ = level.Debug(env.Logger).Log("msg", "ok", "file", displayName(name))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(c.Files))
	}
	return nil
}
