// Package scaffold runs external finishing tools over a generated tree,
// such as formatters or module initializers. Tools are best-effort from
// the generator's point of view: generation has already succeeded when a
// finishing step runs.
package scaffold

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Runner executes commands inside a generated output directory.
type Runner struct {
	dir string
	log logrus.FieldLogger
}

// NewRunner returns a runner rooted at dir.
func NewRunner(dir string, log logrus.FieldLogger) *Runner {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{dir: dir, log: log}
}

// Run executes name with args in the runner's directory. Output is
// captured and attached to the error on failure.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir

	r.log.WithFields(logrus.Fields{
		"dir":     r.dir,
		"command": name,
		"args":    strings.Join(args, " "),
	}).Info("running finishing step")

	out, err := cmd.CombinedOutput()
	if err != nil {
		r.log.WithError(err).WithField("command", name).Error("finishing step failed")
		if len(out) > 0 {
			return fmt.Errorf("scaffold: %s: %w: %s", name, err, strings.TrimSpace(string(out)))
		}
		return fmt.Errorf("scaffold: %s: %w", name, err)
	}
	return nil
}
