// Command authforge generates an authentication scaffold from feature
// flags. Flags may come from the command line, from AUTHFORGE_*
// environment variables, from a manifest of a previous run, or from an
// interactive prompt when nothing else decides them.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/forgeworks/authforge"
	"github.com/forgeworks/authforge/compiler/gen"
	"github.com/forgeworks/authforge/compiler/load"
	"github.com/forgeworks/authforge/materialize"
	"github.com/forgeworks/authforge/scaffold"
)

// envConfig carries the AUTHFORGE_* environment defaults. Command-line
// flags override them.
type envConfig struct {
	Database    string `env:"AUTHFORGE_DATABASE" envDefault:"postgres"`
	Whitelabel  bool   `env:"AUTHFORGE_WHITELABEL"`
	RBAC        bool   `env:"AUTHFORGE_RBAC"`
	Multitenant bool   `env:"AUTHFORGE_MULTITENANT"`
	Out         string `env:"AUTHFORGE_OUT" envDefault:"."`
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := run(log); err != nil {
		log.WithError(err).Fatal("generation failed")
	}
}

func run(log *logrus.Logger) error {
	defaults, err := env.ParseAs[envConfig]()
	if err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}

	var (
		database    = flag.String("database", defaults.Database, "relational backend: postgres or mysql")
		whitelabel  = flag.Bool("whitelabel", defaults.Whitelabel, "add whitelabel branding fields")
		rbac        = flag.Bool("rbac", defaults.RBAC, "emit the role/permission artifact family")
		multitenant = flag.Bool("multitenant", defaults.Multitenant, "thread a tenant reference through user-scoped artifacts")
		out         = flag.String("out", defaults.Out, "output directory")
		manifest    = flag.String("manifest", "", "regenerate from the manifest of a previous run")
		interactive = flag.Bool("interactive", false, "prompt for flags instead of reading them")
		watch       = flag.Bool("watch", false, "watch the manifest and regenerate on change")
		finish      = flag.String("finish", "", "finishing command to run in the output directory, e.g. 'gofmt -w dto'")
	)
	flag.Parse()

	runID := uuid.New().String()
	logger := log.WithField("run_id", runID)

	cfg, err := resolveConfig(*manifest, *interactive, *database, *whitelabel, *rbac, *multitenant)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := generate(ctx, logger, cfg, *out, *finish); err != nil {
		return err
	}

	if *watch {
		manifestPath := *manifest
		if manifestPath == "" {
			manifestPath = filepath.Join(*out, load.DefaultFilename)
		}
		return watchManifest(ctx, logger, manifestPath, cfg, *out, *finish)
	}
	return nil
}

// resolveConfig decides the run configuration: a manifest wins, then the
// interactive prompt, then flags and environment defaults.
func resolveConfig(manifestPath string, interactive bool, database string, whitelabel, rbac, multitenant bool) (gen.Config, error) {
	if manifestPath != "" {
		m, err := load.ReadFile(manifestPath)
		if err != nil {
			return gen.Config{}, err
		}
		return m.Config()
	}
	if interactive {
		return promptConfig(os.Stdin)
	}
	return gen.NewConfig(
		gen.WithDatabaseName(database),
		gen.WithWhitelabel(whitelabel),
		gen.WithRBAC(rbac),
		gen.WithMultitenant(multitenant),
	)
}

// generate runs one full generation into the output directory, then
// persists the manifest and runs the finishing command concurrently.
func generate(ctx context.Context, logger logrus.FieldLogger, cfg gen.Config, out, finish string) error {
	now := time.Now().UTC()
	start := time.Now()

	logger.WithFields(logrus.Fields{
		"database":    cfg.Database,
		"whitelabel":  cfg.Whitelabel,
		"rbac":        cfg.RBAC,
		"multitenant": cfg.Multitenant,
		"out":         out,
	}).Info("generating")

	sink := materialize.NewDirWriter(out)
	if err := authforge.Generate(ctx, cfg, sink, now); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return load.FromConfig(cfg, now).WriteFile(filepath.Join(out, load.DefaultFilename))
	})
	if parts := finishCommand(finish); len(parts) > 0 {
		g.Go(func() error {
			return scaffold.NewRunner(out, logger).Run(ctx, parts[0], parts[1:]...)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.WithField("elapsed", time.Since(start).Round(time.Millisecond)).Info("done")
	return nil
}

// promptConfig asks for each flag on stdin. Empty answers keep the
// default shown in brackets.
func promptConfig(in *os.File) (gen.Config, error) {
	r := bufio.NewReader(in)

	database, err := ask(r, "Database backend (postgres/mysql) [postgres]: ", "postgres")
	if err != nil {
		return gen.Config{}, err
	}
	opts := []gen.Option{gen.WithDatabaseName(database)}

	for _, q := range []struct {
		prompt string
		opt    func(bool) gen.Option
	}{
		{"Enable RBAC? (y/N): ", gen.WithRBAC},
		{"Enable multi-tenancy? (y/N): ", gen.WithMultitenant},
		{"Enable whitelabel branding? (y/N): ", gen.WithWhitelabel},
	} {
		answer, err := ask(r, q.prompt, "n")
		if err != nil {
			return gen.Config{}, err
		}
		opts = append(opts, q.opt(strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")))
	}
	return gen.NewConfig(opts...)
}

func ask(r *bufio.Reader, prompt, fallback string) (string, error) {
	fmt.Print(prompt)
	line, err := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return fallback, nil
	}
	return line, nil
}

// finishCommand splits the finishing command into argv form. Empty or
// whitespace-only values mean no finishing step.
func finishCommand(s string) []string {
	return strings.Fields(s)
}

// watchManifest regenerates whenever the manifest file changes to a
// different configuration. Editors often replace files on save, so Create
// events count as writes.
func watchManifest(ctx context.Context, logger logrus.FieldLogger, manifestPath string, last gen.Config, out, finish string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(manifestPath)); err != nil {
		return fmt.Errorf("watching %s: %w", manifestPath, err)
	}
	logger.WithField("manifest", manifestPath).Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-watcher.Errors:
			return fmt.Errorf("watcher: %w", err)
		case event := <-watcher.Events:
			if event.Name != manifestPath || !event.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cfg, changed := nextConfig(logger, manifestPath, last)
			if !changed {
				continue
			}
			if err := generate(ctx, logger, cfg, out, finish); err != nil {
				return err
			}
			last = cfg
		}
	}
}

// nextConfig reads the manifest and reports whether it carries a
// configuration different from the last run. Each run rewrites the
// manifest it was started from, so an event decoding to the last
// configuration is the generator's own write, not a change.
func nextConfig(logger logrus.FieldLogger, path string, last gen.Config) (gen.Config, bool) {
	m, err := load.ReadFile(path)
	if err != nil {
		logger.WithError(err).Warn("manifest unreadable, skipping run")
		return last, false
	}
	cfg, err := m.Config()
	if err != nil {
		logger.WithError(err).Warn("manifest invalid, skipping run")
		return last, false
	}
	if cfg == last {
		return last, false
	}
	return cfg, true
}
