// Package main provides the console command: it asks a console manager whether
// first-run setup is pending and prints where a user of the given role would
// land after logging in.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/voiceconsole/manager/internal/routing"
	"github.com/voiceconsole/manager/internal/setup"
	"github.com/voiceconsole/manager/pkg/logger"
)

// report is printed as YAML on stdout.
type report struct {
	Redirect   string `yaml:"redirect"`
	NeedsSetup *bool  `yaml:"needs_setup,omitempty"`
	State      string `yaml:"state"`
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "console-state.yaml"
	}
	return filepath.Join(dir, "console", "state.yaml")
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(stderr)

	apiURL := fs.String("api", "http://localhost:8080/api", "console API base URL")
	role := fs.String("role", "", "role of the user that logs in (admin, editor, viewer)")
	statePath := fs.String("state", defaultStatePath(), "YAML file holding client flags")
	markDone := fs.Bool("mark-done", false, "record that the admin finished the configuration wizard")
	skipCheck := fs.Bool("offline", false, "skip the setup status request")
	timeout := fs.Duration("timeout", 10*time.Second, "setup status request timeout")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	if err := logger.InitializeWithWriters(level, false, stderr, stderr); err != nil {
		fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return 1
	}

	flags := routing.NewFileFlags(*statePath)

	if *markDone {
		if err := flags.Set(routing.AdminFirstLoginDoneKey, "true"); err != nil {
			logger.Error("Failed to write state file: %v", err)
			return 1
		}
		logger.Debug("Marked admin first login done in %s", flags.Path())
	}

	out := report{
		Redirect: routing.PostLoginPath(userFor(*role), flags),
		State:    flags.Path(),
	}

	code := 0
	if !*skipCheck {
		checker := setup.NewChecker(*apiURL, setup.WithTimeout(*timeout))
		needsSetup, err := checker.NeedsSetup(ctx)
		if err != nil {
			logger.Error("Setup status check failed: %v", err)
			code = 1
		} else {
			out.NeedsSetup = &needsSetup
		}
	}

	enc := yaml.NewEncoder(stdout)
	if err := enc.Encode(out); err != nil {
		logger.Error("Failed to write report: %v", err)
		return 1
	}
	if err := enc.Close(); err != nil {
		return 1
	}

	return code
}

// userFor returns nil when no role was given, which resolves like a logged-out user.
func userFor(role string) *routing.User {
	if role == "" {
		return nil
	}
	return &routing.User{Role: role}
}
