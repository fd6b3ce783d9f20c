// Package project resolves the Google Cloud project ID that generated
// records are addressed to.
package project

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// envVars are checked in order when no explicit ID is given.
var envVars = []string{"GOOGLE_CLOUD_PROJECT", "GCP_PROJECT"}

// ErrNotResolved is returned when no source yields a project ID. Its text
// carries the remediation steps verbatim for the CLI to print.
var ErrNotResolved = errors.New(
	"project ID not found; provide it using one of these methods:\n" +
		"  1. Pass the --project-id flag\n" +
		"  2. Set an environment variable: export GOOGLE_CLOUD_PROJECT=YOUR_PROJECT_ID\n" +
		"  3. Set a gcloud default project: gcloud config set project YOUR_PROJECT_ID")

// gcloudDefault queries the local gcloud CLI for its configured project.
// Overridable in tests.
var gcloudDefault = func(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "gcloud", "config", "get-value", "project").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Resolve returns the project ID from, in priority order: the explicit
// value, the GOOGLE_CLOUD_PROJECT and GCP_PROJECT environment variables,
// and the gcloud CLI's default configuration. When all three are absent it
// returns ErrNotResolved.
func Resolve(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	for _, key := range envVars {
		if id := strings.TrimSpace(os.Getenv(key)); id != "" {
			return id, nil
		}
	}

	// gcloud prints "(unset)" when no default project is configured.
	if id, err := gcloudDefault(ctx); err == nil {
		id = strings.TrimSpace(id)
		if id != "" && id != "(unset)" {
			return id, nil
		}
	}

	return "", ErrNotResolved
}
