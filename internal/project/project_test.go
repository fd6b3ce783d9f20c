package project

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func withGcloud(t *testing.T, fn func(ctx context.Context) (string, error)) {
	t.Helper()
	old := gcloudDefault
	gcloudDefault = fn
	t.Cleanup(func() { gcloudDefault = old })
}

func gcloudUnavailable(t *testing.T) {
	t.Helper()
	withGcloud(t, func(ctx context.Context) (string, error) {
		return "", errors.New("gcloud: command not found")
	})
}

func TestResolve_ExplicitWins(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "env-project")
	withGcloud(t, func(ctx context.Context) (string, error) { return "gcloud-project", nil })

	id, err := Resolve(context.Background(), "flag-project")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if id != "flag-project" {
		t.Errorf("id = %q, want flag-project", id)
	}
}

func TestResolve_EnvOrder(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "primary-env")
	t.Setenv("GCP_PROJECT", "secondary-env")
	gcloudUnavailable(t)

	id, err := Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if id != "primary-env" {
		t.Errorf("id = %q, want primary-env", id)
	}
}

func TestResolve_SecondaryEnvFallback(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("GCP_PROJECT", "secondary-env")
	gcloudUnavailable(t)

	id, err := Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if id != "secondary-env" {
		t.Errorf("id = %q, want secondary-env", id)
	}
}

func TestResolve_GcloudFallback(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("GCP_PROJECT", "")
	withGcloud(t, func(ctx context.Context) (string, error) { return "gcloud-project\n", nil })

	id, err := Resolve(context.Background(), "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if id != "gcloud-project" {
		t.Errorf("id = %q, want gcloud-project", id)
	}
}

func TestResolve_GcloudUnsetIgnored(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("GCP_PROJECT", "")
	withGcloud(t, func(ctx context.Context) (string, error) { return "(unset)", nil })

	_, err := Resolve(context.Background(), "")
	if !errors.Is(err, ErrNotResolved) {
		t.Errorf("err = %v, want ErrNotResolved", err)
	}
}

func TestResolve_NothingAvailable(t *testing.T) {
	t.Setenv("GOOGLE_CLOUD_PROJECT", "")
	t.Setenv("GCP_PROJECT", "")
	gcloudUnavailable(t)

	_, err := Resolve(context.Background(), "")
	if !errors.Is(err, ErrNotResolved) {
		t.Fatalf("err = %v, want ErrNotResolved", err)
	}
	// The error text must carry remediation instructions.
	for _, want := range []string{"--project-id", "GOOGLE_CLOUD_PROJECT", "gcloud config set project"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %q, got:\n%s", want, err.Error())
		}
	}
}
