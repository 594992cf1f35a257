// Package testutil provides shared config fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// Profile describes one entry of the shared config and credentials files.
type Profile struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// WriteSharedConfig writes shared config and credentials files holding
// profiles into a temporary directory and points the SDK at them.
// Credential variables from the surrounding environment are cleared so
// resolution only sees the files.
func WriteSharedConfig(t *testing.T, profiles map[string]Profile) {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config")
	credentialsPath := filepath.Join(dir, "credentials")

	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	var cfg, creds strings.Builder
	for _, name := range names {
		p := profiles[name]

		section := "profile " + name
		if name == "default" {
			section = name
		}
		fmt.Fprintf(&cfg, "[%s]\n", section)
		if p.Region != "" {
			fmt.Fprintf(&cfg, "region = %s\n", p.Region)
		}

		fmt.Fprintf(&creds, "[%s]\n", name)
		fmt.Fprintf(&creds, "aws_access_key_id = %s\n", p.AccessKeyID)
		fmt.Fprintf(&creds, "aws_secret_access_key = %s\n", p.SecretAccessKey)
	}

	if err := os.WriteFile(configPath, []byte(cfg.String()), 0o600); err != nil {
		t.Fatalf("write shared config: %v", err)
	}
	if err := os.WriteFile(credentialsPath, []byte(creds.String()), 0o600); err != nil {
		t.Fatalf("write shared credentials: %v", err)
	}

	t.Setenv("AWS_CONFIG_FILE", configPath)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", credentialsPath)
	for _, name := range []string{
		"AWS_PROFILE",
		"AWS_DEFAULT_PROFILE",
		"AWS_ACCESS_KEY_ID",
		"AWS_SECRET_ACCESS_KEY",
		"AWS_SESSION_TOKEN",
		"AWS_REGION",
		"AWS_DEFAULT_REGION",
	} {
		UnsetEnv(t, name)
	}
}

// UnsetEnv removes name for the duration of the test.
func UnsetEnv(t *testing.T, name string) {
	t.Helper()
	// t.Setenv registers the restore; Unsetenv then removes the variable.
	t.Setenv(name, "")
	if err := os.Unsetenv(name); err != nil {
		t.Fatalf("unset %s: %v", name, err)
	}
}
