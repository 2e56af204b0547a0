// ABOUTME: Tests for environment variable expansion in config
// ABOUTME: Validates ${VAR} replacement for set, unset, and mixed patterns

package config

import "testing"

func TestExpandEnv_Set(t *testing.T) {
	t.Setenv("TEST_CRYPT_NAME", "cryptroot")
	if got := expandEnv("${TEST_CRYPT_NAME}"); got != "cryptroot" {
		t.Errorf("expandEnv = %q; want %q", got, "cryptroot")
	}
}

func TestExpandEnv_Unset(t *testing.T) {
	if got := expandEnv("${DEFINITELY_NOT_SET_12345}"); got != "" {
		t.Errorf("expandEnv = %q; want empty for unset var", got)
	}
}

func TestExpandEnv_Mixed(t *testing.T) {
	t.Setenv("TEST_DEV_ROOT", "/dev")
	if got := expandEnv("${TEST_DEV_ROOT}/disk/by-uuid"); got != "/dev/disk/by-uuid" {
		t.Errorf("expandEnv = %q; want %q", got, "/dev/disk/by-uuid")
	}
}

func TestExpandEnv_NoPattern(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "plain string", "$HOME"} {
		if got := expandEnv(s); got != s {
			t.Errorf("expandEnv(%q) = %q; want unchanged", s, got)
		}
	}
}

func TestPath(t *testing.T) {
	t.Setenv(pathEnv, "")
	if got := Path(); got != DefaultPath {
		t.Errorf("Path() = %q, want %q", got, DefaultPath)
	}
	t.Setenv(pathEnv, "/tmp/theme.yaml")
	if got := Path(); got != "/tmp/theme.yaml" {
		t.Errorf("Path() = %q, want override", got)
	}
}
