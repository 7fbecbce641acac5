package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"tilde only", "~", home},
		{"tilde path", "~/logs/senso.log", filepath.Join(home, "logs/senso.log")},
		{"absolute unchanged", "/sys/class/hwmon", "/sys/class/hwmon"},
		{"other user unchanged", "~bob/x", "~bob/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandTilde(tt.input))
		})
	}
}

func TestExpand(t *testing.T) {
	t.Setenv("USER", "sensouser")
	t.Setenv("SENSO_TEST_DIR", "/opt/senso")
	home := getHome()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"user", "/var/log/${USER}.log", "/var/log/sensouser.log"},
		{"home", "${HOME}/senso.log", home + "/senso.log"},
		{"no variables", "/sys/class/hwmon", "/sys/class/hwmon"},
		{"bare form", "/var/log/$USER.log", "/var/log/sensouser.log"},
		{"any environment variable", "${SENSO_TEST_DIR}/x", "/opt/senso/x"},
		{"unset variable is empty", "/a${SENSO_UNSET_VAR}/b", "/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expand(tt.input))
		})
	}
}

func TestExpand_UserFallback(t *testing.T) {
	t.Setenv("USER", "")
	t.Setenv("LOGNAME", "loguser")
	assert.Equal(t, "loguser", Expand("${USER}"))

	t.Setenv("LOGNAME", "")
	assert.Equal(t, "user", Expand("${USER}"))
}

func TestExpand_TmpDir(t *testing.T) {
	got := Expand("${TMPDIR}/senso.log")
	assert.Equal(t, filepath.Join(os.TempDir(), "senso.log"), filepath.Clean(got))
}
