package corpus

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/YuminosukeSato/framegen/pkg/errors"
)

func TestDataRoot(t *testing.T) {
	home := func() (string, error) { return "/home/ada", nil }
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}

	tests := []struct {
		name string
		goos string
		env  map[string]string
		want string
	}{
		{name: "linux default", goos: "linux", want: filepath.Join("/home/ada", ".local", "share")},
		{name: "linux xdg", goos: "linux", env: map[string]string{"XDG_DATA_HOME": "/data/xdg"}, want: "/data/xdg"},
		{name: "linux relative xdg ignored", goos: "linux", env: map[string]string{"XDG_DATA_HOME": "rel"}, want: filepath.Join("/home/ada", ".local", "share")},
		{name: "darwin", goos: "darwin", want: filepath.Join("/home/ada", "Library", "Application Support")},
		{name: "windows appdata", goos: "windows", env: map[string]string{"APPDATA": `C:\Users\ada\AppData\Roaming`}, want: `C:\Users\ada\AppData\Roaming`},
		{name: "windows fallback", goos: "windows", want: filepath.Join("/home/ada", "AppData", "Roaming")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dataRoot(tt.goos, env(tt.env), home)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("dataRoot() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDataRootNoHome(t *testing.T) {
	noHome := func() (string, error) { return "", errors.New("$HOME is not defined") }
	if _, err := dataRoot("linux", func(string) string { return "" }, noHome); err == nil {
		t.Error("expected error without a home directory")
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("/root/.local/share")
	if !strings.HasSuffix(filepath.ToSlash(got), "hasher/data/frames/training_frames.json") {
		t.Errorf("OutputPath() = %q", got)
	}
}
