package corpus

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/YuminosukeSato/framegen/pkg/errors"
)

// RelPath はユーザーデータルート以下の成果物の位置です。
var RelPath = filepath.Join("hasher", "data", "frames", "training_frames.json")

// DataRoot は現在のOSにおけるユーザーごとのデータディレクトリを返します。
// Linuxなどでは $XDG_DATA_HOME または ~/.local/share、macOSでは
// ~/Library/Application Support、Windowsでは %APPDATA% です。
func DataRoot() (string, error) {
	return dataRoot(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

func dataRoot(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	switch goos {
	case "windows":
		if appData := getenv("APPDATA"); appData != "" {
			return appData, nil
		}
		h, err := home()
		if err != nil {
			return "", errors.Wrap(err, "resolve data root")
		}
		return filepath.Join(h, "AppData", "Roaming"), nil
	case "darwin":
		h, err := home()
		if err != nil {
			return "", errors.Wrap(err, "resolve data root")
		}
		return filepath.Join(h, "Library", "Application Support"), nil
	default:
		if xdg := getenv("XDG_DATA_HOME"); xdg != "" && filepath.IsAbs(xdg) {
			return xdg, nil
		}
		h, err := home()
		if err != nil {
			return "", errors.Wrap(err, "resolve data root")
		}
		return filepath.Join(h, ".local", "share"), nil
	}
}

// OutputPath はrootにRelPathを連結する
func OutputPath(root string) string {
	return filepath.Join(root, RelPath)
}
