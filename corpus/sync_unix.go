//go:build !windows

package corpus

import "os"

// syncDir はdirをfsyncし、完了したリネームをクラッシュ後も残す
func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
