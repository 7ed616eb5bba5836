//go:build windows

package corpus

// syncDir はWindowsでは何もしない（ディレクトリをfsyncできないため）
func syncDir(dir string) error { return nil }
