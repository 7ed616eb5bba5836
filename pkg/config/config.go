// Package config はframegenコマンドの実行設定を保持します。
package config

import (
	"os"

	"github.com/YuminosukeSato/framegen/core/frame"
	"github.com/YuminosukeSato/framegen/corpus"
	"github.com/YuminosukeSato/framegen/pkg/errors"
	"github.com/YuminosukeSato/framegen/pkg/log"
)

// Config は1回の生成実行に関する設定一式です。オプションのパスはゼロ値で「指定なし」を表します。
// JSONタグはログ出力時の設定ダンプで使われます。
type Config struct {
	Mode        frame.Mode `json:"mode"`
	DataRoot    string     `json:"data_root"`    // 空: ユーザーごとのデータディレクトリ
	CatalogPath string     `json:"catalog_path"` // 空: Modeに対応する組み込みカタログ
	LogLevel    string     `json:"log_level"`
	StatsPath   string     `json:"stats_path"`
	PlotPath    string     `json:"plot_path"`
}

// Default はフラグなしで起動した場合の設定を返します。
func Default() Config {
	return Config{
		Mode:     frame.Raw,
		LogLevel: "warn",
	}
}

// FromEnv はDefaultにFRAMEGEN_*環境変数を上書きした設定を返します。
func FromEnv() (Config, error) {
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	cfg.DataRoot = envStr(getenv, "FRAMEGEN_DATA_ROOT", cfg.DataRoot)
	cfg.CatalogPath = envStr(getenv, "FRAMEGEN_CATALOG", cfg.CatalogPath)
	cfg.LogLevel = envStr(getenv, "FRAMEGEN_LOG_LEVEL", cfg.LogLevel)
	if v := getenv("FRAMEGEN_MODE"); v != "" {
		mode, err := frame.ParseMode(v)
		if err != nil {
			return cfg, errors.Wrap(err, "FRAMEGEN_MODE")
		}
		cfg.Mode = mode
	}
	return cfg, nil
}

// Validate は設定が使用可能かを検証します。
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return errors.NewValidationError("mode", "must be raw or remapped", int(c.Mode))
	}
	if _, err := log.ToLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// OutputPath はコーパスの出力先パスを解決します。
func (c Config) OutputPath() (string, error) {
	root := c.DataRoot
	if root == "" {
		var err error
		if root, err = corpus.DataRoot(); err != nil {
			return "", err
		}
	}
	return corpus.OutputPath(root), nil
}

func envStr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}
