// Command framegen は学習パイプラインが読み込む合成学習フレームのコーパスを書き出します。
//
// フラグなしの場合は組み込みのrawカタログをエンコードし、
// <user-data-root>/hasher/data/frames/training_frames.json を置き換えます。
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/YuminosukeSato/framegen/catalog"
	"github.com/YuminosukeSato/framegen/core/frame"
	"github.com/YuminosukeSato/framegen/corpus"
	"github.com/YuminosukeSato/framegen/metrics"
	"github.com/YuminosukeSato/framegen/pkg/config"
	"github.com/YuminosukeSato/framegen/pkg/errors"
	"github.com/YuminosukeSato/framegen/pkg/log"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run はプロセスの終了コードを返す（成功0、実行失敗1、使い方の誤り2）
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "framegen: %v\n", err)
		return 2
	}

	fs := flag.NewFlagSet("framegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	modeFlag := fs.String("mode", cfg.Mode.String(), "target token convention: raw or remapped")
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath, "JSON catalog fixture (default: built-in catalog for -mode)")
	fs.StringVar(&cfg.DataRoot, "data-root", cfg.DataRoot, "override the per-user data directory")
	fs.StringVar(&cfg.StatsPath, "stats", cfg.StatsPath, "also write corpus statistics as JSON to this file")
	fs.StringVar(&cfg.PlotPath, "plot", cfg.PlotPath, "also render a target-token chart (.png, .svg, ...)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	dump := fs.Bool("dump-catalog", false, "print the selected catalog as a JSON fixture and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if cfg.Mode, err = frame.ParseMode(*modeFlag); err != nil {
		fmt.Fprintf(stderr, "framegen: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "framegen: %v\n", err)
		return 2
	}

	slogger, err := log.SetupLogger(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "framegen: %v\n", err)
		return 2
	}
	errors.SetZerologWarnFunc(errors.NewZerologWarnFunc(log.NewWarnLogger(stderr, cfg.LogLevel)))
	defer errors.SetZerologWarnFunc(nil)

	logger := log.NewSlogLogger(slogger).With(log.RunIDKey, uuid.NewString())
	logger.Debug("configuration resolved", log.ConfigKey, cfg)

	if *dump {
		err = dumpCatalog(cfg, stdout)
	} else {
		err = generate(ctx, cfg, logger, stdout)
	}
	if err != nil {
		logger.Error("framegen failed", err)
		return 1
	}
	return 0
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.Load(cfg.CatalogPath)
	}
	return catalog.ForMode(cfg.Mode)
}

func dumpCatalog(cfg config.Config, stdout io.Writer) error {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	return catalog.Dump(stdout, cat)
}

func generate(ctx context.Context, cfg config.Config, logger log.Logger, stdout io.Writer) (err error) {
	defer errors.Recover(&err, "generate")
	start := time.Now()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	logger.Debug("catalog loaded",
		log.ComponentKey, "catalog",
		log.OperationKey, log.OperationLoad,
		log.CatalogSourceKey, cat.Name(),
		log.CatalogEntriesKey, cat.Len(),
	)

	frames, err := corpus.Generate(cat, cfg.Mode)
	if err != nil {
		return err
	}
	logger.Debug("frames encoded",
		log.ComponentKey, "corpus",
		log.OperationKey, log.OperationGenerate,
		log.ModeKey, cfg.Mode.String(),
		log.FramesKey, len(frames),
	)
	path, err := cfg.OutputPath()
	if err != nil {
		return err
	}
	n, err := corpus.Write(ctx, path, frames)
	if err != nil {
		return err
	}

	summary, err := metrics.Summarize(frames)
	if err != nil {
		return err
	}
	logger.Info("corpus written",
		log.ComponentKey, "corpus",
		log.OperationKey, log.OperationWrite,
		log.ModeKey, cfg.Mode.String(),
		log.FramesKey, summary.Frames,
		log.ChunksKey, summary.Chunks,
		log.MeanContextKey, summary.ContextMean,
		log.StdContextKey, summary.ContextStd,
		log.DistinctTargetKey, summary.DistinctTargets,
		log.BytesKey, n,
		log.PathKey, path,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	if cfg.StatsPath != "" {
		if err := writeStats(ctx, cfg.StatsPath, summary); err != nil {
			return err
		}
		logger.Info("statistics written", log.ComponentKey, "metrics", log.OperationKey, log.OperationSummary, log.PathKey, cfg.StatsPath)
	}
	if cfg.PlotPath != "" {
		title := fmt.Sprintf("%s targets (%s)", cat.Name(), cfg.Mode)
		if err := metrics.PlotTargetHistogram(frames, title, cfg.PlotPath); err != nil {
			return err
		}
		logger.Info("plot written", log.ComponentKey, "metrics", log.OperationKey, log.OperationPlot, log.PathKey, cfg.PlotPath)
	}

	fmt.Fprintf(stdout, "Generated %d frames in %s\n", len(frames), path)
	return nil
}

func writeStats(ctx context.Context, path string, summary metrics.Summary) error {
	var buf bytes.Buffer
	if err := summary.WriteJSON(&buf); err != nil {
		return err
	}
	return corpus.WriteFile(ctx, path, &buf)
}
