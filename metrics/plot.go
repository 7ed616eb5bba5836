package metrics

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/framegen/core/frame"
	"github.com/YuminosukeSato/framegen/pkg/errors"
)

// 対応する出力形式（gonum/plotが拡張子から判定する）
var plotFormats = map[string]bool{
	".png": true, ".svg": true, ".pdf": true, ".eps": true,
	".jpg": true, ".jpeg": true, ".tif": true, ".tiff": true,
}

// PlotTargetHistogram はターゲットトークンの出現回数を棒グラフとしてpathに保存する。
// 出力形式はpathの拡張子で決まる。
func PlotTargetHistogram(frames []frame.Frame, title, path string) error {
	if len(frames) == 0 {
		return errors.NewValidationError("frames", "must not be empty", 0)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !plotFormats[ext] {
		return errors.NewValidationError("plot_path", "unsupported image format", ext)
	}

	tokens, counts := TargetCounts(frames)
	values := make(plotter.Values, len(counts))
	labels := make([]string, len(tokens))
	for i := range tokens {
		values[i] = float64(counts[i])
		labels[i] = fmt.Sprint(tokens[i])
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "target token"
	p.Y.Label.Text = "frames"

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return errors.Wrap(err, "build bar chart")
	}
	p.Add(bars)
	p.NominalX(labels...)

	width := vg.Length(len(tokens))*vg.Points(30) + 2*vg.Inch
	if err := p.Save(width, 3*vg.Inch, path); err != nil {
		return errors.NewIOError("save plot", path, err)
	}
	return nil
}
