// Package metrics はフレームコーパスの要約統計量と可視化を提供します。
package metrics

import (
	"encoding/json"
	"io"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/framegen/core/frame"
	"github.com/YuminosukeSato/framegen/pkg/errors"
)

// Summary はコーパス全体の要約統計量です。
type Summary struct {
	Frames          int     `json:"frames"`
	Chunks          int     `json:"chunks"`
	Sources         int     `json:"sources"`
	ContextMean     float64 `json:"context_mean"`
	ContextStd      float64 `json:"context_std"`
	ContextMin      int     `json:"context_min"`
	ContextMax      int     `json:"context_max"`
	DistinctTargets int     `json:"distinct_targets"`
	TargetMin       int     `json:"target_min"`
	TargetMax       int     `json:"target_max"`
	ZeroFeatures    int     `json:"zero_feature_frames"`
}

type chunkID struct {
	source string
	chunk  int
}

// Summarize はフレーム列の要約統計量を計算する
func Summarize(frames []frame.Frame) (Summary, error) {
	// 入力検証
	if len(frames) == 0 {
		return Summary{}, errors.NewValidationError("frames", "must not be empty", 0)
	}

	lengths := make([]float64, len(frames))
	targets := make([]float64, len(frames))
	chunks := make(map[chunkID]struct{})
	sources := make(map[string]struct{})
	distinct := make(map[int]struct{})
	zero := 0

	for i, f := range frames {
		lengths[i] = float64(f.ContextLen())
		targets[i] = float64(f.TargetToken)
		sources[f.SourceFile] = struct{}{}
		chunks[chunkID{f.SourceFile, f.ChunkID}] = struct{}{}
		distinct[f.TargetToken] = struct{}{}
		if f.FeatureVector.IsZero() {
			zero++
		}
	}

	// 標本標準偏差（フレームが1つの場合はNaNになるため0とする）
	mean, std := stat.MeanStdDev(lengths, nil)
	if len(frames) == 1 {
		std = 0
	}

	return Summary{
		Frames:          len(frames),
		Chunks:          len(chunks),
		Sources:         len(sources),
		ContextMean:     mean,
		ContextStd:      std,
		ContextMin:      int(floats.Min(lengths)),
		ContextMax:      int(floats.Max(lengths)),
		DistinctTargets: len(distinct),
		TargetMin:       int(floats.Min(targets)),
		TargetMax:       int(floats.Max(targets)),
		ZeroFeatures:    zero,
	}, nil
}

// TargetCounts はターゲットトークンごとの出現回数をトークンID昇順で返す
func TargetCounts(frames []frame.Frame) (tokens []int, counts []int) {
	byToken := make(map[int]int)
	for _, f := range frames {
		byToken[f.TargetToken]++
	}
	tokens = make([]int, 0, len(byToken))
	for tok := range byToken {
		tokens = append(tokens, tok)
	}
	sort.Ints(tokens)
	counts = make([]int, len(tokens))
	for i, tok := range tokens {
		counts[i] = byToken[tok]
	}
	return tokens, counts
}

// WriteJSON は要約をインデント付きJSONとしてwに書き出す
func (s Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "encode summary")
	}
	return nil
}
