package metrics

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/YuminosukeSato/framegen/catalog"
	"github.com/YuminosukeSato/framegen/core/frame"
	"github.com/YuminosukeSato/framegen/corpus"
	"github.com/YuminosukeSato/framegen/pkg/errors"
)

func generate(t *testing.T, cat *catalog.Catalog, mode frame.Mode) []frame.Frame {
	t.Helper()
	frames, err := corpus.Generate(cat, mode)
	if err != nil {
		t.Fatal(err)
	}
	return frames
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		frames    []frame.Frame
		want      Summary
		tolerance float64
	}{
		{
			name:   "remapped builtin",
			frames: generate(t, catalog.Remapped(), frame.Remapped),
			// 長さ 1,2,2,3,4 → 平均 2.4, 標本分散 5.2/4
			want: Summary{
				Frames: 5, Chunks: 2, Sources: 1,
				ContextMean: 2.4, ContextStd: math.Sqrt(5.2 / 4),
				ContextMin: 1, ContextMax: 4,
				DistinctTargets: 5, TargetMin: 0, TargetMax: 917,
				ZeroFeatures: 0,
			},
			tolerance: 1e-10,
		},
		{
			name:   "raw builtin",
			frames: generate(t, catalog.Raw(), frame.Raw),
			// 長さ 1,1,1,2,2,1,1,1,1,1 → 平均 1.2, 標本分散 1.6/9
			want: Summary{
				Frames: 10, Chunks: 10, Sources: 1,
				ContextMean: 1.2, ContextStd: math.Sqrt(1.6 / 9),
				ContextMin: 1, ContextMax: 2,
				DistinctTargets: 6, TargetMin: 0, TargetMax: 1917,
				ZeroFeatures: 10,
			},
			tolerance: 1e-10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(tt.frames)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got.ContextMean-tt.want.ContextMean) > tt.tolerance {
				t.Errorf("ContextMean = %v, want %v", got.ContextMean, tt.want.ContextMean)
			}
			if math.Abs(got.ContextStd-tt.want.ContextStd) > tt.tolerance {
				t.Errorf("ContextStd = %v, want %v", got.ContextStd, tt.want.ContextStd)
			}
			got.ContextMean, got.ContextStd = tt.want.ContextMean, tt.want.ContextStd
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarizeSingleFrame(t *testing.T) {
	f, err := frame.Encode("demo.txt", 1, 0, []int{9906}, 1917, frame.ZeroFeatures(), frame.Raw)
	if err != nil {
		t.Fatal(err)
	}
	s, err := Summarize([]frame.Frame{f})
	if err != nil {
		t.Fatal(err)
	}
	if s.ContextStd != 0 || s.ContextMean != 1 {
		t.Errorf("single frame summary = %+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	var vErr *errors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestTargetCounts(t *testing.T) {
	tokens, counts := TargetCounts(generate(t, catalog.Raw(), frame.Raw))
	wantTokens := []int{0, 30, 374, 701, 836, 1917}
	wantCounts := []int{2, 1, 1, 2, 1, 3}
	if len(tokens) != len(wantTokens) {
		t.Fatalf("tokens = %v, want %v", tokens, wantTokens)
	}
	for i := range wantTokens {
		if tokens[i] != wantTokens[i] || counts[i] != wantCounts[i] {
			t.Errorf("entry %d = (%d, %d), want (%d, %d)", i, tokens[i], counts[i], wantTokens[i], wantCounts[i])
		}
	}
}

func TestSummaryWriteJSON(t *testing.T) {
	s, err := Summarize(generate(t, catalog.Remapped(), frame.Remapped))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := s.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	var back Summary
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if back.Frames != 5 || back.Chunks != 2 {
		t.Errorf("decoded summary = %+v", back)
	}
}
