package corpus

import (
	"testing"

	"github.com/YuminosukeSato/framegen/catalog"
	"github.com/YuminosukeSato/framegen/core/frame"
	"github.com/YuminosukeSato/framegen/pkg/errors"
)

func TestGenerateOrderAndCount(t *testing.T) {
	tests := []struct {
		name string
		cat  *catalog.Catalog
		mode frame.Mode
	}{
		{name: "raw", cat: catalog.Raw(), mode: frame.Raw},
		{name: "remapped", cat: catalog.Remapped(), mode: frame.Remapped},
		{name: "raw catalog remapped", cat: catalog.Raw(), mode: frame.Remapped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames, err := Generate(tt.cat, tt.mode)
			if err != nil {
				t.Fatal(err)
			}
			patterns := tt.cat.Patterns()
			if len(frames) != len(patterns) {
				t.Fatalf("len(frames) = %d, want %d", len(frames), len(patterns))
			}
			for i, f := range frames {
				p := patterns[i]
				want := p.Target
				if tt.mode == frame.Remapped {
					want = p.Target % frame.VocabSize
				}
				if f.TargetToken != want {
					t.Errorf("frame %d target = %d, want %d", i, f.TargetToken, want)
				}
				if f.ChunkID != p.ChunkID || f.ContextLen() != len(p.Tokens) {
					t.Errorf("frame %d out of order: %+v vs %+v", i, f, p)
				}
				if f.FeatureVector != p.Features {
					t.Errorf("frame %d features modified", i)
				}
				if f.ContextHash != 0 {
					t.Errorf("frame %d context hash = %d", i, f.ContextHash)
				}
			}
		})
	}
}

func TestGenerateWarnsOnZeroFeaturesInRemappedMode(t *testing.T) {
	var warnings []error
	errors.SetWarningHandler(func(w error) { warnings = append(warnings, w) })
	t.Cleanup(func() { errors.SetWarningHandler(func(error) {}) })

	frames, err := Generate(catalog.Raw(), frame.Remapped)
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != len(frames) {
		t.Errorf("expected one warning per zero-filled entry, got %d for %d frames", len(warnings), len(frames))
	}

	warnings = nil
	if _, err := Generate(catalog.Remapped(), frame.Remapped); err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 0 {
		t.Errorf("marker-filled catalog should not warn, got %v", warnings)
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	if _, err := Generate(nil, frame.Raw); !errors.Is(err, errors.ErrEmptyCatalog) {
		t.Errorf("nil catalog: got %v", err)
	}
	if _, err := Generate(catalog.Raw(), frame.Mode(3)); !errors.Is(err, errors.ErrUnknownMode) {
		t.Errorf("bad mode: got %v", err)
	}
}
