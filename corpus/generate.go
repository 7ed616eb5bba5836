// Package corpus はカタログをフレーム列に変換し、JSON成果物との間で読み書きします。
package corpus

import (
	"github.com/YuminosukeSato/framegen/catalog"
	"github.com/YuminosukeSato/framegen/core/frame"
	"github.com/YuminosukeSato/framegen/pkg/errors"
)

// Generate はcatの全パターンをカタログ順にエンコードします。
// 有効だが疑わしいエントリ（Catalog.Warnings参照）はerrors.Warnで報告します。
func Generate(cat *catalog.Catalog, mode frame.Mode) ([]frame.Frame, error) {
	if cat == nil {
		return nil, errors.WithStack(errors.ErrEmptyCatalog)
	}
	if !mode.Valid() {
		return nil, errors.Wrapf(errors.ErrUnknownMode, "generate %s", cat.Name())
	}
	for _, w := range cat.Warnings(mode) {
		errors.Warn(w)
	}

	patterns := cat.Patterns()
	frames := make([]frame.Frame, 0, len(patterns))
	for i, p := range patterns {
		f, err := p.Encode(mode)
		if err != nil {
			return nil, errors.NewCatalogError(i, err)
		}
		frames = append(frames, f)
	}
	return frames, nil
}
