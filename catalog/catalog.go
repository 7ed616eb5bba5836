// Package catalog はコーパスの元になるトークンパターンの順序付きリストを保持します。
// Catalogは生成器に明示的に渡される値です。組み込みコーパスはbuiltin.goにあり、
// Loadは同じレコードをJSONフィクスチャから読み込みます。
package catalog

import (
	"github.com/YuminosukeSato/framegen/core/frame"
	"github.com/YuminosukeSato/framegen/pkg/errors"
)

// Pattern は手書きの例1件です。コンテキストのトークン列、それに続くトークン、
// 付与する特徴量ワードを持ちます。
type Pattern struct {
	Source      string              `json:"source_file"`
	ChunkID     int                 `json:"chunk_id"`
	WindowStart int                 `json:"window_start"`
	Tokens      []int               `json:"token_sequence"`
	Target      int                 `json:"target"`
	Features    frame.FeatureVector `json:"feature_vector"`
}

// Validate はpをFrameの不変条件に照らして検証する
func (p Pattern) Validate() error {
	return frame.Validate(p.Source, p.ChunkID, p.WindowStart, p.Tokens, p.Target)
}

// Encode はmodeを使ってpをFrameに変換する
func (p Pattern) Encode(mode frame.Mode) (frame.Frame, error) {
	return frame.Encode(p.Source, p.ChunkID, p.WindowStart, p.Tokens, p.Target, p.Features, mode)
}

func (p Pattern) clone() Pattern {
	c := p
	c.Tokens = append([]int(nil), p.Tokens...)
	return c
}

// Catalog は不変で順序付きのパターン集合です。
type Catalog struct {
	name     string
	patterns []Pattern
}

// New はパターンを検証し、順序を保ったCatalogを返します。
// 最初の不正なエントリはインデックス付きのCatalogErrorとして報告されます。
func New(name string, patterns ...Pattern) (*Catalog, error) {
	if len(patterns) == 0 {
		return nil, errors.WithStack(errors.ErrEmptyCatalog)
	}
	owned := make([]Pattern, len(patterns))
	for i, p := range patterns {
		if err := p.Validate(); err != nil {
			return nil, errors.NewCatalogError(i, err)
		}
		owned[i] = p.clone()
	}
	return &Catalog{name: name, patterns: owned}, nil
}

// Name はカタログの出所（"builtin/raw" やファイルパス）を返す
func (c *Catalog) Name() string {
	return c.name
}

// Len はパターン数を返す
func (c *Catalog) Len() int {
	return len(c.patterns)
}

// Patterns はカタログ順のパターンのコピーを返す
func (c *Catalog) Patterns() []Pattern {
	out := make([]Pattern, len(c.patterns))
	for i, p := range c.patterns {
		out[i] = p.clone()
	}
	return out
}

// Warnings は有効だがmodeにとって疑わしいエントリを列挙します。
// Remappedモードでは呼び出し側がマーカーワードを与える前提のため、
// 全ゼロの特徴量ベクトルを警告対象とします。
func (c *Catalog) Warnings(mode frame.Mode) []error {
	if mode != frame.Remapped {
		return nil
	}
	var out []error
	for i, p := range c.patterns {
		if p.Features.IsZero() {
			out = append(out, errors.NewZeroFeaturesWarning(i, p.Source, p.ChunkID))
		}
	}
	return out
}
