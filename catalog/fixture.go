package catalog

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/YuminosukeSato/framegen/core/frame"
	"github.com/YuminosukeSato/framegen/pkg/errors"
)

// fixtureEntry はフィクスチャの1エントリです。
// feature_vector キーの欠落を検出するため、Pattern.Features をポインタで上書きします。
type fixtureEntry struct {
	Pattern
	Features *frame.FeatureVector `json:"feature_vector"`
}

// Load はpathからカタログのフィクスチャを読み込みます。カタログ名はpathになります。
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("open catalog", path, err)
	}
	defer f.Close()

	return Decode(path, f)
}

// Decode はrからパターンオブジェクトのJSON配列を読み込みます。
// エラーが該当インデックスを示せるよう、各エントリは個別にデコード・検証します。
func Decode(name string, r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrapf(err, "decode catalog %s", name)
	}
	// 配列の後ろに余分なデータがあれば不正なフィクスチャとして扱う
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.Newf("decode catalog %s: unexpected data after array", name)
	}

	patterns := make([]Pattern, len(raw))
	for i, msg := range raw {
		entry, err := decodeEntry(msg)
		if err != nil {
			return nil, errors.NewCatalogError(i, err)
		}
		patterns[i] = entry
	}
	return New(name, patterns...)
}

func decodeEntry(msg json.RawMessage) (Pattern, error) {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.DisallowUnknownFields()

	var e fixtureEntry
	if err := dec.Decode(&e); err != nil {
		return Pattern{}, err
	}
	// キーの欠落（またはnull）は長さ0の特徴量ベクトルとみなす
	if e.Features == nil {
		return Pattern{}, errors.NewArityError("feature_vector", frame.FeatureLen, 0)
	}
	p := e.Pattern
	p.Features = *e.Features
	return p, nil
}

// Dump はDecodeが読めるフィクスチャ形式でcをwに書き出します。
func Dump(w io.Writer, c *Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.patterns); err != nil {
		return errors.Wrapf(err, "encode catalog %s", c.name)
	}
	return nil
}
