package frame

import (
	"strings"

	"github.com/YuminosukeSato/framegen/pkg/errors"
)

// Mode はEncodeが適用するターゲットトークンの規約を選択します。
type Mode int

const (
	// Raw はターゲットトークンIDをそのままコピーする
	Raw Mode = iota
	// Remapped はターゲットトークンIDを [0, VocabSize) に縮約する
	Remapped
)

// String は "raw" または "remapped" を返す
func (m Mode) String() string {
	switch m {
	case Raw:
		return "raw"
	case Remapped:
		return "remapped"
	default:
		return "unknown"
	}
}

// Valid はmが既知のモードかどうかを返す
func (m Mode) Valid() bool {
	return m == Raw || m == Remapped
}

// ParseMode は "raw" または "remapped" を解析します（大文字小文字は区別しません）。
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return Raw, nil
	case "remapped", "remap":
		return Remapped, nil
	default:
		return Raw, errors.Wrapf(errors.ErrUnknownMode, "parse mode %q", s)
	}
}

// MarshalText は encoding.TextMarshaler を実装します。
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.Wrapf(errors.ErrUnknownMode, "marshal mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText は encoding.TextUnmarshaler を実装します。
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
