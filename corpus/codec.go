package corpus

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/YuminosukeSato/framegen/core/frame"
	"github.com/YuminosukeSato/framegen/pkg/errors"
)

// storedFrame は読み込み時のフレームです。
// feature_vector キーの欠落を検出するため、Frame.FeatureVector をポインタで上書きします。
type storedFrame struct {
	frame.Frame
	FeatureVector *frame.FeatureVector `json:"feature_vector"`
}

// Marshal はフレーム列をインデント付きJSON配列（末尾改行付き）に変換します。
// 出力はframesのみに依存するため、繰り返し実行してもバイト単位で同一です。
func Marshal(frames []frame.Frame) ([]byte, error) {
	if frames == nil {
		frames = []frame.Frame{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(frames); err != nil {
		return nil, errors.Wrap(err, "encode frames")
	}
	return buf.Bytes(), nil
}

// Unmarshal はフレーム配列を解析し、各フレームの不変条件を検証します。
func Unmarshal(data []byte) ([]frame.Frame, error) {
	return decode(bytes.NewReader(data))
}

// Read はpathに保存されたフレーム配列を読み込みます。
func Read(path string) ([]frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("open corpus", path, err)
	}
	defer f.Close()

	frames, err := decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return frames, nil
}

func decode(r io.Reader) ([]frame.Frame, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var stored []storedFrame
	if err := dec.Decode(&stored); err != nil {
		return nil, errors.Wrap(err, "decode frames")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("decode frames: unexpected data after array")
	}

	frames := make([]frame.Frame, len(stored))
	for i, s := range stored {
		f, err := s.toFrame()
		if err != nil {
			return nil, errors.Wrapf(err, "frame %d", i)
		}
		frames[i] = f
	}
	return frames, nil
}

func (s storedFrame) toFrame() (frame.Frame, error) {
	f := s.Frame
	if err := frame.Validate(f.SourceFile, f.ChunkID, f.WindowStart, f.TokenSequence, f.TargetToken); err != nil {
		return frame.Frame{}, err
	}
	if s.FeatureVector == nil {
		return frame.Frame{}, errors.NewArityError("feature_vector", frame.FeatureLen, 0)
	}
	// context_hash は予約フィールドで常に0
	if f.ContextHash != 0 {
		return frame.Frame{}, errors.NewValidationError("context_hash", "must be 0", f.ContextHash)
	}
	f.FeatureVector = *s.FeatureVector
	return f, nil
}
