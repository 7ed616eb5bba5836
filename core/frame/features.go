package frame

import (
	"encoding/json"

	"github.com/YuminosukeSato/framegen/pkg/errors"
)

// FeatureLen は特徴量ベクトルの固定長です。
const FeatureLen = 12

// FeatureVector は各フレームに付与される12個の32ビットワードです。
// エンコーダは中身を解釈しません。配列型なので長さは型の一部であり、
// デコード時も12以外の長さは拒否されます。
type FeatureVector [FeatureLen]uint32

// NewFeatureVector はwordsをFeatureVectorにコピーします。
// len(words) != FeatureLen の場合はArityErrorを返します。
func NewFeatureVector(words []uint32) (FeatureVector, error) {
	var fv FeatureVector
	if len(words) != FeatureLen {
		return fv, errors.NewArityError("NewFeatureVector", FeatureLen, len(words))
	}
	copy(fv[:], words)
	return fv, nil
}

// MustFeatureVector はリテラル用のNewFeatureVectorです。長さが不正な場合はパニックします。
func MustFeatureVector(words ...uint32) FeatureVector {
	fv, err := NewFeatureVector(words)
	if err != nil {
		panic(err)
	}
	return fv
}

// ZeroFeatures は全ゼロの埋め草ベクトルを返します。
func ZeroFeatures() FeatureVector {
	return FeatureVector{}
}

// IsZero は全ワードが0かどうかを返す
func (fv FeatureVector) IsZero() bool {
	return fv == FeatureVector{}
}

// Words はワードを新しいスライスとして返す
func (fv FeatureVector) Words() []uint32 {
	out := make([]uint32, FeatureLen)
	copy(out, fv[:])
	return out
}

// MarshalJSON はベクトルを数値のJSON配列としてエンコードします。
func (fv FeatureVector) MarshalJSON() ([]byte, error) {
	return json.Marshal(fv[:])
}

// UnmarshalJSON はJSON配列をデコードし、固定長を強制します。
func (fv *FeatureVector) UnmarshalJSON(data []byte) error {
	var words []uint32
	if err := json.Unmarshal(data, &words); err != nil {
		return errors.Wrap(err, "decode feature_vector")
	}
	parsed, err := NewFeatureVector(words)
	if err != nil {
		return err
	}
	*fv = parsed
	return nil
}
