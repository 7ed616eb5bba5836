package frame

import (
	"strings"

	"github.com/YuminosukeSato/framegen/pkg/errors"
)

// VocabSize はRemappedモードにおけるターゲットトークンの上限です。
const VocabSize = 1000

// RemapTarget は非負の生トークンIDを [0, VocabSize) に縮約する
func RemapTarget(target int) int {
	return target % VocabSize
}

// Encode は1つのパターンと位置メタデータからFrameを構築します。
//
// Rawモードではターゲットをそのままコピーし、Remappedモードでは
// target % VocabSize に変換します。特徴量ベクトルはどちらのモードでも
// そのままコピーされ、ContextHashは常に0です。トークンスライスはコピーされるため、
// 呼び出し側が後でtokensを変更してもFrameには影響しません。
//
// 不正な入力（空のsource、chunkID < 1、windowStart < 0、空または負のトークン、
// 負のtarget、未知のモード）に対してはValidationErrorを返します。
func Encode(source string, chunkID, windowStart int, tokens []int, target int, features FeatureVector, mode Mode) (Frame, error) {
	if err := Validate(source, chunkID, windowStart, tokens, target); err != nil {
		return Frame{}, err
	}

	var targetToken int
	switch mode {
	case Raw:
		targetToken = target
	case Remapped:
		targetToken = RemapTarget(target)
	default:
		return Frame{}, errors.NewValidationError("mode", "unknown encoding mode", int(mode))
	}

	seq := make([]int, len(tokens))
	copy(seq, tokens)

	return Frame{
		SourceFile:    source,
		ChunkID:       chunkID,
		WindowStart:   windowStart,
		TokenSequence: seq,
		TargetToken:   targetToken,
		FeatureVector: features,
		ContextHash:   0,
	}, nil
}

// Validate は1つのパターンの位置メタデータとトークンをFrameの不変条件に照らして検証します。
func Validate(source string, chunkID, windowStart int, tokens []int, target int) error {
	if strings.TrimSpace(source) == "" {
		return errors.NewValidationError("source_file", "must not be empty", source)
	}
	if chunkID < 1 {
		return errors.NewValidationError("chunk_id", "must be >= 1", chunkID)
	}
	if windowStart < 0 {
		return errors.NewValidationError("window_start", "must be >= 0", windowStart)
	}
	if len(tokens) == 0 {
		return errors.NewValidationError("token_sequence", "must not be empty", tokens)
	}
	for _, tok := range tokens {
		if tok < 0 {
			return errors.NewValidationError("token_sequence", "tokens must be >= 0", tok)
		}
	}
	if target < 0 {
		return errors.NewValidationError("target", "must be >= 0", target)
	}
	return nil
}
