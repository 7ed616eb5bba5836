// Package frame は学習フレームのレコードと、トークンパターンからそれを構築する
// エンコーダを定義します。
//
// Frameは値です。Encodeは入力をコピーし、構築後にFrameを変更するコードはありません。
// 構造体のフィールド順がそのままシリアライズ後のJSONキー順になります。
package frame

// Frame は次トークン予測の学習例1件です。
type Frame struct {
	// SourceFile は元テキスト単位の論理名
	SourceFile string `json:"source_file"`
	// ChunkID は同じパターン由来のフレームをまとめる（常に1以上）
	ChunkID int `json:"chunk_id"`
	// WindowStart はチャンク内のコンテキストウィンドウ開始位置
	WindowStart int `json:"window_start"`
	// TokenSequence は左から右へのコンテキスト履歴
	TokenSequence []int `json:"token_sequence"`
	// TargetToken は予測対象のトークン（Modeに応じて生IDまたは縮約済み）
	TargetToken int `json:"target_token"`
	// FeatureVector は解釈されない12ワードのペイロード
	FeatureVector FeatureVector `json:"feature_vector"`
	// ContextHash はコンテキスト連結用の予約フィールドで常に0
	ContextHash uint32 `json:"context_hash"`
}

// ContextLen はコンテキストトークン数を返す
func (f Frame) ContextLen() int {
	return len(f.TokenSequence)
}

// Equal は全フィールドが等しいかどうかを返す
func (f Frame) Equal(o Frame) bool {
	if f.SourceFile != o.SourceFile ||
		f.ChunkID != o.ChunkID ||
		f.WindowStart != o.WindowStart ||
		f.TargetToken != o.TargetToken ||
		f.FeatureVector != o.FeatureVector ||
		f.ContextHash != o.ContextHash ||
		len(f.TokenSequence) != len(o.TokenSequence) {
		return false
	}
	for i, tok := range f.TokenSequence {
		if o.TokenSequence[i] != tok {
			return false
		}
	}
	return true
}
