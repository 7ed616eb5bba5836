// Package errors はframegen全体のエラーハンドリングと警告システムを提供します。
// すべてのエラーは cockroachdb/errors によりスタックトレース付きで生成され、
// 警告は zerolog を通じて構造化ログとして出力できます。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("framegen-warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler は警告ハンドラを設定します。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します。nilで解除します。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// NewZerologWarnFunc はzerolog.Loggerに警告を書き出す関数を返します。
// 警告が zerolog.LogObjectMarshaler を実装していれば構造化フィールドとして埋め込みます。
func NewZerologWarnFunc(logger zerolog.Logger) func(warning error) {
	return func(w error) {
		ev := logger.Warn()
		if m, ok := w.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(m)
		}
		ev.Msg(w.Error())
	}
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// フォールバック: 従来のハンドラ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// ZeroFeaturesWarning はremappedモードのエントリが全ゼロの特徴量ベクトルを持つ場合の警告です。
// エンコーダは内容を検証しないため、エラーではなく警告として扱います。
type ZeroFeaturesWarning struct {
	Index   int
	Source  string
	ChunkID int
}

func (w *ZeroFeaturesWarning) Error() string {
	return fmt.Sprintf("catalog entry %d (%s chunk %d) has an all-zero feature vector in remapped mode", w.Index, w.Source, w.ChunkID)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *ZeroFeaturesWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Int("index", w.Index).
		Str("source_file", w.Source).
		Int("chunk_id", w.ChunkID).
		Str("type", "ZeroFeaturesWarning")
}

// NewZeroFeaturesWarning は新しいZeroFeaturesWarningを作成します。
func NewZeroFeaturesWarning(index int, source string, chunkID int) *ZeroFeaturesWarning {
	return &ZeroFeaturesWarning{Index: index, Source: source, ChunkID: chunkID}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// ArityError は固定長であるべき値の長さが異なる場合のエラーです。
type ArityError struct {
	Op       string
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("framegen: %s: arity mismatch. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ArityError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "ArityError")
}

// NewArityError は新しいArityErrorを作成し、スタックトレースを付与します。
func NewArityError(op string, expected, got int) error {
	err := &ArityError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// ValidationError は入力値の検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("framegen: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// CatalogError はカタログの特定エントリの処理に失敗した場合のエラーです。
type CatalogError struct {
	Index int
	Err   error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("framegen: catalog entry %d: %v", e.Index, e.Err)
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError は新しいCatalogErrorを作成し、スタックトレースを付与します。
func NewCatalogError(index int, err error) error {
	return errors.WithStack(&CatalogError{Index: index, Err: err})
}

// IOError はファイルシステム操作に失敗した場合のエラーです。
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("framegen: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("framegen: %s %s", e.Op, e.Path)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *IOError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("path", e.Path).
		Str("type", "IOError")
}

// NewIOError は新しいIOErrorを作成し、スタックトレースを付与します。
func NewIOError(op, path string, err error) error {
	return errors.WithStack(&IOError{Op: op, Path: path, Err: err})
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyCatalog は空のカタログが渡された場合のエラーです。
	ErrEmptyCatalog = New("empty catalog")

	// ErrUnknownMode は未知のエンコードモードが指定された場合のエラーです。
	ErrUnknownMode = New("unknown encoding mode")
)
