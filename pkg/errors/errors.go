// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 解析パイプラインの各段階（読み込み・分割・学習・評価）で発生するエラーを
// 構造化された型として表現し、発生元のメッセージを保ったまま呼び出し元へ伝播させます。
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
		log.Printf("evoclass-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// UndefinedMetricWarningなどのカスタム警告の処理方法を制御できます。
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

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// UndefinedMetricWarning は評価指標が計算できない場合に発生する警告です。
// 例えば、あるクラスへの予測が一件もなく列合計が0になった場合など。
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // この条件で返される値
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// NewUndefinedMetricWarning は新しいUndefinedMetricWarningを作成します。
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	パイプライン段階ごとのエラー型
//
// ===========================================================================

// InputError は入力ファイルが存在しない、または内容が不正な場合のエラーです。
// 列数不一致・数値でない特徴量・欠損値などのパース失敗を含みます。
type InputError struct {
	Path   string
	Row    int // 問題のある行番号（1始まり、ファイル全体の問題は0）
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("evoclass: input %s: row %d: %s", e.Path, e.Row, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("evoclass: input %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("evoclass: input %s: %s", e.Path, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("path", e.Path).
		Int("row", e.Row).
		Str("reason", e.Reason).
		Str("type", "InputError")
}

// NewInputError は新しいInputErrorを作成し、スタックトレースを付与します。
func NewInputError(path string, row int, reason string, err error) error {
	inputErr := &InputError{Path: path, Row: row, Reason: reason, Err: err}
	return errors.WithStack(inputErr)
}

// ConfigError は実行設定が不正な場合のエラーです。
// 分割比率が(0,1)の範囲外、グリッドの軸が空、などの検証失敗を示します。
type ConfigError struct {
	Field  string
	Reason string
	Value  interface{}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("evoclass: invalid config '%s': %s (got: %v)", e.Field, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ConfigError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("field", e.Field).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ConfigError")
}

// NewConfigError は新しいConfigErrorを作成し、スタックトレースを付与します。
func NewConfigError(field, reason string, value interface{}) error {
	cfgErr := &ConfigError{Field: field, Reason: reason, Value: value}
	return errors.WithStack(cfgErr)
}

// DelegateError は外部の学習ライブラリが失敗した場合のエラーです。
// 委譲先の学習ルーチンが収束しない、設定を受け付けない、またはpanicした場合に使われます。
type DelegateError struct {
	Delegate string // 委譲先ライブラリ名（例: "golearn", "randomForest", "lightgbm"）
	Op       string // "fit" または "predict"
	Err      error
}

func (e *DelegateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("evoclass: %s: %s failed: %v", e.Delegate, e.Op, e.Err)
	}
	return fmt.Sprintf("evoclass: %s: %s failed", e.Delegate, e.Op)
}

func (e *DelegateError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DelegateError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("delegate", e.Delegate).
		Str("operation", e.Op).
		Str("type", "DelegateError")
}

// NewDelegateError は新しいDelegateErrorを作成し、スタックトレースを付与します。
func NewDelegateError(delegate, op string, err error) error {
	delErr := &DelegateError{Delegate: delegate, Op: op, Err: err}
	return errors.WithStack(delErr)
}

// EvaluationError は学習済みモデルを不整合なデータへ適用した場合のエラーです。
// 予測時の特徴量数が学習時と異なる、重要度スコアが負になる、などを検出します。
type EvaluationError struct {
	Op     string
	Reason string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evoclass: %s: %s", e.Op, e.Reason)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *EvaluationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "EvaluationError")
}

// NewEvaluationError は新しいEvaluationErrorを作成し、スタックトレースを付与します。
func NewEvaluationError(op, reason string) error {
	evalErr := &EvaluationError{Op: op, Reason: reason}
	return errors.WithStack(evalErr)
}

// ===========================================================================
//
//	モデル・メトリクス共通のエラー型
//
// ===========================================================================

// NotFittedError はモデルが未学習の状態で `Predict` を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("evoclass: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("evoclass: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、空のベクトルを評価指標に渡した場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("evoclass: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
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
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
