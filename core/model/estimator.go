package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データ（特徴量行列と整数クラスラベル）で学習させる
	Fit(X mat.Matrix, y []int) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は各行に対する予測クラスラベルを返す
	Predict(X mat.Matrix) ([]int, error)
}

// Classifier は分類器の能力インターフェース。
// 委譲先ライブラリ（決定木・ランダムフォレスト・勾配ブースティング）の違いを
// この境界の背後に隠し、実装を差し替え可能にする。
type Classifier interface {
	Fitter
	Predictor
}

// ProbabilityEstimator はクラス確率を推定できるモデルのインターフェース
type ProbabilityEstimator interface {
	// PredictProba は各行・各クラスの予測確率（行和が1）を返す
	PredictProba(X mat.Matrix) (*mat.Dense, error)
}

// FeatureImporter は特徴量重要度を公開するモデルのインターフェース
type FeatureImporter interface {
	// FeatureImportance は特徴量ごとの非負の重要度スコアを返す
	FeatureImportance() []float64
}

// TreeRenderer は学習済みの木構造を人間可読なテキストとして描画できる
// モデルのインターフェース
type TreeRenderer interface {
	RenderTree() string
}
