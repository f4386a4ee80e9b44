// Package metrics は学習済みモデルのホールドアウト評価を提供する。
// 正解率・混同行列・多クラスBrierスコアを計算する。モデルの当てはめ自体は
// 外部ライブラリに委譲されるため、ここにあるのは予測と正解の比較だけである。
package metrics

import (
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/evoclass/pkg/errors"
)

// Accuracy は正解率（正しく予測された行の割合）を計算する。
// 戻り値は常に[0,1]の範囲に収まる。
func Accuracy(yTrue, yPred []int) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty label slice")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("Accuracy", n, len(yPred), 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// ConfusionMatrix は (正解クラス, 予測クラス) の組を数え上げた2次元のカウント表。
// 行・列の順序はクラス名の順序（Table.Classesの辞書順）と一致する。
type ConfusionMatrix struct {
	Classes []string
	counts  [][]int
	total   int
}

// NewConfusionMatrix はラベル列から混同行列を構築する。
// ラベルはクラス名スライスへのインデックスであり、範囲外の値はエラーになる。
func NewConfusionMatrix(yTrue, yPred []int, classes []string) (*ConfusionMatrix, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return nil, errors.NewValueError("ConfusionMatrix", "empty label slice")
	}
	if len(yPred) != n {
		return nil, errors.NewDimensionError("ConfusionMatrix", n, len(yPred), 0)
	}
	if len(classes) < 2 {
		return nil, errors.NewValueError("ConfusionMatrix", "need at least two classes")
	}
	// クラス名の重複は行ごとのラベル列を誤って渡した場合に起こる
	seen := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		if _, dup := seen[c]; dup {
			return nil, errors.NewValueError("ConfusionMatrix",
				"duplicate class name '"+c+"'")
		}
		seen[c] = struct{}{}
	}

	k := len(classes)
	counts := make([][]int, k)
	for i := range counts {
		counts[i] = make([]int, k)
	}

	for i := 0; i < n; i++ {
		if yTrue[i] < 0 || yTrue[i] >= k {
			return nil, errors.NewValueError("ConfusionMatrix",
				"true label "+strconv.Itoa(yTrue[i])+" out of class range")
		}
		if yPred[i] < 0 || yPred[i] >= k {
			return nil, errors.NewValueError("ConfusionMatrix",
				"predicted label "+strconv.Itoa(yPred[i])+" out of class range")
		}
		counts[yTrue[i]][yPred[i]]++
	}

	cm := &ConfusionMatrix{Classes: classes, counts: counts, total: n}

	// 1件も予測されなかったクラスがあれば適合率が未定義になるため警告する
	for j, colTotal := range cm.ColTotals() {
		if colTotal == 0 {
			errors.Warn(errors.NewUndefinedMetricWarning("precision",
				"no predicted samples for class '"+classes[j]+"'", 0.0))
		}
	}
	return cm, nil
}

// At は (正解クラスi, 予測クラスj) のカウントを返す
func (cm *ConfusionMatrix) At(i, j int) int {
	return cm.counts[i][j]
}

// Total は全行数を返す
func (cm *ConfusionMatrix) Total() int {
	return cm.total
}

// RowTotals はクラスごとの正解ラベル数（行和）を返す
func (cm *ConfusionMatrix) RowTotals() []int {
	totals := make([]int, len(cm.counts))
	for i, row := range cm.counts {
		for _, c := range row {
			totals[i] += c
		}
	}
	return totals
}

// ColTotals はクラスごとの予測ラベル数（列和）を返す
func (cm *ConfusionMatrix) ColTotals() []int {
	totals := make([]int, len(cm.counts))
	for _, row := range cm.counts {
		for j, c := range row {
			totals[j] += c
		}
	}
	return totals
}

// Accuracy は対角和を総数で割った正解率を返す
func (cm *ConfusionMatrix) Accuracy() float64 {
	diag := 0
	for i := range cm.counts {
		diag += cm.counts[i][i]
	}
	return float64(diag) / float64(cm.total)
}

// Recall はクラスiの再現率（行内の対角比率）を返す。
// 該当クラスの正解行が存在しない場合は警告を発して0を返す。
func (cm *ConfusionMatrix) Recall(i int) float64 {
	rowTotal := 0
	for _, c := range cm.counts[i] {
		rowTotal += c
	}
	if rowTotal == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("recall",
			"no true samples for class '"+cm.Classes[i]+"'", 0.0))
		return 0
	}
	return float64(cm.counts[i][i]) / float64(rowTotal)
}

// Precision はクラスjの適合率（列内の対角比率）を返す。
// 該当クラスへの予測が存在しない場合は警告を発して0を返す。
func (cm *ConfusionMatrix) Precision(j int) float64 {
	colTotal := 0
	for i := range cm.counts {
		colTotal += cm.counts[i][j]
	}
	if colTotal == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("precision",
			"no predicted samples for class '"+cm.Classes[j]+"'", 0.0))
		return 0
	}
	return float64(cm.counts[j][j]) / float64(colTotal)
}

// BrierScore は多クラスBrierスコアを計算する。
// 各行についてΣ_k (p_ik - 1{y_i=k})² を取り、全行で平均する。低いほど良い。
// チューニング探索で確率を出せるモデルのスコアリングに使われる。
func BrierScore(yTrue []int, proba *mat.Dense) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("BrierScore", "empty label slice")
	}
	rows, cols := proba.Dims()
	if rows != n {
		return 0, errors.NewDimensionError("BrierScore", n, rows, 0)
	}

	var sum float64
	for i := 0; i < n; i++ {
		if yTrue[i] < 0 || yTrue[i] >= cols {
			return 0, errors.NewValueError("BrierScore",
				"label "+strconv.Itoa(yTrue[i])+" out of probability column range")
		}
		for k := 0; k < cols; k++ {
			target := 0.0
			if yTrue[i] == k {
				target = 1.0
			}
			diff := proba.At(i, k) - target
			sum += diff * diff
		}
	}
	return sum / float64(n), nil
}
