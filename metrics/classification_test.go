package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []int
		yPred   []int
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect prediction",
			yTrue: []int{0, 1, 0, 1},
			yPred: []int{0, 1, 0, 1},
			want:  1.0,
		},
		{
			name:  "all wrong",
			yTrue: []int{0, 1, 0, 1},
			yPred: []int{1, 0, 1, 0},
			want:  0.0,
		},
		{
			name:  "three of four correct",
			yTrue: []int{0, 1, 1, 0},
			yPred: []int{0, 1, 0, 0},
			want:  0.75,
		},
		{
			name:    "empty input",
			yTrue:   []int{},
			yPred:   []int{},
			wantErr: true,
		},
		{
			name:    "length mismatch",
			yTrue:   []int{0, 1},
			yPred:   []int{0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Accuracy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
			// 正解率は常に[0,1]
			if got < 0 || got > 1 {
				t.Errorf("Accuracy() = %v outside [0,1]", got)
			}
		})
	}
}

func TestConfusionMatrix(t *testing.T) {
	classes := []string{"post", "pre"}
	yTrue := []int{0, 0, 0, 1, 1, 1, 1, 0}
	yPred := []int{0, 1, 0, 1, 1, 0, 1, 0}

	cm, err := NewConfusionMatrix(yTrue, yPred, classes)
	if err != nil {
		t.Fatalf("NewConfusionMatrix() error = %v", err)
	}

	// カウントの検証: 正解post→予測post 3件, post→pre 1件, pre→post 1件, pre→pre 3件
	if cm.At(0, 0) != 3 || cm.At(0, 1) != 1 || cm.At(1, 0) != 1 || cm.At(1, 1) != 3 {
		t.Errorf("counts = [[%d %d] [%d %d]], want [[3 1] [1 3]]",
			cm.At(0, 0), cm.At(0, 1), cm.At(1, 0), cm.At(1, 1))
	}

	// 行和 = 正解ラベルのクラス別件数
	rowTotals := cm.RowTotals()
	if rowTotals[0] != 4 || rowTotals[1] != 4 {
		t.Errorf("RowTotals() = %v, want [4 4]", rowTotals)
	}

	// 列和 = 予測ラベルのクラス別件数
	colTotals := cm.ColTotals()
	if colTotals[0] != 4 || colTotals[1] != 4 {
		t.Errorf("ColTotals() = %v, want [4 4]", colTotals)
	}

	// 正解率 = 対角和 / 総数
	wantAcc := 6.0 / 8.0
	if got := cm.Accuracy(); got != wantAcc {
		t.Errorf("Accuracy() = %v, want %v", got, wantAcc)
	}

	// Accuracy関数との一致
	acc, err := Accuracy(yTrue, yPred)
	if err != nil {
		t.Fatal(err)
	}
	if acc != cm.Accuracy() {
		t.Errorf("Accuracy(%v) != matrix diagonal ratio (%v)", acc, cm.Accuracy())
	}

	if cm.Total() != 8 {
		t.Errorf("Total() = %d, want 8", cm.Total())
	}

	if got := cm.Recall(0); got != 0.75 {
		t.Errorf("Recall(0) = %v, want 0.75", got)
	}
	if got := cm.Precision(1); got != 0.75 {
		t.Errorf("Precision(1) = %v, want 0.75", got)
	}
}

func TestConfusionMatrixErrors(t *testing.T) {
	classes := []string{"post", "pre"}

	tests := []struct {
		name  string
		yTrue []int
		yPred []int
	}{
		{"empty", []int{}, []int{}},
		{"length mismatch", []int{0, 1}, []int{0}},
		{"true label out of range", []int{2}, []int{0}},
		{"predicted label out of range", []int{0}, []int{-1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewConfusionMatrix(tt.yTrue, tt.yPred, classes); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// クラス引数に行ごとのラベル列を渡すと n×n の行列ができてしまうため、
// 重複したクラス名は拒否する。
func TestConfusionMatrixRejectsDuplicateClasses(t *testing.T) {
	yTrue := []int{0, 1, 0, 1}
	yPred := []int{0, 1, 1, 1}
	rowLabels := []string{"post", "pre", "post", "pre"}

	if _, err := NewConfusionMatrix(yTrue, yPred, rowLabels); err == nil {
		t.Fatal("expected error for a duplicated class list")
	}

	cm, err := NewConfusionMatrix(yTrue, yPred, []string{"post", "pre"})
	if err != nil {
		t.Fatalf("NewConfusionMatrix failed: %v", err)
	}
	if len(cm.Classes) != 2 {
		t.Errorf("matrix has %d classes, want 2", len(cm.Classes))
	}
}

func TestBrierScore(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []int
		proba   *mat.Dense
		want    float64
		wantErr bool
	}{
		{
			name:  "perfectly confident and correct",
			yTrue: []int{0, 1},
			proba: mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
			want:  0.0,
		},
		{
			name:  "perfectly confident and wrong",
			yTrue: []int{0, 1},
			proba: mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
			want:  2.0,
		},
		{
			name:  "uniform probabilities",
			yTrue: []int{0, 1},
			proba: mat.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.5}),
			want:  0.5,
		},
		{
			name:    "empty labels",
			yTrue:   []int{},
			proba:   mat.NewDense(1, 2, []float64{0.5, 0.5}),
			wantErr: true,
		},
		{
			name:    "row mismatch",
			yTrue:   []int{0, 1, 0},
			proba:   mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
			wantErr: true,
		},
		{
			name:    "label outside probability columns",
			yTrue:   []int{3},
			proba:   mat.NewDense(1, 2, []float64{0.5, 0.5}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BrierScore(tt.yTrue, tt.proba)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BrierScore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("BrierScore() = %v, want %v", got, tt.want)
			}
		})
	}
}
