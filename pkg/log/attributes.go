// Package log defines standard attribute keys for pipeline operations.
//
// This file contains predefined attribute keys that keep log output consistent
// across all stages of an evoclass run. Using these standard keys enables
// structured log analysis and filtering.
//
// The attributes are organized into categories:
//   - Model and Operation Context
//   - Data Shape and Characteristics
//   - Split and Tuning Context
//   - Performance Metrics

package log

// Model and Operation Context
// These attributes identify the model kind, delegate, and operation being performed.
const (
	// ModelKindKey identifies the kind of classifier being trained.
	// Standard values: "tree", "forest", "boost"
	ModelKindKey = "model.kind"

	// DelegateKey identifies the external library a model kind delegates to.
	// Examples: "golearn", "randomForest", "lightgbm"
	DelegateKey = "model.delegate"

	// OperationKey specifies the pipeline operation being performed.
	// Standard values: "load", "split", "fit", "predict", "tune", "evaluate", "report"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "dataset", "tuning", "report"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of the run.
	// Examples: "training", "validation", "testing"
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
// These attributes describe the structure of the sample table being processed.
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of feature columns in the dataset.
	// Important for debugging shape mismatches between fit and predict.
	FeaturesKey = "data.features"

	// ClassesKey indicates the number of label categories (two for this dataset).
	ClassesKey = "data.classes"

	// PathKey records the input file the table was loaded from.
	PathKey = "data.path"
)

// Split and Tuning Context
// These attributes describe the holdout split and the hyperparameter sweep.
const (
	// SeedKey records the random seed for reproducibility.
	// Essential for debugging and ensuring reproducible partitions.
	SeedKey = "config.seed"

	// FractionKey records the train fraction of the holdout split.
	FractionKey = "split.fraction"

	// TrainRowsKey records the number of rows assigned to the training subset.
	TrainRowsKey = "split.train_rows"

	// TestRowsKey records the number of rows assigned to the holdout subset.
	TestRowsKey = "split.test_rows"

	// FoldKey records the current cross-validation fold index.
	FoldKey = "cv.fold"

	// GridPointKey records the hyperparameter combination being scored,
	// rendered as "name=value" pairs.
	GridPointKey = "tune.point"

	// GridSizeKey records the total number of points in the sweep.
	GridSizeKey = "tune.grid_size"

	// ScoringKey records the scoring metric used to rank grid points.
	// Standard values: "accuracy", "brier"
	ScoringKey = "tune.scoring"
)

// Performance Metrics
// These attributes capture timing and score information.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records classification accuracy, in [0.0, 1.0].
	AccuracyKey = "metrics.accuracy"

	// BrierKey records the multiclass Brier score, lower is better.
	BrierKey = "metrics.brier"
)

// Error Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "INPUT_ERROR", "INVALID_FRACTION", "NOT_FITTED"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "InputError", "ConfigError", "DelegateError"
	ErrorTypeKey = "error.type"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard pipeline operations
	OperationLoad     = "load"
	OperationSplit    = "split"
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationTune     = "tune"
	OperationEvaluate = "evaluate"
	OperationReport   = "report"

	// Standard phases
	PhaseTraining   = "training"
	PhaseValidation = "validation"
	PhaseTesting    = "testing"

	// Standard error codes
	ErrorNotFitted       = "NOT_FITTED"
	ErrorInvalidFraction = "INVALID_FRACTION"
	ErrorInputData       = "INPUT_ERROR"
	ErrorDelegate        = "DELEGATE_FAILURE"
	ErrorEvaluation      = "EVALUATION_ERROR"
)
