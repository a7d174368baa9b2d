package log

// Standard attribute keys for model and operation context. Using these keys
// keeps log records filterable across packages.
const (
	// ModelNameKey identifies the model type, e.g. "GBClassifier".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed: "fit", "predict",
	// "score".
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation,
	// e.g. "boosting", "linear".
	ComponentKey = "ml.component"
)

// Attribute keys describing data shape.
const (
	// SamplesKey is the number of rows in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns.
	FeaturesKey = "data.features"
)

// Attribute keys for training progress.
const (
	// IterationKey is the current boosting iteration.
	IterationKey = "train.iteration"

	// LossKey is the loss function name or a loss value, depending on the
	// record.
	LossKey = "train.loss"

	// LearningRateKey is the configured shrinkage factor.
	LearningRateKey = "train.learning_rate"

	// SeedKey is the random seed driving subsampling.
	SeedKey = "train.seed"
)

// Attribute keys for performance measurements.
const (
	// DurationMsKey is the wall-clock duration of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"
)
