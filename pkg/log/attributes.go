package log

// Run context.
const (
	// RunIDKey carries the per-invocation identifier (a UUID string).
	RunIDKey = "run.id"

	// ComponentKey names the package emitting the record.
	// Examples: "catalog", "corpus", "metrics"
	ComponentKey = "component"

	// OperationKey names the operation in progress.
	OperationKey = "operation"

	// ConfigKey carries the resolved run configuration.
	ConfigKey = "config"
)

// Catalog and corpus shape.
const (
	// CatalogEntriesKey is the number of patterns in the catalog.
	CatalogEntriesKey = "catalog.entries"

	// CatalogSourceKey is "builtin" or the fixture path the catalog came from.
	CatalogSourceKey = "catalog.source"

	// ModeKey is the encoding mode ("raw" or "remapped").
	ModeKey = "corpus.mode"

	// FramesKey is the number of frames produced or written.
	FramesKey = "corpus.frames"

	// ChunksKey is the number of distinct chunk IDs.
	ChunksKey = "corpus.chunks"

	// PathKey is a resolved filesystem path.
	PathKey = "corpus.path"

	// BytesKey is the size of the serialized corpus.
	BytesKey = "corpus.bytes"
)

// Typed error details, added by ErrFmtHandler.
const (
	// ErrOpKey is the failing filesystem operation of an IOError.
	ErrOpKey = "error.op"

	// ErrPathKey is the path an IOError refers to.
	ErrPathKey = "error.path"

	// ErrParamKey is the parameter a ValidationError rejected.
	ErrParamKey = "error.param"

	// CatalogIndexKey is the catalog entry a CatalogError points at.
	CatalogIndexKey = "catalog.index"
)

// Summary statistics.
const (
	MeanContextKey    = "stats.context_mean"
	StdContextKey     = "stats.context_std"
	DistinctTargetKey = "stats.distinct_targets"
	DurationMsKey     = "perf.duration_ms"
)

// Standard operation values.
const (
	OperationGenerate = "generate"
	OperationWrite    = "write"
	OperationLoad     = "load"
	OperationSummary  = "summarize"
	OperationPlot     = "plot"
)
