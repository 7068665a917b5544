package store

import (
	"context"
	"errors"
	"time"
)

// Blob region names. Each region holds one whole JSON document.
const (
	RegionImageCache      = "worksheetImageCache"
	RegionSavedWorksheets = "savedWorksheets"
)

// ErrPersistence marks a failed read or write of persisted state. Callers
// treat it as non-fatal: the in-memory state stays authoritative.
var ErrPersistence = errors.New("persistence failure")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PurposeUsage aggregates LLM calls by purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM token usage by model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ImageUsage counts images returned per image model.
type ImageUsage struct {
	Model  string
	Images int
}

// GenerationEventData captures one worksheet generation attempt.
type GenerationEventData struct {
	RequestID    string
	Word         string
	Level        int
	CacheHit     bool
	ImageStatus  string
	Success      bool
	ErrorMessage string
	LatencyMs    int64
}

// GenerationEventRecord is a stored generation event.
type GenerationEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	GenerationEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates calls and tokens per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates calls and tokens per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// ImageUsageByModel counts successful calls with the given purpose per
	// model. Failed image calls return no image and are not billed.
	ImageUsageByModel(ctx context.Context, purpose string) ([]ImageUsage, error)

	// AppendGeneration records a worksheet generation attempt.
	AppendGeneration(ctx context.Context, data GenerationEventData) error

	// QueryGenerations returns generation events, newest first.
	QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationEventRecord, error)
}

// BlobRepo is a whole-document key-value store. Get returns (nil, nil)
// for a name that was never set.
type BlobRepo interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Set(ctx context.Context, name string, data []byte) error
}
