package queue

import "time"

// EventHeader carries the common metadata of every event.
// Publishers should fill TraceID and Producer so consumers can correlate
// messages with request traces.
type EventHeader struct {
	// Topic redundantly records the subject so dumped messages stay traceable.
	Topic string `json:"topic"`
	// TraceID is a distributed tracing / correlation ID.
	TraceID string `json:"trace_id,omitempty"`
	// Producer is the publishing service or node name.
	Producer string `json:"producer,omitempty"`
	// OccurredAt is the event time (UTC, RFC3339).
	OccurredAt time.Time `json:"occurred_at"`
	// Version allows backward-compatible payload evolution.
	Version string `json:"version,omitempty"`
}

// Message is the uniform envelope, Header + Payload.
// T is the payload struct matching the topic.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// BatchRef identifies an organize batch.
type BatchRef struct {
	BatchID string `json:"batch_id"`
	Name    string `json:"name,omitempty"`
}

// BatchOrganizedPayload reports a completed organize run.
type BatchOrganizedPayload struct {
	Batch      BatchRef `json:"batch"`
	FileCount  int      `json:"file_count"`
	Duplicates int      `json:"duplicates"`
	TotalSize  int64    `json:"total_size"`
	// Organize axes that were applied, e.g. ["date", "type"].
	OrganizedBy []string `json:"organized_by,omitempty"`
}

// BatchClassifiedPayload reports AI classification results for a batch.
type BatchClassifiedPayload struct {
	Batch         BatchRef `json:"batch"`
	Classified    int      `json:"classified"`
	Failed        int      `json:"failed"`
	AvgConfidence float64  `json:"avg_confidence,omitempty"`
}

// BatchArchivedPayload reports that a zip archive was produced.
type BatchArchivedPayload struct {
	Batch       BatchRef `json:"batch"`
	ArchiveKey  string   `json:"archive_key"`
	ArchiveSize int64    `json:"archive_size,omitempty"`
}

// BatchDeletedPayload reports snapshot removal.
type BatchDeletedPayload struct {
	Batch BatchRef `json:"batch"`
	// DeletedObjects counts stored objects removed alongside the snapshot.
	DeletedObjects int `json:"deleted_objects,omitempty"`
}

// ClassifyFailedPayload reports a single file falling back to the default
// category.
type ClassifyFailedPayload struct {
	Batch    BatchRef `json:"batch"`
	FileName string   `json:"file_name"`
	Error    string   `json:"error"`
}

// ClassifyDegradedPayload reports the classifier circuit opening.
type ClassifyDegradedPayload struct {
	Model string `json:"model,omitempty"`
	Error string `json:"error"`
}

// SnapshotPurgedPayload reports a retention sweep.
type SnapshotPurgedPayload struct {
	Purged int `json:"purged"`
	// RetentionDays is the policy that was applied.
	RetentionDays int `json:"retention_days"`
}
