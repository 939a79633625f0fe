// Package queue defines topic constants and wildcard groups for
// publish/subscribe use.
package queue

// Topic naming: sfo.<domain>.<action>, kept stable and backward compatible.
// Domains: batch (organize batches), classify (AI classification),
// snapshot (persisted batch snapshots).

const (
	// Batch lifecycle.
	TopicBatchOrganized  = "sfo.batch.organized"  // a batch finished organizing (counts, sizes, duplicates)
	TopicBatchClassified = "sfo.batch.classified" // AI classification for a batch completed
	TopicBatchArchived   = "sfo.batch.archived"   // a zip archive of the organized batch was produced
	TopicBatchDeleted    = "sfo.batch.deleted"    // a batch snapshot was removed

	// Classification detail.
	TopicClassifyFailed   = "sfo.classify.failed"   // a single file fell back to the default category
	TopicClassifyDegraded = "sfo.classify.degraded" // the upstream model is unavailable, circuit open

	// Snapshot maintenance.
	TopicSnapshotPurged = "sfo.snapshot.purged" // retention job removed expired snapshots
)

// Topic groups, for bulk subscription.
var (
	// BatchTopics covers the batch lifecycle.
	BatchTopics = []string{
		TopicBatchOrganized, TopicBatchClassified,
		TopicBatchArchived, TopicBatchDeleted,
	}

	// ClassifyTopics covers classification failures and degradation.
	ClassifyTopics = []string{
		TopicClassifyFailed, TopicClassifyDegraded,
	}
)
