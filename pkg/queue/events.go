package queue

import (
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
)

// Typed publish helpers for the batch lifecycle. Each helper is gated on the
// matching events.batch switch so deployments can silence individual topics
// without touching call sites. A disabled topic is a successful no-op.

// PublishBatchOrganized publishes sfo.batch.organized after a batch has been
// organized and its snapshot persisted.
func PublishBatchOrganized(pub message.Publisher, payload BatchOrganizedPayload, opts ...func(*EventHeader)) error {
	cfg := configs.GetConfig().Events
	if !cfg.Enabled || !cfg.Batch.Organized {
		return nil
	}

	msg, err := NewWatermillMessage(TopicBatchOrganized, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicBatchOrganized, msg)
}

// PublishBatchClassified publishes sfo.batch.classified after AI
// classification for a batch finishes.
func PublishBatchClassified(pub message.Publisher, payload BatchClassifiedPayload, opts ...func(*EventHeader)) error {
	cfg := configs.GetConfig().Events
	if !cfg.Enabled || !cfg.Batch.Classified {
		return nil
	}

	msg, err := NewWatermillMessage(TopicBatchClassified, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicBatchClassified, msg)
}

// PublishBatchArchived publishes sfo.batch.archived after an archive export.
func PublishBatchArchived(pub message.Publisher, payload BatchArchivedPayload, opts ...func(*EventHeader)) error {
	cfg := configs.GetConfig().Events
	if !cfg.Enabled || !cfg.Batch.Archived {
		return nil
	}

	msg, err := NewWatermillMessage(TopicBatchArchived, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicBatchArchived, msg)
}

// PublishBatchDeleted publishes sfo.batch.deleted after a snapshot is removed.
func PublishBatchDeleted(pub message.Publisher, payload BatchDeletedPayload, opts ...func(*EventHeader)) error {
	cfg := configs.GetConfig().Events
	if !cfg.Enabled || !cfg.Batch.Deleted {
		return nil
	}

	msg, err := NewWatermillMessage(TopicBatchDeleted, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicBatchDeleted, msg)
}

// PublishClassifyFailed publishes sfo.classify.failed for a single file whose
// classification errored. Gated on the master switch only.
func PublishClassifyFailed(pub message.Publisher, payload ClassifyFailedPayload, opts ...func(*EventHeader)) error {
	if !configs.GetConfig().Events.Enabled {
		return nil
	}

	msg, err := NewWatermillMessage(TopicClassifyFailed, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicClassifyFailed, msg)
}

// PublishClassifyDegraded publishes sfo.classify.degraded when the upstream
// model service is unavailable and batches proceed without AI.
func PublishClassifyDegraded(pub message.Publisher, payload ClassifyDegradedPayload, opts ...func(*EventHeader)) error {
	if !configs.GetConfig().Events.Enabled {
		return nil
	}

	msg, err := NewWatermillMessage(TopicClassifyDegraded, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicClassifyDegraded, msg)
}

// PublishSnapshotPurged publishes sfo.snapshot.purged after a retention sweep.
func PublishSnapshotPurged(pub message.Publisher, payload SnapshotPurgedPayload, opts ...func(*EventHeader)) error {
	if !configs.GetConfig().Events.Enabled {
		return nil
	}

	msg, err := NewWatermillMessage(TopicSnapshotPurged, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicSnapshotPurged, msg)
}

// ParseBatchOrganized decodes a sfo.batch.organized message.
func ParseBatchOrganized(msg *message.Message) (Message[BatchOrganizedPayload], error) {
	return ParseWatermillMessage[BatchOrganizedPayload](msg)
}

// ParseBatchClassified decodes a sfo.batch.classified message.
func ParseBatchClassified(msg *message.Message) (Message[BatchClassifiedPayload], error) {
	return ParseWatermillMessage[BatchClassifiedPayload](msg)
}
