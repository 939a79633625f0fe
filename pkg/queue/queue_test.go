package queue_test

import (
	"testing"

	"github.com/Himan2899/SmartFileOrganizer/pkg/queue"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	payload := queue.BatchOrganizedPayload{
		Batch:       queue.BatchRef{BatchID: "b-123", Name: "march uploads"},
		FileCount:   12,
		Duplicates:  2,
		TotalSize:   1 << 20,
		OrganizedBy: []string{"date", "type"},
	}

	env := queue.Message[queue.BatchOrganizedPayload]{
		Header:  queue.NewEventHeader(queue.TopicBatchOrganized, queue.WithProducer("organizer")),
		Payload: payload,
	}

	data, err := queue.Encode(env)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := queue.Decode[queue.BatchOrganizedPayload](data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if decoded.Header.Topic != queue.TopicBatchOrganized {
		t.Fatalf("expected topic %q, got %q", queue.TopicBatchOrganized, decoded.Header.Topic)
	}

	if decoded.Header.Producer != "organizer" {
		t.Fatalf("expected producer organizer, got %q", decoded.Header.Producer)
	}

	if decoded.Payload.Batch.BatchID != "b-123" || decoded.Payload.FileCount != 12 {
		t.Fatalf("payload mismatch: %+v", decoded.Payload)
	}
}

func TestNewWatermillMessageMetadata(t *testing.T) {
	msg, err := queue.NewWatermillMessage(queue.TopicBatchDeleted,
		queue.BatchDeletedPayload{Batch: queue.BatchRef{BatchID: "b-9"}, DeletedObjects: 4},
		queue.WithProducer("organizer"), queue.WithTraceID("trace-1"))
	if err != nil {
		t.Fatalf("build message: %v", err)
	}

	if msg.UUID == "" {
		t.Fatal("message needs a UUID")
	}

	if msg.Metadata.Get("topic") != queue.TopicBatchDeleted {
		t.Fatalf("unexpected topic metadata %q", msg.Metadata.Get("topic"))
	}

	if msg.Metadata.Get("trace_id") != "trace-1" {
		t.Fatalf("unexpected trace metadata %q", msg.Metadata.Get("trace_id"))
	}

	env, err := queue.ParseWatermillMessage[queue.BatchDeletedPayload](msg)
	if err != nil {
		t.Fatalf("parse message: %v", err)
	}

	if env.Payload.DeletedObjects != 4 {
		t.Fatalf("payload mismatch: %+v", env.Payload)
	}

	if env.Header.Version != queue.PayloadVersionV1 {
		t.Fatalf("expected version %q, got %q", queue.PayloadVersionV1, env.Header.Version)
	}
}
