// Package queue wraps the message bus used for asynchronous batch
// notifications.
//
// Overview
//   - Publish/subscribe model decoupling organize, classify, archive and
//     cleanup steps from the HTTP request path
//   - Uniform envelope: Message[Payload] = Header + Payload
//   - Topic constants live in topics.go, payload structs in payloads.go
//   - JSON codec via bytedance/sonic so consumers in any language can parse
//
// Envelope JSON shape
//
//	{
//	  "header": {
//	    "topic": "sfo.batch.organized",
//	    "trace_id": "optional-trace-id",
//	    "producer": "organizer",
//	    "occurred_at": "2025-01-02T03:04:05.123456Z",
//	    "version": "v1"
//	  },
//	  "payload": { ... depends on the topic ... }
//	}
//
// Publish/subscribe example
//
//	payload := queue.BatchOrganizedPayload{
//	  BatchID:    "b-123",
//	  FileCount:  12,
//	  Duplicates: 2,
//	  TotalSize:  1 << 20,
//	}
//
//	msg, _ := queue.NewWatermillMessage(
//	  queue.TopicBatchOrganized, payload,
//	  queue.WithProducer("organizer"),
//	)
//
//	// client, _ := mq.New(ctx, &cfg.MQ)
//	// _ = client.Publish(ctx, queue.TopicBatchOrganized, msg)
//
//	// ch, _ := client.Subscribe(ctx, queue.TopicBatchOrganized)
//	// for m := range ch {
//	//     env, _ := queue.ParseWatermillMessage[queue.BatchOrganizedPayload](m)
//	//     // use env.Header / env.Payload ...
//	//     m.Ack()
//	// }
//
// Notes
//  1. occurred_at is UTC RFC3339
//  2. version allows backward-compatible evolution; consumers should ignore
//     unknown fields
//  3. Header.topic duplicates the broker subject on purpose so dumped
//     messages remain traceable offline
package queue

import (
	"time"

	watermill "github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/bytedance/sonic"
)

const (
	PayloadVersionV1 string = "v1"
)

// NewEventHeader builds an event header for the given topic.
func NewEventHeader(topic string, opts ...func(*EventHeader)) EventHeader {
	hdr := EventHeader{
		Topic:      topic,
		OccurredAt: time.Now().UTC(),
		Version:    PayloadVersionV1,
	}
	for _, opt := range opts {
		opt(&hdr)
	}

	return hdr
}

// WithTraceID sets the trace ID on the header.
func WithTraceID(id string) func(*EventHeader) { return func(h *EventHeader) { h.TraceID = id } }

// WithProducer sets the producer on the header.
func WithProducer(p string) func(*EventHeader) { return func(h *EventHeader) { h.Producer = p } }

// Encode marshals an envelope to JSON bytes.
func Encode[T any](msg Message[T]) ([]byte, error) { return sonic.Marshal(msg) }

// Decode unmarshals JSON bytes into an envelope.
func Decode[T any](b []byte) (Message[T], error) {
	var m Message[T]

	err := sonic.Unmarshal(b, &m)

	return m, err
}

// NewWatermillMessage builds a watermill message with ID and metadata set.
func NewWatermillMessage[T any](topic string, payload T, opts ...func(*EventHeader)) (*message.Message, error) {
	header := NewEventHeader(topic, opts...)
	env := Message[T]{Header: header, Payload: payload}

	data, err := Encode(env)
	if err != nil {
		return nil, err
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("topic", topic)

	if header.TraceID != "" {
		msg.Metadata.Set("trace_id", header.TraceID)
	}

	if header.Producer != "" {
		msg.Metadata.Set("producer", header.Producer)
	}

	msg.Metadata.Set("occurred_at", header.OccurredAt.Format(time.RFC3339Nano))

	if header.Version != "" {
		msg.Metadata.Set("version", header.Version)
	}

	return msg, nil
}

// ParseWatermillMessage extracts the typed envelope from a watermill message.
func ParseWatermillMessage[T any](msg *message.Message) (Message[T], error) {
	return Decode[T](msg.Payload)
}
