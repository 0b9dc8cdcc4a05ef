package service

import (
	"context"

	"lunchbox-marketplace/agg-svc/internal/domain"
	"lunchbox-marketplace/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StatsStore interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
	ReleaseEvent(ctx context.Context, eventID string) error
	RecordOrder(ctx context.Context, ev domain.OrderEvent) error
	RecordStatusChange(ctx context.Context, ev domain.OrderEvent) error
}

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

var (
	_ StatsStore    = (*storage.Store)(nil)
	_ MessageReader = (*kafka.Reader)(nil)
)
