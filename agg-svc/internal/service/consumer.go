package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lunchbox-marketplace/agg-svc/internal/domain"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Consumer struct {
	Reader MessageReader
	Store  StatsStore
	Logger *zap.SugaredLogger
	// NewBackOff paces retries of a failing event before it is dropped.
	NewBackOff func() backoff.BackOff
}

func NewConsumer(reader MessageReader, store StatsStore, logger *zap.SugaredLogger) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		Logger:     logger,
		NewBackOff: defaultBackOff,
	}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxElapsedTime = 30 * time.Second
	return backoff.WithMaxRetries(b, 5)
}

// Start consumes until ctx is cancelled. A message is committed once it is
// applied, found malformed or has exhausted its retries.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("starting order events consumer")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("order events consumer stopped")
				return
			}
			c.Logger.Errorw("failed to read message", "error", err)
			continue
		}

		c.handle(ctx, message)

		if err := c.Reader.CommitMessages(ctx, message); err != nil && ctx.Err() == nil {
			c.Logger.Errorw("failed to commit message", "offset", message.Offset, "error", err)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, message kafka.Message) {
	var ev domain.OrderEvent
	if err := json.Unmarshal(message.Value, &ev); err != nil {
		c.Logger.Warnw("skipping undecodable message", "offset", message.Offset, "error", err)
		return
	}

	b := backoff.WithContext(c.NewBackOff(), ctx)
	err := backoff.Retry(func() error {
		err := c.ProcessEvent(ctx, ev)
		if errors.Is(err, domain.ErrMalformedEvent) {
			return backoff.Permanent(err)
		}
		return err
	}, b)
	if err != nil {
		c.Logger.Errorw("dropping order event", "event_id", ev.EventID, "type", ev.Type, "error", err)
	}
}

// ProcessEvent applies one order event exactly once per event id.
func (c *Consumer) ProcessEvent(ctx context.Context, ev domain.OrderEvent) error {
	if !ev.Counted() {
		return nil
	}
	if err := ev.Validate(); err != nil {
		return err
	}

	first, err := c.Store.MarkProcessed(ctx, ev.EventID)
	if err != nil {
		return err
	}
	if !first {
		c.Logger.Debugw("duplicate order event", "event_id", ev.EventID)
		return nil
	}

	if ev.Type == domain.EventOrderCreated {
		err = c.Store.RecordOrder(ctx, ev)
	} else {
		err = c.Store.RecordStatusChange(ctx, ev)
	}
	if err != nil {
		if relErr := c.Store.ReleaseEvent(ctx, ev.EventID); relErr != nil {
			c.Logger.Warnw("failed to release event claim", "event_id", ev.EventID, "error", relErr)
		}
		return err
	}

	c.Logger.Infow("order event applied", "event_id", ev.EventID, "type", ev.Type, "restaurant_id", ev.RestaurantID)
	return nil
}
