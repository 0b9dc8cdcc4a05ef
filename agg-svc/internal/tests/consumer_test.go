package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"lunchbox-marketplace/agg-svc/internal/domain"
	"lunchbox-marketplace/agg-svc/internal/mocks"
	"lunchbox-marketplace/agg-svc/internal/service"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var eventDay = time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC)

func createdEvent() domain.OrderEvent {
	return domain.OrderEvent{
		EventID:      "evt-1",
		Type:         domain.EventOrderCreated,
		OrderID:      "ord-1",
		RestaurantID: "rest-1",
		Status:       "pending",
		TotalCents:   3254,
		Items:        []domain.EventItem{{MenuItemID: "lb-1", Quantity: 2}, {MenuItemID: "lb-2", Quantity: 1}},
		Timestamp:    eventDay,
	}
}

func statusEvent(status string) domain.OrderEvent {
	return domain.OrderEvent{
		EventID:      "evt-2",
		Type:         domain.EventOrderStatusChanged,
		OrderID:      "ord-1",
		RestaurantID: "rest-1",
		Status:       status,
		Timestamp:    eventDay,
	}
}

func newConsumer(store service.StatsStore, reader service.MessageReader) *service.Consumer {
	c := service.NewConsumer(reader, store, zap.NewNop().Sugar())
	c.NewBackOff = func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 1)
	}
	return c
}

func TestConsumer_ProcessEvent(t *testing.T) {
	tests := []struct {
		name           string
		event          domain.OrderEvent
		setupMockStore func(*mocks.StatsStore)
		wantErr        error
		anyErr         bool
	}{
		{
			name:  "order created",
			event: createdEvent(),
			setupMockStore: func(store *mocks.StatsStore) {
				store.On("MarkProcessed", mock.Anything, "evt-1").Return(true, nil).Once()
				store.On("RecordOrder", mock.Anything, createdEvent()).Return(nil).Once()
			},
		},
		{
			name:  "delivered",
			event: statusEvent("delivered"),
			setupMockStore: func(store *mocks.StatsStore) {
				store.On("MarkProcessed", mock.Anything, "evt-2").Return(true, nil).Once()
				store.On("RecordStatusChange", mock.Anything, statusEvent("delivered")).Return(nil).Once()
			},
		},
		{
			name:  "cancelled",
			event: statusEvent("cancelled"),
			setupMockStore: func(store *mocks.StatsStore) {
				store.On("MarkProcessed", mock.Anything, "evt-2").Return(true, nil).Once()
				store.On("RecordStatusChange", mock.Anything, statusEvent("cancelled")).Return(nil).Once()
			},
		},
		{
			name:           "intermediate status is ignored",
			event:          statusEvent("preparing"),
			setupMockStore: func(store *mocks.StatsStore) {},
		},
		{
			name:           "unknown type is ignored",
			event:          domain.OrderEvent{EventID: "evt-3", Type: "order_rated", RestaurantID: "rest-1"},
			setupMockStore: func(store *mocks.StatsStore) {},
		},
		{
			name:  "duplicate event",
			event: createdEvent(),
			setupMockStore: func(store *mocks.StatsStore) {
				store.On("MarkProcessed", mock.Anything, "evt-1").Return(false, nil).Once()
			},
		},
		{
			name:           "missing event id",
			event:          domain.OrderEvent{Type: domain.EventOrderCreated, RestaurantID: "rest-1"},
			setupMockStore: func(store *mocks.StatsStore) {},
			wantErr:        domain.ErrMalformedEvent,
		},
		{
			name:  "claim fails",
			event: createdEvent(),
			setupMockStore: func(store *mocks.StatsStore) {
				store.On("MarkProcessed", mock.Anything, "evt-1").Return(false, errors.New("redis down")).Once()
			},
			anyErr: true,
		},
		{
			name:  "record fails releases the claim",
			event: createdEvent(),
			setupMockStore: func(store *mocks.StatsStore) {
				store.On("MarkProcessed", mock.Anything, "evt-1").Return(true, nil).Once()
				store.On("RecordOrder", mock.Anything, createdEvent()).Return(errors.New("db down")).Once()
				store.On("ReleaseEvent", mock.Anything, "evt-1").Return(nil).Once()
			},
			anyErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewStatsStore(t)
			testCase.setupMockStore(store)

			err := newConsumer(store, nil).ProcessEvent(context.Background(), testCase.event)

			switch {
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			case testCase.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
			}
		})
	}
}

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		r.cancel()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func message(t *testing.T, offset int64, ev domain.OrderEvent) kafka.Message {
	t.Helper()
	value, err := json.Marshal(ev)
	require.NoError(t, err)
	return kafka.Message{Offset: offset, Key: []byte(ev.RestaurantID), Value: value}
}

func TestConsumer_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel, messages: []kafka.Message{
		message(t, 1, createdEvent()),
		{Offset: 2, Value: []byte("not json")},
		message(t, 3, statusEvent("delivered")),
	}}
	store := mocks.NewStatsStore(t)
	store.On("MarkProcessed", mock.Anything, "evt-1").Return(true, nil).Once()
	store.On("RecordOrder", mock.Anything, mock.MatchedBy(func(ev domain.OrderEvent) bool {
		return ev.OrderID == "ord-1" && ev.TotalCents == 3254 && len(ev.Items) == 2
	})).Return(nil).Once()
	store.On("MarkProcessed", mock.Anything, "evt-2").Return(true, nil).Once()
	store.On("RecordStatusChange", mock.Anything, mock.Anything).Return(nil).Once()

	newConsumer(store, reader).Start(ctx)

	require.Len(t, reader.committed, 3)
	assert.Equal(t, int64(2), reader.committed[1].Offset)
}

func TestConsumer_StartDropsAfterRetries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel, messages: []kafka.Message{message(t, 7, createdEvent())}}
	store := mocks.NewStatsStore(t)
	store.On("MarkProcessed", mock.Anything, "evt-1").Return(true, nil).Times(2)
	store.On("RecordOrder", mock.Anything, mock.Anything).Return(errors.New("db down")).Times(2)
	store.On("ReleaseEvent", mock.Anything, "evt-1").Return(nil).Times(2)

	newConsumer(store, reader).Start(ctx)

	require.Len(t, reader.committed, 1)
	assert.Equal(t, int64(7), reader.committed[0].Offset)
}
