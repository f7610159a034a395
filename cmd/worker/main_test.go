package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/ecoleta/pkg/logger"
	pointEvents "github.com/ghuser/ecoleta/services/point/domain/events"
	"github.com/ghuser/ecoleta/services/point/domain/models"
)

type stubWarmer struct {
	ids []models.PointID
	err error
}

func (s *stubWarmer) Warm(_ context.Context, id models.PointID) error {
	s.ids = append(s.ids, id)
	return s.err
}

type stubBus struct {
	topic   string
	handler func(context.Context, *message.Message) error
	errCh   chan error
	err     error
}

func (b *stubBus) Subscribe(_ context.Context, topic string, h func(context.Context, *message.Message) error) (<-chan error, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.topic, b.handler = topic, h
	b.errCh = make(chan error)
	return b.errCh, nil
}

func createdMessage(t *testing.T, pointID int64) *message.Message {
	t.Helper()
	payload, err := json.Marshal(pointEvents.PointCreatedEvent{
		EventID: uuid.New(),
		Version: 1,
		PointID: pointID,
		ItemIDs: []int64{1, 2},
		City:    "Recife",
		UF:      "PE",
	})
	require.NoError(t, err)
	return message.NewMessage(uuid.NewString(), payload)
}

func TestHandlePointCreated_WarmsCache(t *testing.T) {
	w := &stubWarmer{}
	err := handlePointCreated(w, logger.Discard())(context.Background(), createdMessage(t, 42))
	require.NoError(t, err)
	require.Equal(t, []models.PointID{42}, w.ids)
}

func TestHandlePointCreated_WarmFailureIsNotRetried(t *testing.T) {
	w := &stubWarmer{err: errors.New("redis down")}
	err := handlePointCreated(w, logger.Discard())(context.Background(), createdMessage(t, 7))
	require.NoError(t, err)
	require.Len(t, w.ids, 1)
}

func TestHandlePointCreated_MalformedPayload(t *testing.T) {
	w := &stubWarmer{}
	err := handlePointCreated(w, logger.Discard())(context.Background(), message.NewMessage("x", []byte("nope")))
	require.Error(t, err)
	require.Empty(t, w.ids)
}

func TestRegisterSubscribers_SubscribesToPointCreated(t *testing.T) {
	bus := &stubBus{}
	w := &stubWarmer{}
	require.NoError(t, registerSubscribers(context.Background(), bus, w, logger.Discard()))
	defer close(bus.errCh)

	require.Equal(t, pointEvents.TopicPointCreated, bus.topic)
	require.NoError(t, bus.handler(context.Background(), createdMessage(t, 3)))
	require.Equal(t, []models.PointID{3}, w.ids)
}

func TestRegisterSubscribers_PropagatesSubscribeError(t *testing.T) {
	bus := &stubBus{err: errors.New("no schema")}
	require.Error(t, registerSubscribers(context.Background(), bus, &stubWarmer{}, logger.Discard()))
}
