package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

type recordingChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (c *recordingChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg
	return c.err
}

func (c *recordingChannel) Close() error {
	c.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	ch := &recordingChannel{}
	p := &Publisher{ch: ch, exchange: "court-booking"}
	at := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	booking := &domain.Booking{
		ID:        "bk-1",
		CourtID:   "c1",
		Date:      "2024-06-10",
		StartTime: "18:00",
		EndTime:   "19:00",
		Status:    domain.BookingStatusConfirmed,
		Price:     domain.PriceBreakdown{Total: 32.5},
	}

	require.NoError(t, p.Publish(context.Background(), KeyBookingCreated, NewBookingEvent(KeyBookingCreated, booking, at)))

	assert.Equal(t, "court-booking", ch.exchange)
	assert.Equal(t, KeyBookingCreated, ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)

	var decoded BookingEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.Equal(t, "bk-1", decoded.BookingID)
	assert.Equal(t, "18:00", decoded.StartTime)
	assert.Equal(t, 32.5, decoded.Total)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestPublisher_PublishError(t *testing.T) {
	p := &Publisher{ch: &recordingChannel{err: errors.New("channel closed")}, exchange: "x"}

	err := p.Publish(context.Background(), KeyWaitlistJoined, NewWaitlistEvent(&domain.WaitlistEntry{ID: "wl-1"}, time.Now()))
	assert.ErrorIs(t, err, ErrPublish)
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.Publish(context.Background(), KeyBookingCancelled, struct{}{}))
	assert.NoError(t, p.Close())
}
