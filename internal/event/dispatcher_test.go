package event

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/rentaro/lease-engine/internal/domain"
	"github.com/rentaro/lease-engine/internal/event/mocks"
)

type DispatcherSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	outbox *mocks.MockOutboxSource
	pub    *mocks.MockPublisher
	d      *Dispatcher
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherSuite))
}

func (s *DispatcherSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.outbox = mocks.NewMockOutboxSource(s.ctrl)
	s.pub = mocks.NewMockPublisher(s.ctrl)

	l := logrus.New()
	l.SetOutput(io.Discard)
	s.d = NewDispatcher(s.outbox, s.pub, time.Second, l)
}

func (s *DispatcherSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DispatcherSuite) TestFlushPublishesInOrder() {
	ctx := context.Background()
	events := []domain.OutboxEvent{
		{ID: 1, EventID: "e1", Topic: domain.EventOrderPaid, Payload: []byte(`{"order_id":1}`)},
		{ID: 2, EventID: "e2", Topic: domain.EventOrderCancelled, Payload: []byte(`{"order_id":2}`)},
	}

	s.outbox.EXPECT().GetPending(ctx, uint(dispatchBatchSize)).Return(events, nil)
	first := s.pub.EXPECT().
		Publish(ctx, domain.EventOrderPaid, "e1", events[0].Payload).
		Return(nil)
	s.pub.EXPECT().
		Publish(ctx, domain.EventOrderCancelled, "e2", events[1].Payload).
		Return(nil).
		After(first)
	s.outbox.EXPECT().MarkPublished(ctx, []int64{1, 2}).Return(nil)

	s.Require().NoError(s.d.Flush(ctx))
}

// Ошибка публикации обрывает пачку: доставленная голова подтверждается,
// недоставленный хвост остается в outbox.
func (s *DispatcherSuite) TestFlushStopsBatchOnPublishFailure() {
	ctx := context.Background()
	events := []domain.OutboxEvent{
		{ID: 1, EventID: "e1", Topic: domain.EventOrderPaid, Payload: []byte(`{"order_id":1}`)},
		{ID: 2, EventID: "e2", Topic: domain.EventOrderPaid, Payload: []byte(`{"order_id":2}`)},
		{ID: 3, EventID: "e3", Topic: domain.EventOrderPaid, Payload: []byte(`{"order_id":3}`)},
	}

	s.outbox.EXPECT().GetPending(ctx, uint(dispatchBatchSize)).Return(events, nil)
	s.pub.EXPECT().Publish(ctx, domain.EventOrderPaid, "e1", events[0].Payload).Return(nil)
	s.pub.EXPECT().
		Publish(ctx, domain.EventOrderPaid, "e2", events[1].Payload).
		Return(errors.New("broker unavailable"))
	s.outbox.EXPECT().MarkPublished(ctx, []int64{1}).Return(nil)

	s.Require().NoError(s.d.Flush(ctx))
}

func (s *DispatcherSuite) TestFlushNoPending() {
	ctx := context.Background()
	s.outbox.EXPECT().GetPending(ctx, uint(dispatchBatchSize)).Return(nil, nil)

	s.Require().NoError(s.d.Flush(ctx))
}

func (s *DispatcherSuite) TestFlushMarkFailureReturnsError() {
	ctx := context.Background()
	events := []domain.OutboxEvent{
		{ID: 1, EventID: "e1", Topic: domain.EventOrderPaid, Payload: []byte(`{"order_id":1}`)},
	}

	s.outbox.EXPECT().GetPending(ctx, uint(dispatchBatchSize)).Return(events, nil)
	s.pub.EXPECT().Publish(ctx, domain.EventOrderPaid, "e1", events[0].Payload).Return(nil)
	s.outbox.EXPECT().
		MarkPublished(ctx, []int64{1}).
		Return(errors.New("db is down"))

	s.Require().Error(s.d.Flush(ctx))
}
