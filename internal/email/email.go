package email

import (
	"context"

	"github.com/Domenick1991/busbooking/internal/kafka"
	"go.uber.org/zap"
)

// Sender is a stand-in for a real mail gateway: it logs the notification
// it would send for a booking event.
type Sender struct {
	log *zap.Logger
}

func NewSender(log *zap.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	s.log.Info("send booking notification",
		zap.String("type", event.Type),
		zap.String("passenger", event.PassengerName),
		zap.String("mobile", event.PassengerMobile),
		zap.String("code", event.BookingIdentificationCode),
	)
	return nil
}
