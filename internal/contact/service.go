package contact

import (
	"context"
	"log/slog"

	"github.com/wordhope/donation-site/internal/core/events"
)

// Service receives contact messages. Nothing is stored: accepted messages
// are logged and announced on the event bus for whatever sink is subscribed.
type Service struct {
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{bus: bus, logger: logger}
}

// Receive validates and accepts one submission. Honeypot hits are accepted
// and silently dropped so bots learn nothing from the response.
func (s *Service) Receive(ctx context.Context, msg *ContactMessage) error {
	if msg.IsSpam() {
		s.logger.Info("contact honeypot tripped, dropping submission")
		return nil
	}

	if err := msg.Validate(); err != nil {
		return err
	}

	s.logger.Info("contact message received",
		"topic", msg.FinalTopic(),
		"name", msg.Name,
		"preferred_contact", msg.PreferredContact,
		"has_phone", msg.Phone != "")

	if s.bus != nil {
		if err := s.bus.Publish(ctx, events.NewContactMessageReceivedEvent(msg.FinalTopic(), msg.Name, msg.Email, msg.PreferredContact)); err != nil {
			s.logger.Error("failed to publish contact event", "error", err)
		}
	}

	return nil
}
