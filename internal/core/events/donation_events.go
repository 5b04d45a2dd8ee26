package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeCheckoutSessionCreated = "checkout.session.created"
	EventTypeCheckoutFailed         = "checkout.failed"
	EventTypeContactMessageReceived = "contact.message.received"
)

// CheckoutSessionCreatedEvent records a successful hand-off to the hosted
// checkout. The session itself is never stored; this event is the only trace.
type CheckoutSessionCreatedEvent struct {
	BaseEvent
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
	IsMonthly bool   `json:"is_monthly"`
}

func NewCheckoutSessionCreatedEvent(sessionID string, amount int64, isMonthly bool) *CheckoutSessionCreatedEvent {
	return &CheckoutSessionCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCheckoutSessionCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"session_id": sessionID,
				"amount":     amount,
				"is_monthly": isMonthly,
			},
		},
		SessionID: sessionID,
		Amount:    amount,
		IsMonthly: isMonthly,
	}
}

type CheckoutFailedEvent struct {
	BaseEvent
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

func NewCheckoutFailedEvent(amount int64, reason string) *CheckoutFailedEvent {
	return &CheckoutFailedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCheckoutFailed,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"amount": amount,
				"reason": reason,
			},
		},
		Amount: amount,
		Reason: reason,
	}
}

type ContactMessageReceivedEvent struct {
	BaseEvent
	Topic            string `json:"topic"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	PreferredContact string `json:"preferred_contact"`
}

func NewContactMessageReceivedEvent(topic, name, email, preferredContact string) *ContactMessageReceivedEvent {
	return &ContactMessageReceivedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeContactMessageReceived,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"topic":             topic,
				"name":              name,
				"email":             email,
				"preferred_contact": preferredContact,
			},
		},
		Topic:            topic,
		Name:             name,
		Email:            email,
		PreferredContact: preferredContact,
	}
}
