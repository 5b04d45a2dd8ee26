package contact

import (
	"strings"

	errors "github.com/wordhope/donation-site/internal"
	"github.com/wordhope/donation-site/internal/core/common/validation"
)

// Topics mirrors the options offered by the contact form.
var Topics = []string{"general", "donation", "sponsorship", "mission-trip", "volunteer", "programs", "other"}

// ContactMethods are the accepted follow-up preferences.
var ContactMethods = []string{"email", "call", "text"}

// ContactMessage is one submission of the contact form. BotField is the
// honeypot: humans never see it, so a filled value marks the sender as a bot.
type ContactMessage struct {
	Topic            string `json:"topic"`
	OtherTopic       string `json:"otherTopic,omitempty"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	PreferredContact string `json:"preferredContact,omitempty"`
	Message          string `json:"message"`
	BotField         string `json:"bot-field,omitempty"`
}

// FinalTopic resolves the effective topic: the free-text entry when "other"
// was chosen, the selected topic otherwise.
func (m *ContactMessage) FinalTopic() string {
	if m.Topic == "other" {
		return strings.TrimSpace(m.OtherTopic)
	}
	return m.Topic
}

func (m *ContactMessage) IsSpam() bool {
	return m.BotField != ""
}

func (m *ContactMessage) Validate() error {
	validator := validation.NewValidator()

	validator.Field("name", m.Name).Required().MaxLength(200)
	validator.Field("email", m.Email).Required().Email(errors.ErrCodeInvalidEmail)
	validator.Field("message", m.Message).Required().MaxLength(5000)
	validator.Field("topic", m.Topic).Required().OneOf(errors.ErrCodeInvalidTopic, Topics...)
	validator.Field("preferredContact", m.PreferredContact).OneOf(errors.ErrCodeInvalidContact, ContactMethods...)

	if appErr := validator.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
