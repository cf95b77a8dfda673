// Package contact acknowledges contact-form submissions locally. Nothing is
// sent anywhere.
package contact

import (
	"fmt"
	"log/slog"
)

// Submission is the name/email/message triple from the form.
type Submission struct {
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Message string `json:"message" yaml:"message"`
}

// Event is the submit event; only its default action matters here.
type Event interface {
	PreventDefault()
}

// Form yields the submitted fields and can clear them.
type Form interface {
	Fields() Submission
	Reset()
}

// Notifier shows a message to the user, like window.alert.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Handler acknowledges submissions.
type Handler struct {
	Notifier Notifier
	Log      *slog.Logger
}

// Confirmation formats the acknowledgment. Name and email are embedded
// verbatim.
func Confirmation(s Submission) string {
	return fmt.Sprintf("Thank you %s! Your message has been sent successfully. We will get back to you at %s soon.", s.Name, s.Email)
}

// Submit prevents the default submission, shows the confirmation and resets
// the form. It returns what was submitted.
func (h *Handler) Submit(ev Event, form Form) Submission {
	ev.PreventDefault()
	s := form.Fields()

	msg := Confirmation(s)
	if h.Notifier != nil {
		h.Notifier.Notify(msg)
	}
	if h.Log != nil {
		h.Log.Debug("contact form acknowledged", "message_len", len(s.Message))
	}

	form.Reset()
	return s
}
