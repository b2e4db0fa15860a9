// Package handoff turns a completed booking plus caller contact details into
// the downstream automation payloads (calendar hold, notes entry, email
// draft) and optionally notifies the advisor team.
package handoff

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/kaushiksr22/advisor-voice-agent/internal/booking"
	"github.com/kaushiksr22/advisor-voice-agent/internal/notify"
	"github.com/kaushiksr22/advisor-voice-agent/pkg/logging"
)

// ErrMissingFields is returned when the request lacks a booking code or email.
var ErrMissingFields = errors.New("handoff: booking_code and email are required")

// UnknownCodeError reports a booking code with no stored booking. The contact
// details are still persisted so a later correction can pick them up.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("handoff: unknown booking code %s", e.Code)
}

// Request carries the details a caller submits over the secure link.
type Request struct {
	BookingCode string `json:"booking_code"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes"`
}

// CalendarHold asks the calendar system for a tentative hold.
type CalendarHold struct {
	Action   string `json:"action"`
	Title    string `json:"title"`
	Start    string `json:"start"`
	Timezone string `json:"timezone"`
	Status   string `json:"status"`
}

// NotesEntry is one row appended to the pre-bookings document.
type NotesEntry struct {
	Date         string `json:"date"`
	Topic        string `json:"topic"`
	SlotID       string `json:"slot_id"`
	Code         string `json:"code"`
	ContactEmail string `json:"contact_email"`
}

// NotesAppend appends a booking summary to the shared notes document.
type NotesAppend struct {
	Action string     `json:"action"`
	Doc    string     `json:"doc"`
	Entry  NotesEntry `json:"entry"`
}

// EmailDraft is a draft for the advisor team. It always requires human
// approval before sending.
type EmailDraft struct {
	Action           string `json:"action"`
	ApprovalRequired bool   `json:"approval_required"`
	To               string `json:"to"`
	Subject          string `json:"subject"`
	Body             string `json:"body"`
}

// Actions bundles the automation payloads produced for one booking.
type Actions struct {
	CalendarHold CalendarHold `json:"calendar_hold"`
	NotesAppend  NotesAppend  `json:"notes_append"`
	EmailDraft   EmailDraft   `json:"email_draft"`
}

// Config wires a handoff Service.
type Config struct {
	Store     booking.Store
	Sender    notify.EmailSender
	TeamEmail string
	Logger    *logging.Logger
}

// Service persists caller contact details and produces automation payloads.
type Service struct {
	store     booking.Store
	sender    notify.EmailSender
	teamEmail string
	logger    *logging.Logger
	tracer    trace.Tracer
}

// NewService constructs a handoff service.
func NewService(cfg Config) *Service {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	if cfg.TeamEmail == "" {
		cfg.TeamEmail = "advisor-team@example.com"
	}
	return &Service{
		store:     cfg.Store,
		sender:    cfg.Sender,
		teamEmail: cfg.TeamEmail,
		logger:    cfg.Logger,
		tracer:    otel.Tracer("advisor.internal.handoff"),
	}
}

// Enrich stores the caller's contact details against the booking code and
// returns the automation payloads for the booking. Contact details are saved
// even when the code is unknown.
func (s *Service) Enrich(ctx context.Context, req Request) (*Actions, error) {
	ctx, span := s.tracer.Start(ctx, "handoff.enrich")
	defer span.End()

	if req.BookingCode == "" || req.Email == "" {
		return nil, ErrMissingFields
	}

	contact := booking.ContactDetails{
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	}
	if err := s.store.PutContact(ctx, req.BookingCode, contact); err != nil {
		return nil, fmt.Errorf("handoff: store contact for %s: %w", req.BookingCode, err)
	}

	rec, err := s.store.GetBooking(ctx, req.BookingCode)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, &UnknownCodeError{Code: req.BookingCode}
		}
		return nil, fmt.Errorf("handoff: load booking %s: %w", req.BookingCode, err)
	}

	actions := s.buildActions(rec, req)

	if s.sender != nil {
		msg := notify.EmailMessage{
			To:      actions.EmailDraft.To,
			ToName:  "Advisor Team",
			Subject: actions.EmailDraft.Subject,
			Body:    actions.EmailDraft.Body,
		}
		// Notification failures never block the handoff response.
		if err := s.sender.Send(ctx, msg); err != nil {
			s.logger.Warn("advisor team notification failed", "error", err, "code", req.BookingCode)
		}
	}

	s.logger.Info("handoff enriched", "code", req.BookingCode, "topic", rec.Topic)
	return actions, nil
}

func (s *Service) buildActions(rec *booking.Booking, req Request) *Actions {
	phone := req.Phone
	if phone == "" {
		phone = "Not provided"
	}
	notes := req.Notes
	if notes == "" {
		notes = "none"
	}

	return &Actions{
		CalendarHold: CalendarHold{
			Action:   "calendar.create_hold",
			Title:    fmt.Sprintf("Advisor Q&A - %s - %s", rec.Topic, rec.Code),
			Start:    rec.Slot.Start,
			Timezone: rec.TimezoneLabel,
			Status:   "tentative",
		},
		NotesAppend: NotesAppend{
			Action: "notes.append",
			Doc:    "Advisor Pre-Bookings",
			Entry: NotesEntry{
				Date:         rec.Slot.Start,
				Topic:        rec.Topic,
				SlotID:       rec.Slot.ID,
				Code:         rec.Code,
				ContactEmail: req.Email,
			},
		},
		EmailDraft: EmailDraft{
			Action:           "email.create_draft",
			ApprovalRequired: true,
			To:               s.teamEmail,
			Subject:          fmt.Sprintf("Pre-booking request - %s - %s", rec.Topic, rec.Code),
			Body: fmt.Sprintf(
				"Hi Advisor Team,\n\n"+
					"A caller has tentatively booked an advisor slot.\n\n"+
					"Booking Code: %s\n"+
					"Topic: %s\n"+
					"Slot (%s): %s\n"+
					"Caller Email: %s\n"+
					"Caller Phone: %s\n"+
					"Notes: %s\n\n"+
					"Please review and confirm.\n",
				rec.Code, rec.Topic, rec.TimezoneLabel, rec.Slot.Start, req.Email, phone, notes),
		},
	}
}
