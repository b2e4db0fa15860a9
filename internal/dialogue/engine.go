package dialogue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kaushiksr22/advisor-voice-agent/internal/booking"
	"github.com/kaushiksr22/advisor-voice-agent/internal/extraction"
	"github.com/kaushiksr22/advisor-voice-agent/internal/observability/metrics"
	"github.com/kaushiksr22/advisor-voice-agent/internal/pii"
	"github.com/kaushiksr22/advisor-voice-agent/internal/schedule"
	"github.com/kaushiksr22/advisor-voice-agent/pkg/logging"
)

// adviceKeywords trigger the investment-advice refusal before extraction runs.
var adviceKeywords = []string{"buy", "sell", "invest", "stock", "mutual fund", "recommend"}

// looseBookingKeywords rescue an unclassified turn into the booking flow.
var looseBookingKeywords = []string{"book", "appointment", "slot"}

// Extractor is the engine's view of the extraction adapter. A failed Extract
// is always followed by the deterministic fallback parse; the substitution is
// a visible branch, never hidden control flow.
type Extractor interface {
	Extract(ctx context.Context, text string) (extraction.Result, error)
}

// Selector picks the candidate slots to offer for a day/time preference.
type Selector func(dayPreference, timePreference string) []schedule.Slot

// Config wires an Engine.
type Config struct {
	Extractor      Extractor
	Store          booking.Store
	Selector       Selector
	SecureLinkBase string
	TimezoneLabel  string
	Logger         *logging.Logger
	Metrics        *metrics.TurnMetrics
}

// Engine is the turn-based dialogue state machine. It owns all live
// conversation state and renders every reply from fixed templates.
type Engine struct {
	sessions  *Sessions
	extractor Extractor
	store     booking.Store
	selector  Selector
	linkBase  string
	tzLabel   string
	logger    *logging.Logger
	metrics   *metrics.TurnMetrics
	tracer    trace.Tracer
}

// NewEngine constructs a dialogue engine.
func NewEngine(cfg Config) *Engine {
	if cfg.Store == nil {
		cfg.Store = booking.NewMemoryStore()
	}
	if cfg.Selector == nil {
		cfg.Selector = schedule.PickTwo
	}
	if cfg.SecureLinkBase == "" {
		cfg.SecureLinkBase = "http://localhost:5173/secure"
	}
	if cfg.TimezoneLabel == "" {
		cfg.TimezoneLabel = "IST"
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &Engine{
		sessions:  NewSessions(),
		extractor: cfg.Extractor,
		store:     cfg.Store,
		selector:  cfg.Selector,
		linkBase:  cfg.SecureLinkBase,
		tzLabel:   cfg.TimezoneLabel,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
		tracer:    otel.Tracer("advisor.internal.dialogue"),
	}
}

// Store exposes the booking store shared with the handoff service.
func (e *Engine) Store() booking.Store {
	return e.store
}

// Snapshot returns a copy of a session's state. Intended for tests and
// read-only inspection; OfferedSlots shares no backing array with the live state.
func (e *Engine) Snapshot(sessionID string) State {
	sess := e.sessions.Get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	st := sess.state
	if st.OfferedSlots != nil {
		st.OfferedSlots = append([]schedule.Slot(nil), st.OfferedSlots...)
	}
	if st.SelectedSlot != nil {
		slot := *st.SelectedSlot
		st.SelectedSlot = &slot
	}
	return st
}

// ProcessTurn runs one caller utterance through the turn pipeline and returns
// the agent's reply. Turns for the same session are serialized.
func (e *Engine) ProcessTurn(ctx context.Context, sessionID, text string) (string, error) {
	ctx, span := e.tracer.Start(ctx, "dialogue.turn")
	defer span.End()

	sess := e.sessions.Get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	st := &sess.state

	text = strings.TrimSpace(text)
	if text == "" {
		// Transcription failures degrade to empty text; never a system error.
		return replyDidNotCatch, nil
	}

	if reason, found := pii.ScanReason(text); found {
		e.metrics.ObservePIIBlocked(reason)
		code := st.BookingCode
		if code == "" {
			code = booking.PlaceholderCode
		}
		e.logger.Info("turn intercepted by pii guard", "session_id", sess.ID, "reason", reason)
		return replyPII(booking.SecureLink(e.linkBase, code)), nil
	}

	if !st.DisclaimerShown {
		st.DisclaimerShown = true
		return replyDisclaimer, nil
	}

	lower := strings.ToLower(text)
	if containsAny(lower, adviceKeywords) {
		return replyNoAdvice(), nil
	}

	res := e.extract(ctx, text, st)

	intent := res.Intent
	if st.BookingStarted() {
		// Sticky flow: a started booking is never abandoned by a
		// misclassified turn.
		intent = extraction.IntentBookNew
	}
	st.CurrentIntent = intent
	span.SetAttributes(attribute.String("advisor.intent", string(intent)))
	e.metrics.ObserveTurn(string(intent))

	switch intent {
	case extraction.IntentCancel:
		return e.handleCancel(st, text), nil

	case extraction.IntentReschedule:
		reply, resumed := e.handleReschedule(st, text)
		if !resumed {
			return reply, nil
		}
		// A known code means "book a new slot, old code stays on file".
		intent = extraction.IntentBookNew
		st.CurrentIntent = intent

	case extraction.IntentWhatToPrepare:
		return e.handlePrepare(res), nil

	case extraction.IntentCheckAvailability:
		return e.handleAvailability(res), nil
	}

	if intent != extraction.IntentBookNew {
		if !containsAny(lower, looseBookingKeywords) {
			return replyMenu, nil
		}
		st.CurrentIntent = extraction.IntentBookNew
	}

	return e.advanceBooking(ctx, sess, res, lower, text)
}

// extract runs the adapter and, on any failure, the deterministic fallback.
func (e *Engine) extract(ctx context.Context, text string, st *State) extraction.Result {
	start := time.Now()
	defer func() {
		e.metrics.ObserveExtractionLatency(time.Since(start).Seconds())
	}()

	if e.extractor == nil {
		e.metrics.ObserveFallback("no_extractor")
		return extraction.ParseFallback(text, st.MidBooking())
	}

	res, err := e.extractor.Extract(ctx, text)
	if err != nil {
		e.logger.Warn("extraction service failed, using local parser", "error", err)
		e.metrics.ObserveFallback("service_error")
		return extraction.ParseFallback(text, st.MidBooking())
	}
	return res
}

func (e *Engine) handleCancel(st *State, text string) string {
	if st.ProvidedCode == "" {
		code, ok := booking.ExtractCode(text)
		if !ok {
			return replyAskCode
		}
		st.ProvidedCode = code
	}
	code := st.ProvidedCode
	st.ResetBooking()
	st.ResetRescheduleCancel()
	return replyCancelled(code)
}

// handleReschedule captures the booking code. resumed is true once a code is
// already on file and the turn should continue as a fresh booking.
func (e *Engine) handleReschedule(st *State, text string) (reply string, resumed bool) {
	if st.ProvidedCode != "" {
		return "", true
	}
	code, ok := booking.ExtractCode(text)
	if !ok {
		return replyAskCode, false
	}
	st.ProvidedCode = code
	st.ResetBooking()
	return replyRescheduleCode(code, e.tzLabel), false
}

func (e *Engine) handlePrepare(res extraction.Result) string {
	topic, ok := extraction.ParseTopic(res.Topic)
	if !ok {
		return replyAskTopicForPrep()
	}
	return replyPrepTips(string(topic), prepGuides[topic])
}

func (e *Engine) handleAvailability(res extraction.Result) string {
	if _, ok := extraction.ParseTopic(res.Topic); !ok {
		return replyAskTopic()
	}
	if res.DayPreference == "" {
		return replyAskDayForCheck
	}
	if res.TimePreference == "" {
		return replyAskTimeForCheck(e.tzLabel)
	}
	slots := e.selector(res.DayPreference, res.TimePreference)
	if len(slots) < 2 {
		return replyMenu
	}
	return replyAvailability(res.Topic, e.tzLabel, slots)
}

// advanceBooking advances the single first-missing booking field per turn,
// in fixed order: topic, day, time, offer, selection, confirmation.
func (e *Engine) advanceBooking(ctx context.Context, sess *Session, res extraction.Result, lower, text string) (string, error) {
	st := &sess.state

	if st.Topic == "" {
		topic, ok := extraction.ParseTopic(res.Topic)
		if !ok {
			return replyAskTopic(), nil
		}
		st.Topic = string(topic)
	}

	if st.DayPreference == "" {
		if res.DayPreference == "" {
			return replyAskDayForBooking, nil
		}
		st.DayPreference = res.DayPreference
	}

	if st.TimePreference == "" {
		if res.TimePreference == "" {
			return replyAskTime(e.tzLabel), nil
		}
		st.TimePreference = res.TimePreference
	}

	if st.OfferedSlots == nil {
		slots := e.selector(st.DayPreference, st.TimePreference)
		if len(slots) < 2 {
			return e.waitlist(st), nil
		}
		st.OfferedSlots = slots[:2]
		return replyOfferSlots(e.tzLabel, st.OfferedSlots), nil
	}

	if st.SelectedSlot == nil {
		switch {
		case strings.Contains(lower, "1"), strings.Contains(lower, "one"):
			slot := st.OfferedSlots[0]
			st.SelectedSlot = &slot
		case strings.Contains(lower, "2"), strings.Contains(lower, "two"):
			slot := st.OfferedSlots[1]
			st.SelectedSlot = &slot
		default:
			return replyChooseOption, nil
		}
		return replyConfirmSlot(e.tzLabel, st.Topic, *st.SelectedSlot), nil
	}

	if st.BookingCode == "" {
		if !strings.Contains(lower, "yes") {
			// Anything but a yes discards the selection and re-offers.
			st.SelectedSlot = nil
			return replyChooseAgain, nil
		}

		code := booking.GenerateCode()
		slot := *st.SelectedSlot
		record := booking.Booking{
			Code:          code,
			Topic:         st.Topic,
			Slot:          slot,
			TimezoneLabel: e.tzLabel,
		}
		if err := e.store.PutBooking(ctx, record); err != nil {
			e.logger.Error("failed to persist booking",
				"error", err,
				"session_id", sess.ID,
				"intent", st.CurrentIntent,
				"text", text,
			)
			return "", fmt.Errorf("dialogue: persist booking %s: %w", code, err)
		}
		st.BookingCode = code
		e.metrics.ObserveBookingCreated()
		e.logger.Info("booking created", "code", code, "topic", st.Topic, "slot_id", slot.ID)
		return replyBooked(code, e.tzLabel, st.Topic, slot, booking.SecureLink(e.linkBase, code)), nil
	}

	return replyAllSet, nil
}

// waitlist reports no availability, reusing the session's booking code when
// one exists so repeated waitlist turns stay on the same code.
func (e *Engine) waitlist(st *State) string {
	code := st.BookingCode
	if code == "" {
		code = booking.GenerateCode()
		st.BookingCode = code
	}
	return replyWaitlisted(st.Topic, code, booking.SecureLink(e.linkBase, code))
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
