package extraction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kaushiksr22/advisor-voice-agent/pkg/logging"
)

// Extraction failure reasons. The dialogue engine treats every failure the
// same way (fallback parse) but logs and counts them separately.
var (
	ErrNoClient      = errors.New("extraction: no llm client configured")
	ErrNoJSONObject  = errors.New("extraction: response contains no json object")
	ErrServiceFailed = errors.New("extraction: llm call failed")
)

const extractionPromptTemplate = `Return STRICT JSON only (no markdown, no code fences).

Allowed intents:
book_new, reschedule, cancel, what_to_prepare, check_availability, other

Allowed topics (must match exactly if present):
%s

Keys (always include):
intent, topic, day_preference, time_preference

User said:
%s`

// Extractor maps caller utterances to intent and slots via the LLM service.
// It never mutates conversation state; failures are returned to the caller so
// the fallback substitution stays a visible branch in the engine.
type Extractor struct {
	client  LLMClient
	timeout time.Duration
	logger  *logging.Logger
}

// NewExtractor creates an extractor. A nil client is allowed and makes every
// Extract call fail with ErrNoClient, routing all turns to the fallback parser.
func NewExtractor(client LLMClient, timeout time.Duration, logger *logging.Logger) *Extractor {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Extractor{client: client, timeout: timeout, logger: logger}
}

// Extract classifies the utterance and pulls booking slots out of it.
// Empty or whitespace-only input short-circuits to the default result without
// a service call.
func (e *Extractor) Extract(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return DefaultResult(), nil
	}
	if e.client == nil {
		return Result{}, ErrNoClient
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := fmt.Sprintf(extractionPromptTemplate, TopicList(), text)
	resp, err := e.client.Complete(ctx, LLMRequest{Prompt: prompt, Temperature: 0})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrServiceFailed, err)
	}

	obj, ok := firstJSONObject(resp.Text)
	if !ok {
		e.logger.Warn("extraction response had no parseable json", "stop_reason", resp.StopReason)
		return Result{}, ErrNoJSONObject
	}

	return Result{
		Intent:         ParseIntent(stringField(obj, "intent")),
		Topic:          stringField(obj, "topic"),
		DayPreference:  stringField(obj, "day_preference"),
		TimePreference: stringField(obj, "time_preference"),
	}, nil
}
