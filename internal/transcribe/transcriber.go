// Package transcribe converts caller audio into plain text.
package transcribe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/kaushiksr22/advisor-voice-agent/pkg/logging"
)

// DefaultMIMEType is what browser recorders upload.
const DefaultMIMEType = "audio/webm"

const transcriptionPrompt = "Transcribe the audio into plain text only. " +
	"Output ONLY the transcript. No commentary, no labels."

// Transcriber converts one audio clip into a transcript. An empty transcript
// with a nil error means the speech could not be recognized.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// GeminiTranscriber uses Gemini multimodal input for speech to text.
type GeminiTranscriber struct {
	client  *genai.Client
	modelID string
	logger  *logging.Logger
}

// NewGeminiTranscriber creates a Gemini-backed transcriber.
func NewGeminiTranscriber(ctx context.Context, apiKey, modelID string, logger *logging.Logger) (*GeminiTranscriber, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("transcribe: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}
	if logger == nil {
		logger = logging.Default()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("transcribe: failed to create gemini client: %w", err)
	}

	return &GeminiTranscriber{
		client:  client,
		modelID: modelID,
		logger:  logger,
	}, nil
}

// Transcribe sends the audio to Gemini and returns the transcript text.
func (t *GeminiTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if len(audio) == 0 {
		return "", errors.New("transcribe: empty audio")
	}
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}

	model := t.client.GenerativeModel(t.modelID)
	resp, err := model.GenerateContent(ctx,
		genai.Text(transcriptionPrompt),
		genai.Blob{MIMEType: mimeType, Data: audio},
	)
	if err != nil {
		return "", fmt.Errorf("transcribe: gemini transcription failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("transcribe: gemini returned no candidates")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}

	transcript := strings.TrimSpace(out.String())
	t.logger.Debug("transcription complete", "bytes", len(audio), "chars", len(transcript))
	return transcript, nil
}

// Close releases resources held by the Gemini client.
func (t *GeminiTranscriber) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
