// Package handlers exposes the dialogue engine and handoff service over HTTP.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/kaushiksr22/advisor-voice-agent/internal/dialogue"
	"github.com/kaushiksr22/advisor-voice-agent/internal/transcribe"
	"github.com/kaushiksr22/advisor-voice-agent/pkg/logging"
)

// maxAudioBytes caps one uploaded voice turn.
const maxAudioBytes = 10 << 20

// sessionIDHeader identifies the conversation a turn belongs to. Clients that
// omit it share the default session.
const sessionIDHeader = "X-Session-Id"

// TurnHandler serves the text and voice turn endpoints.
type TurnHandler struct {
	engine      *dialogue.Engine
	transcriber transcribe.Transcriber
	logger      *logging.Logger
}

// TurnHandlerConfig wires a TurnHandler.
type TurnHandlerConfig struct {
	Engine      *dialogue.Engine
	Transcriber transcribe.Transcriber
	Logger      *logging.Logger
}

// NewTurnHandler creates a turn handler. Transcriber may be nil, in which
// case voice turns degrade to an empty transcript.
func NewTurnHandler(cfg TurnHandlerConfig) *TurnHandler {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &TurnHandler{
		engine:      cfg.Engine,
		transcriber: cfg.Transcriber,
		logger:      cfg.Logger,
	}
}

type textTurnRequest struct {
	Text string `json:"text"`
}

type turnResponse struct {
	Transcript string `json:"transcript"`
	ReplyText  string `json:"reply_text"`
}

// TextTurn handles POST /api/text-turn.
func (h *TurnHandler) TextTurn(w http.ResponseWriter, r *http.Request) {
	var req textTurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	text := strings.TrimSpace(req.Text)
	sessionID := r.Header.Get(sessionIDHeader)

	reply, err := h.engine.ProcessTurn(r.Context(), sessionID, text)
	if err != nil {
		h.logger.Error("text turn failed", "error", err, "session_id", sessionID)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, turnResponse{Transcript: text, ReplyText: reply})
}

// VoiceTurn handles POST /api/voice-turn. The request is multipart with one
// "audio" file part. Transcription failure is not an error: the turn runs
// with an empty transcript and the agent asks the caller to repeat.
func (h *TurnHandler) VoiceTurn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAudioBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart body"})
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "audio file is required"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "failed to read audio"})
		return
	}

	sessionID := r.Header.Get(sessionIDHeader)
	transcript := h.transcribeAudio(r, audio, header.Header.Get("Content-Type"))

	reply, err := h.engine.ProcessTurn(r.Context(), sessionID, transcript)
	if err != nil {
		h.logger.Error("voice turn failed", "error", err, "session_id", sessionID)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, turnResponse{Transcript: transcript, ReplyText: reply})
}

func (h *TurnHandler) transcribeAudio(r *http.Request, audio []byte, mimeType string) string {
	if h.transcriber == nil {
		h.logger.Warn("no transcriber configured, treating voice turn as silence")
		return ""
	}
	transcript, err := h.transcriber.Transcribe(r.Context(), audio, mimeType)
	if err != nil {
		h.logger.Warn("transcription failed, treating voice turn as silence", "error", err)
		return ""
	}
	return transcript
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
