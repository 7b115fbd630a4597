// Package stt defines the speech-recognition capability consumed by the
// dialog and an HTTP client for a hosted recognizer service.
package stt

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/freshauto/intakebot/types"
)

// Recognizer converts compressed voice audio into text. Ready must be
// checked before use; an unready recognizer yields a user-facing "still
// loading" message rather than an error.
type Recognizer interface {
	Ready() bool
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// voiceSteps are the dialog stages that accept voice input (details through
// solution confirmation).
var voiceSteps = map[types.Step]bool{
	types.StepAwaitingDetails:              true,
	types.StepAwaitingConfirmation:         true,
	types.StepAwaitingSolution:             true,
	types.StepAwaitingSolutionConfirmation: true,
}

// StepAllowsVoice reports whether voice messages are accepted at the step.
func StepAllowsVoice(step types.Step) bool {
	return voiceSteps[step]
}

// HTTPRecognizer talks to a hosted speech-to-text service: audio bytes are
// posted to the transcribe endpoint, the response carries the recognized
// text. Readiness is probed once and cached.
type HTTPRecognizer struct {
	baseURL string
	client  *http.Client

	mu    sync.Mutex
	ready bool
}

// probeTimeout bounds a single health probe; the client timeout is sized
// for transcription and is far too long for a readiness check.
const probeTimeout = 2 * time.Second

func NewHTTPRecognizer(baseURL string) *HTTPRecognizer {
	return &HTTPRecognizer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Ready probes the service health endpoint. A successful probe is cached;
// until then every call re-probes so the service can finish loading its
// model. The probe runs outside the lock: concurrent conversations must not
// queue behind a slow health check.
func (r *HTTPRecognizer) Ready() bool {
	r.mu.Lock()
	ready := r.ready
	r.mu.Unlock()
	if ready {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}

	r.mu.Lock()
	r.ready = true
	r.mu.Unlock()
	return true
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe posts the audio and returns the recognized text. An empty
// string with nil error means the service recognized no speech.
func (r *HTTPRecognizer) Transcribe(ctx context.Context, audio []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/transcribe", bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("build transcribe request: %w", err)
	}
	req.Header.Set("Content-Type", "audio/ogg")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcribe request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("transcribe returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read transcribe response: %w", err)
	}
	var parsed transcribeResponse
	if err := sonic.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode transcribe response: %w", err)
	}
	return parsed.Text, nil
}
