// Package webhook delivers the finalized intake submission to the external
// reclamation endpoint.
package webhook

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

const (
	userAgent      = "FreshAuto-Bot/1.0"
	requestTimeout = 15 * time.Second
	dateLayout     = "02.01.2006 15:04"
)

// Payload is the wire shape the reclamation endpoint expects.
type Payload struct {
	Name               string `json:"name"`
	Surname            string `json:"surname"`
	Phone              string `json:"phone"`
	ProblemDescription string `json:"problem_description"`
	ClientOffer        string `json:"client_offer"`
	Date               string `json:"date"`
}

// FormatClientData builds the submission payload. The full name splits on
// whitespace: first token becomes the name, the rest joined by spaces become
// the surname. Date is the current local time as DD.MM.YYYY HH:MM.
func FormatClientData(name, phone, problemDescription, clientOffer string) Payload {
	parts := strings.Fields(name)
	first := ""
	last := ""
	if len(parts) > 0 {
		first = parts[0]
		last = strings.Join(parts[1:], " ")
	}
	return Payload{
		Name:               first,
		Surname:            last,
		Phone:              phone,
		ProblemDescription: problemDescription,
		ClientOffer:        clientOffer,
		Date:               time.Now().Format(dateLayout),
	}
}

// Sender posts payloads to the configured endpoint. A single attempt,
// success is a boolean: any transport error or unexpected status is a soft
// failure that is logged, never raised.
type Sender struct {
	url    string
	apiKey string
	client *http.Client
}

func NewSender(url, apiKey string) *Sender {
	return &Sender{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Send posts the payload and reports delivery success (status 200/201/202).
func (s *Sender) Send(ctx context.Context, payload Payload) bool {
	body, err := sonic.Marshal(payload)
	if err != nil {
		slog.Error("marshal webhook payload", "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		slog.Error("build webhook request", "error", err)
		return false
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
		req.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error("webhook delivery failed", "request_id", requestID, "error", err)
		return false
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		slog.Info("webhook delivered", "request_id", requestID, "status", resp.StatusCode)
		return true
	default:
		slog.Error("webhook rejected", "request_id", requestID, "status", resp.StatusCode)
		return false
	}
}
