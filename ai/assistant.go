package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/freshauto/intakebot/types"
)

// Assistant exposes the three modes the dialog needs: an off-topic guard,
// strict YES/NO classification and a grammar-correction pass. Failures never
// propagate; each mode degrades to its documented fallback.
type Assistant struct {
	client Client
}

func NewAssistant(client Client) *Assistant {
	return &Assistant{client: client}
}

// IsOffTopic classifies whether text is unrelated to the intake dialog.
// The classification call is the authority; the keyword list is only the
// fallback when the service is unavailable.
func (a *Assistant) IsOffTopic(ctx context.Context, text string) bool {
	answer, err := a.client.Generate(ctx, offTopicSystemPrompt, nil, text)
	if err == nil {
		switch parseLabel(answer) {
		case types.LabelYes:
			return true
		case types.LabelNo:
			return false
		}
	} else {
		slog.Debug("off-topic classification failed, falling back to keywords", "error", err)
	}
	lower := strings.ToLower(text)
	for _, keyword := range offTopicKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// ClassifyConfirmation maps a confirmation reply to YES, NO or UNCLEAR.
// Any failure degrades to UNCLEAR so the dialog treats the reply as a
// refinement instead of surfacing an error.
func (a *Assistant) ClassifyConfirmation(ctx context.Context, text string) types.Label {
	answer, err := a.client.Generate(ctx, classifySystemPrompt, nil, text)
	if err != nil {
		slog.Debug("confirmation classification failed", "error", err)
		return types.LabelUnclear
	}
	return parseLabel(answer)
}

// FixGrammar corrects grammar in recognized speech without changing meaning.
// On failure the input is returned unchanged.
func (a *Assistant) FixGrammar(ctx context.Context, text string) string {
	prompt := fmt.Sprintf(grammarPromptTemplate, text)
	corrected, err := a.client.Generate(ctx, grammarSystemPrompt, nil, prompt)
	if err != nil || corrected == "" {
		slog.Debug("grammar correction failed", "error", err)
		return text
	}
	return corrected
}

// parseLabel reads the literal token the classification prompts demand.
// The YES check runs before NO since "NO" is not a prefix of "YES" but
// model chatter may follow the token.
func parseLabel(answer string) types.Label {
	upper := strings.ToUpper(strings.TrimSpace(answer))
	switch {
	case strings.HasPrefix(upper, "YES"):
		return types.LabelYes
	case strings.HasPrefix(upper, "NO"):
		return types.LabelNo
	default:
		return types.LabelUnclear
	}
}
