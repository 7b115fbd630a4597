package dialog

import (
	"context"
	"log/slog"

	"github.com/freshauto/intakebot/stt"
	"github.com/freshauto/intakebot/types"
)

// AdvanceVoice processes one inbound voice message: gate by step, transcribe,
// run the text through grammar correction and feed it to the machine. Every
// failure turns into a user-facing message, never an error.
func (m *Machine) AdvanceVoice(ctx context.Context, session *types.Session, audio []byte, recognizer stt.Recognizer) string {
	if recognizer == nil || !recognizer.Ready() {
		return ModelLoadingMessage
	}
	if !stt.StepAllowsVoice(session.Step) {
		return VoiceStepMessage
	}

	text, err := recognizer.Transcribe(ctx, audio)
	if err != nil {
		slog.Error("speech recognition failed", "error", err)
		return RecognitionFailedMessage
	}
	if text == "" {
		return RecognitionFailedMessage
	}

	if m.grammar != nil {
		text = m.grammar.FixGrammar(ctx, text)
	}
	return m.Advance(ctx, session, text)
}
