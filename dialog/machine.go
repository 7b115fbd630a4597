// Package dialog implements the intake conversation state machine: a fixed
// sequence of steps collecting the client's name, phone, problem and
// proposed solution, with AI-assisted confirmation handling.
package dialog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/freshauto/intakebot/ai"
	"github.com/freshauto/intakebot/phone"
	"github.com/freshauto/intakebot/types"
	"github.com/freshauto/intakebot/webhook"
)

// problemTopic is the fixed topic passed to the problem summarizer.
const problemTopic = "Проблема клиента"

// Classifier maps a confirmation reply to YES, NO or UNCLEAR.
type Classifier interface {
	ClassifyConfirmation(ctx context.Context, text string) types.Label
}

// Summarizer builds and refines problem and solution summaries.
type Summarizer interface {
	CreateProblem(ctx context.Context, topic, details string) string
	UpdateProblem(ctx context.Context, existing, correction string) string
	CreateSolution(ctx context.Context, solution string) string
	UpdateSolution(ctx context.Context, existing, correction string) string
}

// Sink receives the finalized submission. Send reports delivery success but
// must never fail loudly.
type Sink interface {
	Send(ctx context.Context, payload webhook.Payload) bool
}

// GrammarFixer corrects recognized speech before it enters the machine.
type GrammarFixer interface {
	FixGrammar(ctx context.Context, text string) string
}

// TopicGuard reports whether free text is unrelated to the intake dialog.
type TopicGuard interface {
	IsOffTopic(ctx context.Context, text string) bool
}

// Machine advances sessions through the intake steps. It is stateless apart
// from the session record handed to Advance and never returns an error for
// malformed input: the reply is always a corrective prompt.
type Machine struct {
	classifier Classifier
	summaries  Summarizer
	sink       Sink
	grammar    GrammarFixer
	topics     TopicGuard
}

func NewMachine(classifier Classifier, summaries Summarizer, sink Sink, grammar GrammarFixer, topics TopicGuard) *Machine {
	return &Machine{
		classifier: classifier,
		summaries:  summaries,
		sink:       sink,
		grammar:    grammar,
		topics:     topics,
	}
}

// Advance processes one inbound text message for the session and returns the
// outbound reply. The session is mutated in place.
func (m *Machine) Advance(ctx context.Context, session *types.Session, input string) string {
	input = strings.TrimSpace(input)
	lower := strings.ToLower(input)

	switch {
	case input == "/start":
		return m.start(session)
	case input == "/help":
		if help, ok := StepHelp[session.Step]; ok {
			return help
		}
		return HelpMessage
	}
	if _, ok := cancelCommands[lower]; ok {
		session.Reset()
		return CancelMessage
	}
	if session.Step == types.StepIdle {
		return m.start(session)
	}

	switch session.Step {
	case types.StepAwaitingName:
		return m.handleName(session, input)
	case types.StepAwaitingPhone:
		return m.handlePhone(session, input)
	case types.StepAwaitingDetails:
		return m.handleDetails(ctx, session, input)
	case types.StepAwaitingConfirmation:
		return m.handleConfirmation(ctx, session, input)
	case types.StepAwaitingSolution:
		return m.handleSolution(ctx, session, input)
	case types.StepAwaitingSolutionConfirmation:
		return m.handleSolutionConfirmation(ctx, session, input)
	default:
		return m.start(session)
	}
}

func (m *Machine) start(session *types.Session) string {
	session.Reset()
	session.Step = types.StepAwaitingName
	return WelcomeMessage
}

func (m *Machine) handleName(session *types.Session, input string) string {
	if len(strings.Fields(input)) < 2 {
		return NameRequest
	}
	session.ClientName = input
	session.Step = types.StepAwaitingPhone
	return PhoneRequest
}

func (m *Machine) handlePhone(session *types.Session, input string) string {
	if !phone.Validate(input) {
		return PhoneError
	}
	session.ClientPhone = phone.Format(input)
	session.Step = types.StepAwaitingDetails
	return TopicRequest
}

func (m *Machine) handleDetails(ctx context.Context, session *types.Session, input string) string {
	if m.topics != nil && m.topics.IsOffTopic(ctx, input) {
		return ai.OffTopicResponse
	}
	session.ClientDetails = input
	session.ProblemSummary = m.summaries.CreateProblem(ctx, problemTopic, input)
	session.Step = types.StepAwaitingConfirmation
	return fmt.Sprintf(ConfirmationTemplate, session.ProblemSummary)
}

func (m *Machine) handleConfirmation(ctx context.Context, session *types.Session, input string) string {
	switch m.resolveConfirmation(ctx, input) {
	case types.LabelYes:
		session.Step = types.StepAwaitingSolution
		return SolutionRequest
	case types.LabelNo:
		session.Step = types.StepAwaitingDetails
		return RedoPrefix + TopicRequest
	default:
		session.ProblemSummary = m.summaries.UpdateProblem(ctx, session.ProblemSummary, input)
		return fmt.Sprintf(ConfirmationUpdateTemplate, session.ProblemSummary)
	}
}

func (m *Machine) handleSolution(ctx context.Context, session *types.Session, input string) string {
	if m.topics != nil && m.topics.IsOffTopic(ctx, input) {
		return ai.OffTopicResponse
	}
	session.ClientSolution = input
	session.SolutionSummary = m.summaries.CreateSolution(ctx, input)
	session.Step = types.StepAwaitingSolutionConfirmation
	return fmt.Sprintf(SolutionConfirmationTemplate, session.SolutionSummary)
}

func (m *Machine) handleSolutionConfirmation(ctx context.Context, session *types.Session, input string) string {
	switch m.resolveConfirmation(ctx, input) {
	case types.LabelYes:
		payload := webhook.FormatClientData(
			session.ClientName,
			session.ClientPhone,
			session.ClientDetails,
			session.ClientSolution,
		)
		delivered := m.sink.Send(ctx, payload)
		if !delivered {
			// The user still sees the success message; delivery failure is
			// an operational concern, not a dialog outcome.
			slog.Error("submission delivery failed", "name", payload.Name, "surname", payload.Surname)
		}
		session.Reset()
		return SuccessMessage
	case types.LabelNo:
		session.Step = types.StepAwaitingSolution
		return RedoPrefix + SolutionRequest
	default:
		session.SolutionSummary = m.summaries.UpdateSolution(ctx, session.SolutionSummary, input)
		return fmt.Sprintf(SolutionConfirmationUpdateTemplate, session.SolutionSummary)
	}
}

// resolveConfirmation applies the tie-break rule: an exact match against the
// literal word sets takes priority over the classifier, positive checked
// before negative. The classifier only decides when no literal matches.
func (m *Machine) resolveConfirmation(ctx context.Context, input string) types.Label {
	lower := strings.ToLower(strings.TrimSpace(input))
	if _, ok := positiveAnswers[lower]; ok {
		return types.LabelYes
	}
	if _, ok := negativeAnswers[lower]; ok {
		return types.LabelNo
	}
	return m.classifier.ClassifyConfirmation(ctx, input)
}
