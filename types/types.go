package types

// Step identifies the current stage of the intake dialog.
type Step string

const (
	StepIdle                         Step = "idle"
	StepAwaitingName                 Step = "awaiting_name"
	StepAwaitingPhone                Step = "awaiting_phone"
	StepAwaitingDetails              Step = "awaiting_details"
	StepAwaitingConfirmation         Step = "awaiting_confirmation"
	StepAwaitingSolution             Step = "awaiting_solution"
	StepAwaitingSolutionConfirmation Step = "awaiting_solution_confirmation"
)

// Label is the outcome of classifying a confirmation reply.
type Label string

const (
	LabelYes     Label = "YES"
	LabelNo      Label = "NO"
	LabelUnclear Label = "UNCLEAR"
)

// Session holds everything collected from one conversation. Exactly one
// session exists per conversation; the chat transport serializes access.
type Session struct {
	Step            Step   `json:"step"`
	ClientName      string `json:"client_name,omitempty"`
	ClientPhone     string `json:"client_phone,omitempty"`
	ClientDetails   string `json:"client_details,omitempty"`
	ProblemSummary  string `json:"problem_summary,omitempty"`
	ClientSolution  string `json:"client_solution,omitempty"`
	SolutionSummary string `json:"solution_summary,omitempty"`
}

// Reset clears all collected fields and returns the session to the idle step.
func (s *Session) Reset() {
	*s = Session{Step: StepIdle}
}
