// Package summary builds and iteratively refines short restatements of the
// client's problem and proposed solution. Text synthesis is delegated to the
// text-intelligence service; every operation has a deterministic fallback so
// an unavailable service never breaks the dialog.
package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/freshauto/intakebot/ai"
)

const createProblemPrompt = `Создай краткое резюме проблемы клиента на основе следующей информации:

Тема: %s
Детали: %s

Резюме должно быть:
- Кратким (1-2 предложения)
- Использовать ключевые слова клиента
- Быть понятным и четким
- Не добавлять лишней информации
- Сохранять грамматическую правильность

Верни только резюме без дополнительных комментариев.`

const updateProblemPrompt = `Обнови резюме проблемы на основе уточнения клиента:

Текущее резюме: %s
Уточнение клиента: %s

Создай новое резюме, которое:
- Учитывает уточнение клиента
- Сохраняет ключевые моменты
- Краткое и понятное
- Использует слова клиента

Верни только обновленное резюме без дополнительных комментариев.`

const createSolutionPrompt = `Создай краткое резюме предложения решения клиента:

Предложение: %s

Резюме должно быть:
- Кратким (1-2 предложения)
- Использовать ключевые слова клиента
- Быть понятным и четким
- Не добавлять лишней информации

Верни только резюме без дополнительных комментариев.`

const updateSolutionPrompt = `Обнови резюме предложения решения на основе уточнения клиента:

Текущее резюме: %s
Уточнение клиента: %s

Создай новое резюме, которое:
- Учитывает уточнение клиента
- Сохраняет ключевые моменты
- Краткое и понятное
- Использует слова клиента

Верни только обновленное резюме без дополнительных комментариев.`

// Accumulator produces and refines summaries via the text-intelligence
// client. It is stateless; the dialog owns the accumulated summary.
type Accumulator struct {
	client ai.Client
}

func NewAccumulator(client ai.Client) *Accumulator {
	return &Accumulator{client: client}
}

// CreateProblem restates the problem details in 1-2 sentences.
// Fallback: "{topic}: {first 100 chars of details}" plus "..." if truncated.
func (a *Accumulator) CreateProblem(ctx context.Context, topic, details string) string {
	out, err := a.generate(ctx, fmt.Sprintf(createProblemPrompt, topic, details))
	if err != nil {
		head, truncated := truncate(details, 100)
		return fmt.Sprintf("%s: %s%s", topic, head, ellipsis(truncated))
	}
	return out
}

// UpdateProblem folds a refinement into an existing problem summary.
// Fallback: "{existing} (уточнение: {first 50 chars of correction})".
func (a *Accumulator) UpdateProblem(ctx context.Context, existing, correction string) string {
	out, err := a.generate(ctx, fmt.Sprintf(updateProblemPrompt, existing, correction))
	if err != nil {
		head, _ := truncate(correction, 50)
		return fmt.Sprintf("%s (уточнение: %s)", existing, head)
	}
	return out
}

// CreateSolution restates the proposed solution in 1-2 sentences.
// Fallback: the first 100 chars of the solution text.
func (a *Accumulator) CreateSolution(ctx context.Context, solution string) string {
	out, err := a.generate(ctx, fmt.Sprintf(createSolutionPrompt, solution))
	if err != nil {
		head, truncated := truncate(solution, 100)
		return head + ellipsis(truncated)
	}
	return out
}

// UpdateSolution folds a refinement into an existing solution summary.
func (a *Accumulator) UpdateSolution(ctx context.Context, existing, correction string) string {
	out, err := a.generate(ctx, fmt.Sprintf(updateSolutionPrompt, existing, correction))
	if err != nil {
		head, _ := truncate(correction, 50)
		return fmt.Sprintf("%s (уточнение: %s)", existing, head)
	}
	return out
}

func (a *Accumulator) generate(ctx context.Context, prompt string) (string, error) {
	out, err := a.client.Generate(ctx, ai.SystemPrompt, nil, prompt)
	if err != nil {
		slog.Debug("summary generation failed, using fallback", "error", err)
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("empty summary returned")
	}
	return out, nil
}

// truncate cuts s to at most n characters, counting runes so Cyrillic text
// is not split mid-character.
func truncate(s string, n int) (string, bool) {
	runes := []rune(s)
	if len(runes) <= n {
		return s, false
	}
	return string(runes[:n]), true
}

func ellipsis(truncated bool) string {
	if truncated {
		return "..."
	}
	return ""
}
