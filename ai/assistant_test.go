package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"

	"github.com/freshauto/intakebot/types"
)

type fakeClient struct {
	answer string
	err    error
	calls  int
}

func (f *fakeClient) Generate(ctx context.Context, system string, history []*schema.Message, user string) (string, error) {
	f.calls++
	return f.answer, f.err
}

func TestClassifyConfirmation(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		err    error
		want   types.Label
	}{
		{name: "yes token", answer: "YES", want: types.LabelYes},
		{name: "yes lowercase with trailing chatter", answer: "yes, клиент согласен", want: types.LabelYes},
		{name: "no token", answer: "NO", want: types.LabelNo},
		{name: "no with punctuation", answer: "No.", want: types.LabelNo},
		{name: "unclear free text", answer: "клиент уточняет детали", want: types.LabelUnclear},
		{name: "empty answer", answer: "", want: types.LabelUnclear},
		{name: "service failure", err: errors.New("timeout"), want: types.LabelUnclear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAssistant(&fakeClient{answer: tt.answer, err: tt.err})
			assert.Equal(t, tt.want, a.ClassifyConfirmation(context.Background(), "да"))
		})
	}
}

func TestFixGrammar(t *testing.T) {
	t.Run("corrected text returned", func(t *testing.T) {
		a := NewAssistant(&fakeClient{answer: "сломалась машина"})
		got := a.FixGrammar(context.Background(), "сломалось машина")
		assert.Equal(t, "сломалась машина", got)
	})

	t.Run("failure returns input unchanged", func(t *testing.T) {
		a := NewAssistant(&fakeClient{err: errors.New("unavailable")})
		got := a.FixGrammar(context.Background(), "сломалось машина")
		assert.Equal(t, "сломалось машина", got)
	})

	t.Run("empty answer returns input unchanged", func(t *testing.T) {
		a := NewAssistant(&fakeClient{answer: ""})
		got := a.FixGrammar(context.Background(), "текст")
		assert.Equal(t, "текст", got)
	})
}

func TestIsOffTopic(t *testing.T) {
	t.Run("classifier yes", func(t *testing.T) {
		a := NewAssistant(&fakeClient{answer: "YES"})
		assert.True(t, a.IsOffTopic(context.Background(), "какая сегодня погода?"))
	})

	t.Run("classifier no overrides keywords", func(t *testing.T) {
		a := NewAssistant(&fakeClient{answer: "NO"})
		assert.False(t, a.IsOffTopic(context.Background(), "во время дождя машина не заводится"))
	})

	t.Run("failure falls back to keywords", func(t *testing.T) {
		a := NewAssistant(&fakeClient{err: errors.New("unavailable")})
		assert.True(t, a.IsOffTopic(context.Background(), "расскажи анекдот"))
		assert.False(t, a.IsOffTopic(context.Background(), "сломалась коробка передач"))
	})
}
