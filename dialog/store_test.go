package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freshauto/intakebot/types"
)

func TestStore(t *testing.T) {
	t.Run("first contact creates an idle session", func(t *testing.T) {
		store := NewStore()
		session := store.Get("chat-1")
		assert.Equal(t, types.StepIdle, session.Step)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("same conversation gets the same record", func(t *testing.T) {
		store := NewStore()
		first := store.Get("chat-1")
		first.ClientName = "Иван Петров"
		assert.Same(t, first, store.Get("chat-1"))
		assert.Equal(t, "Иван Петров", store.Get("chat-1").ClientName)
	})

	t.Run("conversations are independent", func(t *testing.T) {
		store := NewStore()
		store.Get("chat-1").ClientName = "Иван Петров"
		assert.Empty(t, store.Get("chat-2").ClientName)
		assert.Equal(t, 2, store.Len())
	})

	t.Run("delete removes the record", func(t *testing.T) {
		store := NewStore()
		store.Get("chat-1").ClientName = "Иван Петров"
		store.Delete("chat-1")
		assert.Empty(t, store.Get("chat-1").ClientName)
	})
}
