package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFeed(t *testing.T) {
	t.Run("keeps the newest entries first and bounded", func(t *testing.T) {
		feed := NewFeed(3, nil)
		for i := 0; i < 5; i++ {
			feed.Notify(info("t", fmt.Sprintf("m%d", i)))
		}

		recent := feed.Recent()
		require.Len(t, recent, 3)
		assert.Equal(t, "m4", recent[0].Message)
		assert.Equal(t, "m2", recent[2].Message)
		assert.False(t, recent[0].At.IsZero())
		assert.Equal(t, VariantDefault, recent[0].Variant)
	})

	t.Run("logs failures at warn level", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		feed := NewFeed(0, zap.New(core))
		feed.Notify(failure("Não foi possível excluir o contato."))
		feed.Notify(Notification{Title: "Contato excluído", Message: "ok"})

		entries := logs.All()
		require.Len(t, entries, 2)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	})
}

func TestMode(t *testing.T) {
	m := Creating()
	_, ok := m.OrderID()
	assert.False(t, ok)
	assert.Equal(t, "creating", m.String())

	m = Editing("p1")
	id, ok := m.OrderID()
	assert.True(t, ok)
	assert.Equal(t, "p1", id)
	assert.Equal(t, "editing:p1", m.String())
	assert.Equal(t, Mode{}, Creating())
}
