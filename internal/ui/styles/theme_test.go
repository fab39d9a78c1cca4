package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	th, ok := Lookup("Tokyo-Night ")
	assert.True(t, ok)
	assert.Equal(t, TokyoNight.Name, th.Name)

	_, ok = Lookup("solarized")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"lavender", "tokyo-night"}, Names())
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 40, ContentWidth(40))
	assert.Equal(t, MaxWidth, ContentWidth(200))
}

func TestCompletedRowsAreStruckThrough(t *testing.T) {
	s := NewStyles(Lavender)
	assert.True(t, s.TaskCompleted.GetStrikethrough())
	assert.False(t, s.TaskPending.GetStrikethrough())
	assert.Equal(t, Lavender.CompletedText, s.TaskCompleted.GetForeground())
}
