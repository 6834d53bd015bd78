package game

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverIgnoresEverything(t *testing.T) {
	g, err := New(DefaultConfig())
	require.NoError(t, err)
	g.HandleInput(Start{})
	g.Update(0)

	g.setMode(Over)
	g.Update(0)
	before := g.Snapshot()

	for _, cmd := range []Command{Start{}, AimBegin{At: cp.Vector{X: 1}}, AimRelease{}, Reset{}} {
		assert.False(t, g.HandleInput(cmd), "%v", cmd)
	}
	assert.Empty(t, g.Update(1))
	assert.Equal(t, before, g.Snapshot())
}

func TestEventLogDrain(t *testing.T) {
	var log EventLog
	log.Emit(RoundCleared{Round: 1})
	log.Emit(RoundReset{Round: 2})

	assert.Equal(t, []Event{RoundCleared{Round: 1}, RoundReset{Round: 2}}, log.Drain())
	assert.Empty(t, log.Drain())
}
