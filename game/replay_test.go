package game_test

import (
	"bytes"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/plus3/slingshot/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayRecordsFrames(t *testing.T) {
	g := startedGame(t, powerTwo)

	var buf bytes.Buffer
	recorder := game.NewRecorder(&buf)

	shoot(g, cp.Vector{X: 600, Y: 480})
	require.NoError(t, recorder.Record(g.Snapshot(), g.Update(1)))
	require.NoError(t, recorder.Record(g.Snapshot(), g.Update(0.5)))
	assert.Equal(t, 2, recorder.Frames())

	frames, err := game.ReadReplay(&buf)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	assert.Equal(t, []string{
		"projectile-launched v=(500.0,-950.0)",
		"target-destroyed round=1 slot=0",
	}, frames[0].Events)
	assert.Empty(t, frames[1].Events)
	assert.Len(t, frames[0].Snapshot.Targets, 3, "snapshot taken before the step")
	assert.Len(t, frames[1].Snapshot.Targets, 2)
	assert.Equal(t, game.Playing, frames[1].Snapshot.Mode)
}

func TestReadReplayTruncated(t *testing.T) {
	g := startedGame(t)

	var buf bytes.Buffer
	require.NoError(t, game.NewRecorder(&buf).Record(g.Snapshot(), nil))
	data := buf.Bytes()[:buf.Len()-3]

	frames, err := game.ReadReplay(bytes.NewReader(data))
	assert.Error(t, err)
	assert.Empty(t, frames)
}
