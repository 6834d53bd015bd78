package main

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShots(t *testing.T) {
	shots, err := ParseShots(" 250,-475 > 0,0 ; 10.5,2>3,-4; ")
	require.NoError(t, err)
	assert.Equal(t, []Shot{
		{Press: cp.Vector{X: 250, Y: -475}, Release: cp.Vector{}},
		{Press: cp.Vector{X: 10.5, Y: 2}, Release: cp.Vector{X: 3, Y: -4}},
	}, shots)
}

func TestParseShotsEmpty(t *testing.T) {
	shots, err := ParseShots("")
	require.NoError(t, err)
	assert.Empty(t, shots)
}

func TestParseShotsErrors(t *testing.T) {
	cases := map[string]string{
		"missing arrow": "1,2 3,4",
		"missing comma": "1 2>3,4",
		"bad number":    "1,x>3,4",
		"bad release":   "1,2>3",
	}
	for name, script := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseShots(script)
			assert.Error(t, err)
		})
	}
}

func TestDefaultShotsParse(t *testing.T) {
	shots, err := ParseShots(defaultShots)
	require.NoError(t, err)
	assert.Len(t, shots, 3)
}
