package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Write(Record{Frame: 1, Body: "player", X: 8, Y: 44, State: "Grounded"}))
	require.NoError(t, w.Write(
		Record{Frame: 2, Body: "player", X: 10, Y: 44, VX: 2, State: "Grounded"},
		Record{Frame: 2, Body: "enemy-1", X: 41, Y: 8, Collided: true, HitCol: 3, HitRow: 1, NormalY: -1, Depth: 1},
	))
	assert.Equal(t, 3, w.Count())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "frame,body,x,y"))

	records, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "enemy-1", records[2].Body)
	assert.True(t, records[2].Collided)
	assert.Equal(t, -1.0, records[2].NormalY)
}

func TestWriter_Nil(t *testing.T) {
	w := NewWriter(nil)
	assert.Nil(t, w)
	assert.NoError(t, w.Write(Record{Frame: 1}))
	assert.Equal(t, 0, w.Count())
}
