package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/dunjo/internal/domain/entity"
)

func TestNewTileMap(t *testing.T) {
	t.Run("default layer", func(t *testing.T) {
		m, err := NewTileMap(createTestLevel([]string{"#."}), "")
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultCollisionLayer, m.CollisionLayer())
		assert.Equal(t, entity.TileWall, m.Grid().At(0, 0).Type)
		assert.Equal(t, 0, m.Version())
	})

	t.Run("missing layer is fatal", func(t *testing.T) {
		_, err := NewTileMap(createTestLevel([]string{"#."}), "Collision")
		assert.ErrorIs(t, err, ErrMissingCollisionLayer)
	})
}

func TestTileMap_SetCollisionAt(t *testing.T) {
	m := createTestTileMap([]string{"...", "=##"})
	before := m.Grid()

	require.NoError(t, m.SetCollisionAt(0, 0, entity.TileWall))
	assert.Equal(t, entity.TileWall, m.Grid().At(0, 0).Type)
	assert.NotSame(t, before, m.Grid())
	assert.Nil(t, before.At(0, 0))
	assert.Equal(t, 1, m.Version())

	require.NoError(t, m.SetCollisionAt(1, 0, entity.TileOneWay))
	assert.Equal(t, entity.TileOneWay, m.Grid().At(1, 0).Type)

	require.NoError(t, m.SetCollisionAt(1, 1, entity.TileEmpty))
	assert.Nil(t, m.Grid().At(1, 1))
	assert.Equal(t, 3, m.Version())

	err := m.SetCollisionAt(5, 0, entity.TileWall)
	assert.ErrorIs(t, err, ErrCellOutOfRange)
	assert.Equal(t, 3, m.Version())
}

func TestTileMap_SetCollisionAt_NoTile(t *testing.T) {
	level := createTestLevel([]string{"#."})
	level.Types = map[int]string{1: entity.TypeWall}
	m, err := NewTileMap(level, "Walls")
	require.NoError(t, err)

	err = m.SetCollisionAt(1, 0, entity.TileOneWay)
	assert.ErrorIs(t, err, ErrNoTileForType)
	assert.Nil(t, m.Grid().At(1, 0))
}

func TestTileMap_SetTileAt(t *testing.T) {
	m := createTestTileMap([]string{"..", ".."}, "..", "..")

	require.NoError(t, m.SetTileAt(1, 1, 3, "Back"))
	assert.Equal(t, []string{entity.TypeLadder}, m.TilesAt(vec(24, 24)))
	assert.Nil(t, m.Grid().At(1, 1))

	assert.ErrorIs(t, m.SetTileAt(-1, 0, 1, "Walls"), ErrCellOutOfRange)
	assert.Error(t, m.SetTileAt(0, 0, 1, "Missing"))
}

func TestTileMap_GIDForType(t *testing.T) {
	level := createTestLevel([]string{"#"})
	level.Types[9] = entity.TypeWall
	m, err := NewTileMap(level, "Walls")
	require.NoError(t, err)

	gid, err := m.GIDForType(entity.TypeWall)
	require.NoError(t, err)
	assert.Equal(t, 1, gid)

	_, err = m.GIDForType("door")
	assert.ErrorIs(t, err, ErrNoTileForType)
}

func TestTileMap_TilesOfType(t *testing.T) {
	m := createTestTileMap(
		[]string{"B.B", "###"},
		".B.", "...",
	)

	refs := m.TilesOfType(entity.TypeBlock)
	assert.Equal(t, []TileRef{
		{Layer: "Walls", Col: 0, Row: 0, GID: 5},
		{Layer: "Walls", Col: 2, Row: 0, GID: 5},
		{Layer: "Back", Col: 1, Row: 0, GID: 5},
	}, refs)
	assert.Empty(t, m.TilesOfType(entity.TypeChain))
}

func TestTileMap_DestroyTilesOfType(t *testing.T) {
	m := createTestTileMap([]string{"B.B#", "####"})

	n, err := m.DestroyTilesOfType(entity.TypeBlock)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, m.Version())
	assert.Nil(t, m.Grid().At(0, 0))
	assert.Nil(t, m.Grid().At(2, 0))
	assert.NotNil(t, m.Grid().At(3, 0))

	// Nothing left: no rebuild
	n, err = m.DestroyTilesOfType(entity.TypeBlock)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 1, m.Version())
}

func TestTileMap_DestroyTilesOfTypeIn(t *testing.T) {
	m := createTestTileMap([]string{"BBBB"})

	// Centers are at 8, 24, 40, 56
	n, err := m.DestroyTilesOfTypeIn(entity.TypeBlock, 20, 40)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NotNil(t, m.Grid().At(0, 0))
	assert.Nil(t, m.Grid().At(1, 0))
	assert.Nil(t, m.Grid().At(2, 0))
	assert.NotNil(t, m.Grid().At(3, 0))
}

func TestTileMap_Reload(t *testing.T) {
	m := createTestTileMap([]string{"#.", ".."})

	require.NoError(t, m.Reload(createTestLevel([]string{".#", ".."})))
	assert.Nil(t, m.Grid().At(0, 0))
	assert.NotNil(t, m.Grid().At(1, 0))

	before := m.Grid()
	err := m.Reload(createTestLevel([]string{"###"}))
	assert.ErrorIs(t, err, ErrGridSizeChanged)
	assert.Same(t, before, m.Grid())
	assert.Equal(t, 2, m.Level().Width)
}

func TestTileMap_TilesAt(t *testing.T) {
	m := createTestTileMap([]string{"#^"}, "CH")

	assert.Equal(t, []string{entity.TypeWall, entity.TypeChain}, m.TilesAt(vec(8, 8)))
	assert.Equal(t, []string{entity.TypeSpikes, entity.TypeLadder}, m.TilesAt(vec(24, 8)))
	assert.Nil(t, m.TilesAt(vec(40, 8)))
	assert.True(t, m.HasTileAt(vec(24, 8), entity.TypeChain, entity.TypeLadder))
}
