package tmx

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/dunjo/internal/domain/entity"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="2" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="5">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="4" columns="4">
  <image source="tiles.png" width="64" height="16"/>
  <tile id="0" type="wall"/>
  <tile id="1" type="platform"/>
  <tile id="2">
   <properties>
    <property name="type" value="ladder"/>
   </properties>
  </tile>
  <tile id="3" type="key"/>
 </tileset>
 <layer id="1" name="Walls" width="4" height="2">
  <data encoding="csv">
0,0,2,0,
1,1,1,1
</data>
 </layer>
 <layer id="2" name="Back" width="4" height="2">
  <data encoding="csv">
0,3,0,0,
0,0,0,0
</data>
 </layer>
 <objectgroup id="3" name="Objects">
  <object id="1" type="spawn" x="4" y="4" width="8" height="8"/>
  <object id="2" name="slime" type="enemy" x="32" y="0" width="16" height="16">
   <properties>
    <property name="facingRight" type="bool" value="true"/>
   </properties>
  </object>
  <object id="3" type="roomTrigger" x="0" y="0" width="2" height="32"/>
  <object id="4" gid="4" x="48" y="16" width="16" height="16"/>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"levels/level1.tmx": {Data: []byte(testTMX)}}

	level, err := Load(fsys, "levels/level1.tmx")
	require.NoError(t, err)

	assert.Equal(t, "level1", level.Name)
	assert.Equal(t, 4, level.Width)
	assert.Equal(t, 2, level.Height)
	assert.Equal(t, 16, level.TileWidth)

	walls, ok := level.Layer("Walls")
	require.True(t, ok)
	assert.Equal(t, []int{0, 0, 2, 0, 1, 1, 1, 1}, walls.Data)

	assert.Equal(t, entity.TypeWall, level.TypeOf(1))
	assert.Equal(t, entity.TypePlatform, level.TypeOf(2))
	assert.Equal(t, entity.TypeLadder, level.TypeOf(3))
	assert.True(t, level.HasTileAt(r2.Vec{X: 24, Y: 8}, entity.TypeLadder))

	require.Len(t, level.Objects, 4)
	assert.Equal(t, entity.Object{Type: "spawn", X: 8, Y: 8, W: 8, H: 8}, level.Objects[0])
	assert.Equal(t, entity.Object{Type: "enemy", Name: "slime", X: 40, Y: 8, W: 16, H: 16, FacingRight: true},
		level.Objects[1])
	assert.Equal(t, entity.Object{Type: "roomTrigger", X: 1, Y: 16, W: 2, H: 32}, level.Objects[2])
	assert.Equal(t, entity.Object{Type: "key", X: 56, Y: 8, W: 16, H: 16}, level.Objects[3])
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(fstest.MapFS{}, "levels/none.tmx")
		assert.Error(t, err)
	})

	t.Run("untyped object", func(t *testing.T) {
		fsys := fstest.MapFS{"bad.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="16" tileheight="16">
 <objectgroup id="1" name="Objects">
  <object id="1" x="0" y="0" width="8" height="8"/>
 </objectgroup>
</map>
`)}}
		_, err := Load(fsys, "bad.tmx")
		assert.Error(t, err)
	})
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(testTMX)},
		"levels/a.tmx": {Data: []byte(testTMX)},
	}

	levels, names, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAll(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}
