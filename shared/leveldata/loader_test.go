package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="spawn">
  <object id="1" name="marker" x="8" y="8"/>
  <object id="2" name="playerspawn" x="64" y="128"/>
 </objectgroup>
 <objectgroup id="2" name="collision">
  <object id="3" name="floor" x="0" y="128" width="320" height="32"/>
  <object id="4" name="ledge" x="200" y="64" width="64" height="16"/>
 </objectgroup>
</map>
`

const bareMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="spawn">
  <object id="1" name="somethingelse" x="8" y="8"/>
 </objectgroup>
</map>
`

const emptyMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0" nextlayerid="1" nextobjectid="1">
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/full.tmx":  {Data: []byte(fullMap)},
		"levels/bare.tmx":  {Data: []byte(bareMap)},
		"levels/empty.tmx": {Data: []byte(emptyMap)},
	}
}

func TestLoad_SpawnAndColliders(t *testing.T) {
	level, err := Load(testFS(), "levels/full.tmx")
	require.NoError(t, err)

	assert.Equal(t, "full", level.Name)
	assert.Equal(t, 320, level.MapWidth)
	assert.Equal(t, 160, level.MapHeight)
	assert.Equal(t, 32, level.TileWidth)

	assert.True(t, level.SpawnFound)
	assert.Equal(t, SpawnPoint{X: 64, Y: 128}, level.Spawn)

	require.True(t, level.CollisionFound)
	require.Len(t, level.Colliders, 2)
	assert.Equal(t, CollisionRect{X: 0, Y: 128, W: 320, H: 32, Name: "floor"}, level.Colliders[0])
	assert.Equal(t, CollisionRect{X: 200, Y: 64, W: 64, H: 16, Name: "ledge"}, level.Colliders[1])
}

func TestLoad_MissingSpawnObjectFallsBack(t *testing.T) {
	level, err := Load(testFS(), "levels/bare.tmx")
	require.NoError(t, err)

	assert.False(t, level.SpawnFound)
	assert.Equal(t, DefaultSpawn, level.Spawn)
	assert.False(t, level.CollisionFound)
	assert.Empty(t, level.Colliders)
}

func TestLoad_MissingLayersFallBack(t *testing.T) {
	level, err := Load(testFS(), "levels/empty.tmx")
	require.NoError(t, err)

	assert.False(t, level.SpawnFound)
	assert.Equal(t, DefaultSpawn, level.Spawn)
	assert.False(t, level.CollisionFound)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(testFS(), "levels/nope.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "levels/nope.tmx")
}

func TestNameFromPath(t *testing.T) {
	assert.Equal(t, "arena", NameFromPath("arena.tmx"))
	assert.Equal(t, "arena", NameFromPath("levels/arena.tmx"))
	assert.Equal(t, "notes.txt", NameFromPath("notes.txt"))
}

func TestLoad_NameMatchesFromMap(t *testing.T) {
	level, err := Load(testFS(), "levels/full.tmx")
	require.NoError(t, err)
	assert.Equal(t, NameFromPath("full.tmx"), level.Name)
}

func TestLoadAll(t *testing.T) {
	levels, names, err := LoadAll(testFS(), "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"bare", "empty", "full"}, names)
	assert.Len(t, levels, 3)
	assert.True(t, levels["full"].SpawnFound)

	_, _, err = LoadAll(testFS(), "missing")
	assert.Error(t, err)
}
