package scenes

import (
	"testing"

	"github.com/automoto/platproto/shared/leveldata"
	"github.com/automoto/platproto/shared/variants"
	"github.com/stretchr/testify/assert"
)

func TestVariantDetails(t *testing.T) {
	v := &variants.Variant{
		Level:   "arena.tmx",
		Attacks: variants.AttackSpec{Primary: true, Secondary: true},
		Spawner: variants.SpawnerSpec{Enabled: true, IntervalMs: 500},
	}
	assert.Equal(t, "platformer, two attacks, projectiles every 500ms | arena.tmx", variantDetails(v))

	v = &variants.Variant{Level: "yard.tmx", TopDown: true, Attacks: variants.AttackSpec{Secondary: true}}
	assert.Equal(t, "top-down, one attack | yard.tmx", variantDetails(v))
}

func TestSpawnInside(t *testing.T) {
	// The fallback spawn sits far outside a small map.
	got := spawnInside(leveldata.SpawnPoint{X: 400, Y: 1300}, 320, 240)
	assert.Equal(t, leveldata.SpawnPoint{X: 320 - 24, Y: 239}, got)

	got = spawnInside(leveldata.SpawnPoint{X: 0, Y: 0}, 640, 480)
	assert.Equal(t, leveldata.SpawnPoint{X: 24, Y: 64}, got)

	inside := leveldata.SpawnPoint{X: 200, Y: 300}
	assert.Equal(t, inside, spawnInside(inside, 640, 480))
}
