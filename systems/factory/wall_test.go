package factory

import (
	"testing"

	"github.com/automoto/platproto/components"
	"github.com/automoto/platproto/shared/leveldata"
	"github.com/automoto/platproto/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestCreateColliders_OneSolidPerRect(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	space := components.Space.Get(CreateSpace(w, 640, 480, 16, 16))

	rects := []leveldata.CollisionRect{
		{X: 0, Y: 448, W: 640, H: 32, Name: "floor"},
		{X: 200, Y: 300, W: 64, H: 16, Name: "ledge"},
	}
	walls := CreateColliders(w, rects)

	require.Len(t, walls, 2)
	require.Len(t, space.Objects(), 2)
	for i, wall := range walls {
		obj := components.Object.Get(wall)
		assert.Equal(t, rects[i].X, obj.X)
		assert.Equal(t, rects[i].Y, obj.Y)
		assert.Equal(t, rects[i].W, obj.W)
		assert.Equal(t, rects[i].H, obj.H)
		assert.True(t, obj.HasTags(tags.ResolvSolid))
		assert.False(t, obj.HasTags(tags.ResolvBounds))
		assert.True(t, wall.HasComponent(tags.Wall))
	}
}

func TestCreateColliders_NoRects(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	space := components.Space.Get(CreateSpace(w, 640, 480, 16, 16))

	assert.Empty(t, CreateColliders(w, nil))
	assert.Empty(t, space.Objects())
}

func TestCreateWorldBounds_WallsOverlapMapEdge(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())
	space := components.Space.Get(CreateSpace(w, 640, 480, 16, 16))

	CreateWorldBounds(w, 640, 480)

	objects := space.Objects()
	require.Len(t, objects, 4)
	for _, obj := range objects {
		assert.True(t, obj.HasTags(tags.ResolvSolid))
		assert.True(t, obj.HasTags(tags.ResolvBounds))
		// Every wall reaches one pixel into the map so the space has a
		// cell for it.
		assert.True(t, obj.X+obj.W > 0 && obj.X < 640 && obj.Y+obj.H > 0 && obj.Y < 480,
			"wall at (%v, %v) lies outside the map", obj.X, obj.Y)
	}
}
