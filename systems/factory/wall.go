package factory

import (
	"github.com/automoto/platproto/archetypes"
	"github.com/automoto/platproto/components"
	"github.com/automoto/platproto/shared/leveldata"
	"github.com/automoto/platproto/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	// boundsThickness is how far the invisible map walls extend outward.
	boundsThickness = 64
	// boundsInset pulls each wall one pixel inside the map. The space only
	// has cells over the map, so a wall lying wholly outside it is never
	// registered and nothing collides with it.
	boundsInset = 1
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64, extraTags ...string) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, append([]string{tags.ResolvSolid}, extraTags...)...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateColliders adds one static solid per collision rectangle.
func CreateColliders(ecs *ecs.ECS, rects []leveldata.CollisionRect) []*donburi.Entry {
	walls := make([]*donburi.Entry, 0, len(rects))
	for _, r := range rects {
		walls = append(walls, CreateWall(ecs, r.X, r.Y, r.W, r.H))
	}
	return walls
}

// CreateWorldBounds walls off the four edges of a width x height map so
// bodies cannot leave it. The bottom wall doubles as ground.
func CreateWorldBounds(ecs *ecs.ECS, width, height float64) {
	t, in := float64(boundsThickness), float64(boundsInset)
	CreateWall(ecs, -t, -t+in, width+2*t, t, tags.ResolvBounds)     // top
	CreateWall(ecs, -t, height-in, width+2*t, t, tags.ResolvBounds) // bottom
	CreateWall(ecs, -t+in, 0, t, height, tags.ResolvBounds)         // left
	CreateWall(ecs, width-in, 0, t, height, tags.ResolvBounds)      // right
}
