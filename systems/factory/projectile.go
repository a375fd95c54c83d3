package factory

import (
	"github.com/automoto/platproto/archetypes"
	"github.com/automoto/platproto/assets"
	"github.com/automoto/platproto/components"
	cfg "github.com/automoto/platproto/config"
	"github.com/automoto/platproto/shared/gamemath"
	"github.com/automoto/platproto/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile centred on (x, y) travelling along
// (dirX, dirY) at speed pixels per tick, with its sprite oriented to match.
func CreateProjectile(ecs *ecs.ECS, x, y, dirX, dirY, speed float64) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	w, h := cfg.Projectile.Width, cfg.Projectile.Height
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvProjectile)
	obj.Data = projectile
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	vx, vy := gamemath.ProjectileVelocity(dirX, dirY, speed)
	components.Projectile.SetValue(projectile, components.ProjectileData{VelocityX: vx, VelocityY: vy})

	rotation, flip := gamemath.ProjectileOrientation(dirX, dirY)
	img := assets.GetProjectileImage()
	components.Sprite.SetValue(projectile, components.SpriteData{
		Image:    img,
		Rotation: rotation,
		FlipX:    flip,
		PivotX:   float64(img.Bounds().Dx()) / 2,
		PivotY:   float64(img.Bounds().Dy()) / 2,
	})

	components.Fade.SetValue(projectile, components.FadeData{
		Tween: gween.New(0, 1, cfg.Projectile.FadeSeconds, ease.OutQuad),
	})

	return projectile
}
