package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/duel/common"
)

type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerBoss
)

// ProjectileSize is the edge of the square hit box centred on Pos.
const ProjectileSize = 10

type Projectile struct {
	Pos   cp.Vector
	Vel   cp.Vector
	Life  int
	Owner Owner
}

func (p *Projectile) Box() cp.BB {
	half := ProjectileSize / 2.0
	return common.NewRect(p.Pos.X-half, p.Pos.Y-half, ProjectileSize, ProjectileSize)
}
