package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	SpawnX, SpawnY float64 // bottom-centre of the body at spawn
}

var Player = donburi.NewComponentType[PlayerData]()
