package components

import "github.com/yohamta/donburi"

type StatsData struct {
	ShotsFired       int
	Hits             int
	Expired          int
	TargetsDestroyed int
	DamageDealt      float64
}

var Stats = donburi.NewComponentType[StatsData]()
