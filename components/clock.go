package components

import "github.com/yohamta/donburi"

// ClockData is written by the host before every tick.
type ClockData struct {
	Delta   float64 // Seconds since the previous tick
	Elapsed float64 // Sum of all deltas
	Tick    int
}

var Clock = donburi.NewComponentType[ClockData]()
