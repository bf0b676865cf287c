package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Leaf   = donburi.NewTag().SetName("Leaf")
	Ash    = donburi.NewTag().SetName("Ash")
)
