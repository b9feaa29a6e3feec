package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the collision space holding the ground band
var Space = donburi.NewComponentType[resolv.Space]()

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
