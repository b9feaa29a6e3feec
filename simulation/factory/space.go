package factory

import (
	"github.com/automoto/squall/archetypes"
	"github.com/automoto/squall/components"
	"github.com/automoto/squall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateGround adds the band rain collides with to the collision space.
func CreateGround(w donburi.World, x, y, width, height float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvGround)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = ground

	components.Object.SetValue(ground, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return ground
}
