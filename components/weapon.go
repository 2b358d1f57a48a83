package components

import "github.com/yohamta/donburi"

type WeaponData struct {
	Shots int
	Hits  int
	Tags  int // opponents defeated
}

var Weapon = donburi.NewComponentType[WeaponData]()
