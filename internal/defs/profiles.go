// internal/defs/profiles.go
package defs

import "go-arena-survival/internal/component"

// ObstacleRequest описывает, сколько объектов одного вида и размера
// генератор карты попытается разместить.
type ObstacleRequest struct {
	Type  component.ObstacleType
	W, H  float64
	Count int
}

// Profile — именованный профиль плотности препятствий.
type Profile struct {
	Name      string
	Weight    int
	Obstacles []ObstacleRequest
}

// Profiles lists every density profile a round can pick from. Equal weights
// keep the choice uniform.
var Profiles = []Profile{
	{
		Name:   "sparse",
		Weight: 1,
		Obstacles: []ObstacleRequest{
			{Type: component.ObstacleFence, W: 160, H: 24, Count: 3},
			{Type: component.ObstacleTree, W: 64, H: 64, Count: 5},
			{Type: component.ObstacleLake, W: 96, H: 64, Count: 1},
			{Type: component.ObstacleFlower, W: 32, H: 32, Count: 4},
		},
	},
	{
		Name:   "forest",
		Weight: 1,
		Obstacles: []ObstacleRequest{
			{Type: component.ObstacleTree, W: 64, H: 64, Count: 12},
			{Type: component.ObstacleFence, W: 128, H: 24, Count: 2},
			{Type: component.ObstacleLake, W: 96, H: 64, Count: 1},
			{Type: component.ObstacleFlower, W: 32, H: 32, Count: 6},
		},
	},
	{
		Name:   "open",
		Weight: 1,
		Obstacles: []ObstacleRequest{
			{Type: component.ObstacleTree, W: 64, H: 64, Count: 2},
			{Type: component.ObstacleLake, W: 128, H: 80, Count: 1},
			{Type: component.ObstacleFlower, W: 32, H: 32, Count: 10},
		},
	},
}

// ProfileByName finds a profile by its name.
func ProfileByName(name string) (Profile, bool) {
	for _, p := range Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Weights returns the profile weights in table order.
func Weights(profiles []Profile) []int {
	weights := make([]int, len(profiles))
	for i, p := range profiles {
		weights[i] = p.Weight
	}
	return weights
}
