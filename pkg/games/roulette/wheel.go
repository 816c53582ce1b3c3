package roulette

import "github.com/marczelloo/kasyno/pkg/entities"

// wheelOrder is the physical European wheel layout. The order only
// matters for the spin animation, never for settlement.
var wheelOrder = []int{
	0, 32, 15, 19, 4, 21, 2, 25,
	17, 34, 6, 27, 13, 36, 11, 30,
	8, 23, 10, 5, 24, 16, 33, 1,
	20, 14, 31, 9, 22, 18, 29, 7,
	28, 12, 35, 3, 26,
}

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true,
	12: true, 14: true, 16: true, 18: true, 19: true,
	21: true, 23: true, 25: true, 27: true, 30: true,
	32: true, 34: true, 36: true,
}

// ColorForNumber returns the fixed color of a pocket number
func ColorForNumber(number int) entities.TileColor {
	if number == 0 {
		return entities.TileGreen
	}
	if redNumbers[number] {
		return entities.TileRed
	}
	return entities.TileBlack
}

// NewWheel builds the 37 tiles in physical wheel order
func NewWheel() []entities.RouletteTile {
	wheel := make([]entities.RouletteTile, 0, len(wheelOrder))
	for _, number := range wheelOrder {
		wheel = append(wheel, entities.RouletteTile{
			Number: number,
			Color:  ColorForNumber(number),
		})
	}
	return wheel
}
