package entities

// TileColor is the color of a roulette pocket
type TileColor string

const (
	TileRed   TileColor = "RED"
	TileBlack TileColor = "BLACK"
	TileGreen TileColor = "GREEN"
)

// RouletteTile is one numbered, colored pocket on the roulette wheel
type RouletteTile struct {
	Number int
	Color  TileColor
}
