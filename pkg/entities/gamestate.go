package entities

// GameState is an application controller state. Game engines return the
// state the controller should transition to after a play session.
type GameState string

const (
	StateMainMenu   GameState = "MAIN_MENU"
	StateCasinoMenu GameState = "CASINO_MENU"
	StateGameMenu   GameState = "GAME_MENU"
	StateExit       GameState = "EXIT"
)

// GameType identifies one of the casino's games
type GameType string

const (
	GameSlots     GameType = "SLOTS"
	GameRoulette  GameType = "ROULETTE"
	GameBlackjack GameType = "BLACKJACK"
)
