// Package casino implements the application state machine that ties the
// menus, the game engines and the persistence layers together.
package casino

import (
	"context"
	"fmt"

	"github.com/marczelloo/kasyno/internal/logging"
	"github.com/marczelloo/kasyno/pkg/entities"
	"github.com/marczelloo/kasyno/pkg/games"
	"github.com/marczelloo/kasyno/pkg/repositories/history"
	"github.com/marczelloo/kasyno/pkg/repositories/leaderboard"
	"github.com/marczelloo/kasyno/pkg/rng"
	"github.com/marczelloo/kasyno/pkg/services/statistics"
	"github.com/marczelloo/kasyno/pkg/ui"
)

// Starting balance range for freshly created players
const (
	minStartBalance = 5000
	maxStartBalance = 10000
)

// Main menu options
const (
	mainOptionCreatePlayer = iota
	mainOptionLeaderboard
	mainOptionExit
)

// Casino menu options
const (
	casinoOptionSelectGame = iota
	casinoOptionLeaderboard
	casinoOptionStatistics
	casinoOptionReturn
	casinoOptionExit
)

// Game menu options
const (
	gameOptionSlots = iota
	gameOptionRoulette
	gameOptionBlackjack
	gameOptionReturn
	gameOptionExit
)

var mainMenuOptions = []string{
	"Create new player",
	"Check leaderboard",
	"Exit",
}

var casinoMenuOptions = []string{
	"Select game",
	"Check leaderboard",
	"View statistics",
	"Return to main menu",
	"Exit casino",
}

var gameMenuOptions = []string{
	"Slots",
	"Roulette",
	"Blackjack",
	"Return to casino menu",
	"Exit casino",
}

// Casino drives the application state machine. It also acts as the
// engines' round recorder and progress saver, so settled rounds reach
// the history store and balances reach the leaderboard without the
// engines knowing about either repository.
type Casino struct {
	ui          ui.UI
	rng         *rng.Rng
	logger      *logging.Logger
	leaderboard leaderboard.Repository
	history     history.Repository
	statistics  *statistics.Service

	games  map[entities.GameType]games.Game
	player *entities.Player
	state  entities.GameState
}

// New creates a casino controller. Game engines are attached afterwards
// with Register since they need the controller as their recorder.
func New(u ui.UI, r *rng.Rng, logger *logging.Logger, lb leaderboard.Repository, hist history.Repository) *Casino {
	return &Casino{
		ui:          u,
		rng:         r,
		logger:      logger,
		leaderboard: lb,
		history:     hist,
		statistics:  statistics.NewService(hist),
		games:       make(map[entities.GameType]games.Game),
		state:       entities.StateMainMenu,
	}
}

// Register attaches a game engine for the given game type
func (c *Casino) Register(gameType entities.GameType, game games.Game) {
	c.games[gameType] = game
}

// Player returns the active player, nil before one is created
func (c *Casino) Player() *entities.Player {
	return c.player
}

// RecordRound persists a settled round. Persistence faults must not
// interrupt play, so failures are logged and dropped.
func (c *Casino) RecordRound(record *entities.RoundRecord) {
	if err := c.history.SaveRound(context.Background(), record); err != nil {
		c.logger.Warn("failed to record %s round for %s: %v", record.Game, record.PlayerName, err)
	}
}

// SaveProgress upserts the player's balance onto the leaderboard
func (c *Casino) SaveProgress(ctx context.Context, player *entities.Player) error {
	return c.leaderboard.AddEntry(ctx, entities.LeaderboardEntry{
		Name:    player.Name,
		Balance: player.Balance,
	})
}

// Run executes the state machine until the player exits. A panic inside
// a state handler is logged and play resumes at the main menu.
func (c *Casino) Run() {
	for c.state != entities.StateExit {
		c.step()
	}

	// Last chance to persist the balance before the process ends
	if c.player != nil {
		if err := c.SaveProgress(context.Background(), c.player); err != nil {
			c.logger.Error("final leaderboard save for %s failed: %v", c.player.Name, err)
		}
	}

	c.ui.Print("Thanks for playing!")
}

func (c *Casino) step() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("recovered from panic in state %s: %v", c.state, r)
			c.ui.Print("Something went wrong, returning to the main menu.")
			c.state = entities.StateMainMenu
		}
	}()

	switch c.state {
	case entities.StateMainMenu:
		c.state = c.handleMainMenu()
	case entities.StateCasinoMenu:
		c.state = c.handleCasinoMenu()
	case entities.StateGameMenu:
		c.state = c.handleGameMenu()
	default:
		c.logger.Warn("unknown state %q, resetting to main menu", c.state)
		c.state = entities.StateMainMenu
	}
}

func (c *Casino) handleMainMenu() entities.GameState {
	c.ui.Clear()

	switch c.ui.AskChoice("WELCOME TO THE CASINO", mainMenuOptions) {
	case mainOptionCreatePlayer:
		if c.createPlayer() {
			return entities.StateCasinoMenu
		}
		return entities.StateMainMenu
	case mainOptionLeaderboard:
		c.showLeaderboard()
		return entities.StateMainMenu
	default:
		// Exit and closed input both leave the application. There may
		// be no player yet, so skip the save-and-confirm helper.
		if c.player == nil {
			return entities.StateExit
		}
		if games.ConfirmExitAndSave(c.ui, c, c.player) {
			return entities.StateExit
		}
		return entities.StateMainMenu
	}
}

// createPlayer runs the new-player flow. Returns true when a player was
// created and the casino menu should open.
func (c *Casino) createPlayer() bool {
	name := c.ui.Ask("Enter your name: ")
	if name == "" {
		c.ui.Print("Name cannot be empty!")
		c.ui.WaitForEnter("")
		return false
	}

	exists, err := c.leaderboard.PlayerExists(context.Background(), name)
	if err != nil {
		c.logger.Warn("leaderboard lookup for %s failed: %v", name, err)
	}
	if exists {
		c.ui.Print("A player with that name already exists!")
		c.ui.WaitForEnter("")
		return false
	}

	balance := c.rng.IntRange(minStartBalance, maxStartBalance)
	player, err := entities.NewPlayer(name, balance)
	if err != nil {
		c.ui.Print("Invalid player name!")
		c.ui.WaitForEnter("")
		return false
	}

	c.player = player
	c.logger.Info("created player %s with starting balance %d", player.Name, player.Balance)

	c.ui.DrawBox("PLAYER CREATED", []string{
		fmt.Sprintf("Welcome, %s!", player.Name),
		fmt.Sprintf("Your starting balance is %d$", player.Balance),
		"Good luck!",
	})
	c.ui.WaitForEnter("")
	return true
}

func (c *Casino) handleCasinoMenu() entities.GameState {
	c.ui.Clear()

	switch c.ui.AskChoice("CASINO MENU", casinoMenuOptions) {
	case casinoOptionSelectGame:
		return entities.StateGameMenu
	case casinoOptionLeaderboard:
		c.showLeaderboard()
		return entities.StateCasinoMenu
	case casinoOptionStatistics:
		c.showStatistics()
		return entities.StateCasinoMenu
	case casinoOptionReturn:
		return entities.StateMainMenu
	default:
		if games.ConfirmExitAndSave(c.ui, c, c.player) {
			return entities.StateExit
		}
		return entities.StateCasinoMenu
	}
}

func (c *Casino) handleGameMenu() entities.GameState {
	c.ui.Clear()

	if c.player.Balance <= 0 {
		c.gameOver()
		return entities.StateMainMenu
	}

	choice := c.ui.AskChoice("SELECT A GAME", gameMenuOptions)

	var gameType entities.GameType
	switch choice {
	case gameOptionSlots:
		gameType = entities.GameSlots
	case gameOptionRoulette:
		gameType = entities.GameRoulette
	case gameOptionBlackjack:
		gameType = entities.GameBlackjack
	case gameOptionReturn:
		return entities.StateCasinoMenu
	default:
		if games.ConfirmExitAndSave(c.ui, c, c.player) {
			return entities.StateExit
		}
		return entities.StateGameMenu
	}

	game, ok := c.games[gameType]
	if !ok {
		c.logger.Error("no engine registered for %s", gameType)
		c.ui.Print("That game is not available.")
		return entities.StateGameMenu
	}

	c.logger.Info("player %s entered %s with balance %d", c.player.Name, game.Name(), c.player.Balance)
	return game.PlayRound(c.player)
}

// gameOver handles a player arriving at the game menu with nothing left
// to bet. Their final (zero) balance still goes onto the leaderboard.
func (c *Casino) gameOver() {
	c.ui.DrawBox("GAME OVER", []string{
		fmt.Sprintf("%s, you are out of money!", c.player.Name),
		"Your result has been saved to the leaderboard.",
		"Create a new player to try again.",
	})

	if err := c.SaveProgress(context.Background(), c.player); err != nil {
		c.logger.Error("game-over leaderboard save for %s failed: %v", c.player.Name, err)
	}
	c.logger.Info("player %s busted out", c.player.Name)

	c.ui.WaitForEnter("")
	c.player = nil
}

func (c *Casino) showLeaderboard() {
	entries, err := c.leaderboard.Load(context.Background())
	if err != nil {
		c.logger.Error("failed to load leaderboard: %v", err)
		c.ui.Print("Could not load the leaderboard.")
		c.ui.WaitForEnter("")
		return
	}

	c.ui.Clear()
	c.ui.RenderLeaderboard("LEADERBOARD", entries)
	c.ui.WaitForEnter("")
}

func (c *Casino) showStatistics() {
	stats, err := c.statistics.GetPlayerStatistics(context.Background(), c.player.Name)
	if err != nil {
		c.logger.Error("failed to load statistics for %s: %v", c.player.Name, err)
		c.ui.Print("Could not load your statistics.")
		c.ui.WaitForEnter("")
		return
	}

	c.ui.Clear()
	lines := make([]string, 0, len(stats)*5)
	for _, s := range stats {
		if s.RoundsPlayed == 0 {
			continue
		}
		lines = append(lines,
			string(s.Game),
			fmt.Sprintf("  Rounds: %d  Wins: %d  Losses: %d  Pushes: %d", s.RoundsPlayed, s.Wins, s.Losses, s.Pushes),
			fmt.Sprintf("  Win rate: %.1f%%", s.WinRate()),
			fmt.Sprintf("  Net profit: %d$  Biggest win: %d$", s.NetProfit(), s.BiggestWin),
			"",
		)
	}
	if len(lines) == 0 {
		lines = []string{"No rounds played yet."}
	}

	c.ui.DrawBox(fmt.Sprintf("STATISTICS - %s", c.player.Name), lines)
	c.ui.WaitForEnter("")
}
