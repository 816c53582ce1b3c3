package entities

// LeaderboardEntry is one persisted name -> balance record. Names are
// unique keys; adding an entry for an existing name overwrites its balance.
type LeaderboardEntry struct {
	Name    string
	Balance int
}
