package leaderboard

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/marczelloo/kasyno/pkg/entities"
)

// separator between name and balance in the leaderboard file
const separator = "||"

// FileRepository persists the leaderboard as plain text, one entry per
// line in the form `name||balance`. The whole file is rewritten on every
// change; storage order is insertion order.
type FileRepository struct {
	path string
}

// NewFileRepository creates a file-backed leaderboard at the given path.
// The file is created empty if it does not exist.
func NewFileRepository(path string) (*FileRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating leaderboard directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, nil, 0644); err != nil {
			return nil, fmt.Errorf("error creating leaderboard file: %w", err)
		}
	}

	return &FileRepository{path: path}, nil
}

// Load reads all entries, skipping malformed lines, sorted by balance
// descending.
func (r *FileRepository) Load(ctx context.Context) ([]entities.LeaderboardEntry, error) {
	file, err := os.Open(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening leaderboard file: %w", err)
	}
	defer file.Close()

	var entries []entities.LeaderboardEntry

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		name, balanceStr, found := strings.Cut(scanner.Text(), separator)
		if !found || name == "" {
			continue
		}

		balance, err := strconv.Atoi(strings.TrimSpace(balanceStr))
		if err != nil {
			continue
		}

		entries = append(entries, entities.LeaderboardEntry{Name: name, Balance: balance})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading leaderboard file: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Balance > entries[j].Balance
	})

	return entries, nil
}

// Save rewrites the whole leaderboard file with the given entries
func (r *FileRepository) Save(ctx context.Context, entries []entities.LeaderboardEntry) error {
	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(entry.Name)
		sb.WriteString(separator)
		sb.WriteString(strconv.Itoa(entry.Balance))
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(r.path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("error writing leaderboard file: %w", err)
	}
	return nil
}

// AddEntry updates the balance of an existing name or appends a new entry
func (r *FileRepository) AddEntry(ctx context.Context, entry entities.LeaderboardEntry) error {
	entries, err := r.Load(ctx)
	if err != nil {
		return err
	}

	updated := false
	for i := range entries {
		if entries[i].Name == entry.Name {
			entries[i].Balance = entry.Balance
			updated = true
			break
		}
	}
	if !updated {
		entries = append(entries, entry)
	}

	return r.Save(ctx, entries)
}

// PlayerExists reports whether a name already has a leaderboard entry
func (r *FileRepository) PlayerExists(ctx context.Context, name string) (bool, error) {
	entries, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	for _, entry := range entries {
		if entry.Name == name {
			return true, nil
		}
	}
	return false, nil
}
