package table

import (
	"strings"
)

// MaxPlayers is the most players that can be seated at the table
const MaxPlayers = 9

// ErrEmptyRoster is returned when no usable player names remain
var ErrEmptyRoster = UserError("at least one player name is required")

// defaultNames are seated when a roster cannot be built
var defaultNames = []string{"Player 1", "Player 2"}

// Player is a seated player
// IDs are assigned in seat order starting at 1 and never change during a match.
type Player struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// GetPlayerID returns the player's ID
func (p *Player) GetPlayerID() int64 {
	return p.ID
}

// AddPoints adds to the player's cumulative points
func (p *Player) AddPoints(n int) {
	p.Points += n
}

// ResetPoints clears the player's points
func (p *Player) ResetPoints() {
	p.Points = 0
}

// CleanNames trims the names, drops empty ones, and removes duplicates
// Duplicates are compared after trimming and are case-sensitive. The first occurrence keeps its seat.
func CleanNames(names []string) []string {
	seen := make(map[string]bool)
	clean := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}

		seen[name] = true
		clean = append(clean, name)
	}

	return clean
}

// NewRoster returns the players for the names
// Names past MaxPlayers are not seated.
func NewRoster(names []string) ([]*Player, error) {
	clean := CleanNames(names)
	if len(clean) == 0 {
		return nil, ErrEmptyRoster
	}

	if len(clean) > MaxPlayers {
		clean = clean[:MaxPlayers]
	}

	return seat(clean), nil
}

// DefaultRoster returns the two player roster used when no names are usable
func DefaultRoster() []*Player {
	return seat(defaultNames)
}

func seat(names []string) []*Player {
	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = &Player{
			ID:   int64(i + 1),
			Name: name,
		}
	}

	return players
}
