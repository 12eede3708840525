package storage

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Preferences stores viewer settings.
type Preferences struct {
	WhiteIsBottom   bool      `json:"white_is_bottom"`
	ShowLegalMoves  bool      `json:"show_legal_moves"`
	Animate         bool      `json:"animate"`
	AnimationMillis int       `json:"animation_ms"`
	QueueMoves      bool      `json:"queue_moves"`
	Sound           bool      `json:"sound"`
	LastUsed        time.Time `json:"last_used"`
}

// DefaultPreferences returns the settings used before anything is saved.
func DefaultPreferences() *Preferences {
	return &Preferences{
		WhiteIsBottom:   true,
		ShowLegalMoves:  true,
		Animate:         true,
		AnimationMillis: 150,
		Sound:           true,
	}
}

// AnimationDuration converts AnimationMillis. Zero means the view default.
func (p *Preferences) AnimationDuration() time.Duration {
	if p.AnimationMillis <= 0 {
		return 0
	}
	return time.Duration(p.AnimationMillis) * time.Millisecond
}

// GameStats counts finished games by result.
type GameStats struct {
	GamesPlayed int `json:"games_played"`
	WhiteWins   int `json:"white_wins"`
	BlackWins   int `json:"black_wins"`
	Draws       int `json:"draws"`
}

// Storage wraps BadgerDB for persistent storage
type Storage struct {
	db *badger.DB
}

// New opens the database in the user's data directory.
func New() (*Storage, error) {
	dbDir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (or creates) a database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Storage) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// get decodes key into v, leaving v untouched when the key is absent.
func (s *Storage) get(key string, v any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, v)
		})
	})
}

// SavePreferences saves viewer preferences
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastUsed = time.Now()
	return s.put(keyPreferences, prefs)
}

// LoadPreferences loads preferences, returns defaults if not found
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()
	err := s.get(keyPreferences, prefs)
	return prefs, err
}

// LoadStats loads game statistics, returns empty stats if not found
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := &GameStats{}
	err := s.get(keyStats, stats)
	return stats, err
}

// RecordResult adds a finished game. result is the PGN result token: "1-0", "0-1" or
// "1/2-1/2". Anything else is ignored.
func (s *Storage) RecordResult(result string) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	switch result {
	case "1-0":
		stats.WhiteWins++
	case "0-1":
		stats.BlackWins++
	case "1/2-1/2":
		stats.Draws++
	default:
		return nil
	}
	stats.GamesPlayed++

	return s.put(keyStats, stats)
}
