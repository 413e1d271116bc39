// Package storage persists the result history and per-game configs as a
// single JSON document in the user's config directory. The whole document
// is rewritten synchronously after every mutation; a missing or unreadable
// document is silently replaced by an empty one.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/dkotlyar/mindgym/internal/game"
)

// Backend abstracts where the serialized document lives, keeping the store
// testable without real disk I/O.
type Backend interface {
	// Load returns the raw document, or fs.ErrNotExist when none exists.
	Load() ([]byte, error)

	// Save replaces the document with the given bytes.
	Save(data []byte) error
}

// FileBackend stores the document at a fixed path, creating parent
// directories on the first save.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend for the given path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// DefaultPath returns the per-user document path,
// e.g. ~/.config/mindgym/history.json on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot resolve config directory: %w", err)
	}
	return filepath.Join(dir, "mindgym", "history.json"), nil
}

// Load implements Backend.
func (b *FileBackend) Load() ([]byte, error) {
	return os.ReadFile(b.path)
}

// Save implements Backend.
func (b *FileBackend) Save(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory: %w", err)
	}
	if err := os.WriteFile(b.path, data, 0o600); err != nil {
		return fmt.Errorf("storage: cannot write document: %w", err)
	}
	return nil
}

// document is the on-disk layout. There is no schema version field; a
// document that fails to parse is treated as absent.
type document struct {
	Results []game.Result             `json:"results"`
	Configs map[game.Type]game.Config `json:"configs"`
}

// Store holds the in-memory storage state. Results are append-only and kept
// in insertion (chronological) order. The store is owned and mutated by the
// single UI goroutine only.
type Store struct {
	backend Backend
	logger  *log.Logger

	results []game.Result
	configs map[game.Type]game.Config
}

// Open loads the persisted document through the given backend. Any read or
// parse failure yields an empty store; corruption is logged, not surfaced.
func Open(backend Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}

	s := &Store{
		backend: backend,
		logger:  logger,
		configs: make(map[game.Type]game.Config),
	}

	data, err := backend.Load()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("could not read history document, starting empty", "error", err)
		}
		return s
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("could not parse history document, starting empty", "error", err)
		return s
	}

	s.results = doc.Results
	if doc.Configs != nil {
		s.configs = doc.Configs
	}
	return s
}

// OpenFile opens a store backed by the document at path.
func OpenFile(path string, logger *log.Logger) *Store {
	return Open(NewFileBackend(path), logger)
}

// SaveResult appends a result and persists. One call appends exactly one
// entry; nothing is deduplicated or validated here.
func (s *Store) SaveResult(r game.Result) {
	s.results = append(s.results, r)
	s.persist()
}

// SaveConfig upserts the config for a game type and persists.
func (s *Store) SaveConfig(t game.Type, cfg game.Config) {
	s.configs[t] = cfg
	s.persist()
}

// Config returns the stored config for a game type, if any.
func (s *Store) Config(t game.Type) (game.Config, bool) {
	cfg, ok := s.configs[t]
	return cfg, ok
}

// AllResults returns a copy of the full result collection in insertion
// order.
func (s *Store) AllResults() []game.Result {
	out := make([]game.Result, len(s.results))
	copy(out, s.results)
	return out
}

// ResultsForGame returns the results of one game type in insertion order.
func (s *Store) ResultsForGame(t game.Type) []game.Result {
	var out []game.Result
	for _, r := range s.results {
		if r.GameType == t {
			out = append(out, r)
		}
	}
	return out
}

// StatsForGame aggregates the stored results of a game type. BestScore is
// 0.0 when no results exist.
func (s *Store) StatsForGame(t game.Type) game.Stats {
	var stats game.Stats
	for _, r := range s.results {
		if r.GameType != t {
			continue
		}
		stats.TotalGames++
		if r.Score > stats.BestScore {
			stats.BestScore = r.Score
		}
	}
	return stats
}

// ClearAllResults empties the result collection and persists. Configs are
// kept.
func (s *Store) ClearAllResults() {
	s.results = nil
	s.persist()
}

// persist writes the whole document through the backend. Failures are
// best-effort: the in-memory state stays correct and the error is only
// logged.
func (s *Store) persist() {
	doc := document{
		Results: s.results,
		Configs: s.configs,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.logger.Warn("could not serialize history document", "error", err)
		return
	}
	if err := s.backend.Save(data); err != nil {
		s.logger.Warn("could not save history document", "error", err)
	}
}
