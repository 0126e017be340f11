package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	ErrNoData = errors.New("no saved data found")
)

const (
	membersFile     = "members.json"
	activitiesFile  = "activities.json"
	instructorsFile = "instructors.json"
	paymentsFile    = "payments.json"
)

// Store persists each collection to its own file in the data directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

func (s *Store) Save(snap *Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	files := map[string]any{
		membersFile:     snap.Members,
		activitiesFile:  snap.Activities,
		instructorsFile: snap.Instructors,
		paymentsFile:    snap.Payments,
	}
	for name, collection := range files {
		if err := s.writeFile(name, collection); err != nil {
			return err
		}
	}

	s.logger.Info("state saved", "dir", s.dir,
		"members", len(snap.Members),
		"activities", len(snap.Activities),
		"instructors", len(snap.Instructors),
		"payments", len(snap.Payments),
	)
	return nil
}

// Load is partial-tolerant: any subset of the four collection files is
// loaded. It returns ErrNoData only when none of them exists.
func (s *Store) Load() (*Snapshot, error) {
	snap := &Snapshot{}
	found := 0

	for name, collection := range map[string]any{
		membersFile:     &snap.Members,
		activitiesFile:  &snap.Activities,
		instructorsFile: &snap.Instructors,
		paymentsFile:    &snap.Payments,
	} {
		ok, err := s.readFile(name, collection)
		if err != nil {
			return nil, err
		}
		if ok {
			found++
		}
	}

	if found == 0 {
		return nil, ErrNoData
	}
	return snap, nil
}

func (s *Store) writeFile(name string, collection any) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (s *Store) readFile(name string, collection any) (bool, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, collection); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return true, nil
}
