// Package jsonfile implements the repository on two JSON files.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/username/vacation-hub/internal/entities"
	"github.com/username/vacation-hub/pkg/dateutil"
	"go.uber.org/zap"
)

const (
	teamFile      = "team.json"
	vacationsFile = "vacations.json"

	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// memberRecord is the on-disk member format
type memberRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	ColorID   string `json:"colorId"`
	CreatedAt string `json:"createdAt"`
}

// vacationRecord is the on-disk vacation format
type vacationRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Vertreter string `json:"vertreter"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Store keeps team and vacations in data_dir/team.json and data_dir/vacations.json.
// Files are re-read on every call so that manual edits are picked up.
type Store struct {
	dir    string
	mu     sync.Mutex
	logger *zap.Logger
}

// New creates a JSON file store rooted at dir
func New(dir string, logger *zap.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger.Named("repo.jsonfile"),
	}
}

// OnStart creates the data directory and empty files
func (s *Store) OnStart(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	for _, name := range []string{teamFile, vacationsFile} {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := writeFileAtomic(path, []byte("[]")); err != nil {
				return err
			}
		}
	}

	s.logger.Info("JSON store ready", zap.String("dir", s.dir))
	return nil
}

// OnStop is a no-op; every write is flushed immediately
func (s *Store) OnStop(_ context.Context) error {
	return nil
}

// ListMembers returns the roster in file order
func (s *Store) ListMembers(_ context.Context) ([]entities.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readMembers()
	if err != nil {
		return nil, err
	}
	return toMembers(records), nil
}

// CreateMember appends a member
func (s *Store) CreateMember(_ context.Context, m entities.Member) (*entities.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readMembers()
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.ID == m.ID || entities.SameName(r.Name, m.Name) {
			return nil, entities.ErrMemberExists
		}
	}

	records = append(records, fromMember(m))
	if err := s.writeJSON(teamFile, records); err != nil {
		return nil, err
	}

	s.logger.Info("Member created", zap.String("id", m.ID), zap.String("name", m.Name))
	return &m, nil
}

// DeleteMember removes a member with its vacations and clears it as stand-in
func (s *Store) DeleteMember(_ context.Context, id string) (*entities.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, err := s.readMembers()
	if err != nil {
		return nil, err
	}

	index := -1
	for i, r := range members {
		if r.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, entities.ErrMemberNotFound
	}
	deleted := toMember(members[index])

	vacations, err := s.readVacations()
	if err != nil {
		return nil, err
	}

	// Cascade: drop the member's vacations, clear it as stand-in elsewhere
	kept := make([]vacationRecord, 0, len(vacations))
	removed := 0
	for _, v := range vacations {
		if v.Name == deleted.Name {
			removed++
			continue
		}
		if v.Vertreter == deleted.Name {
			v.Vertreter = ""
		}
		kept = append(kept, v)
	}

	if err := s.writeJSON(vacationsFile, kept); err != nil {
		return nil, err
	}

	members = append(members[:index], members[index+1:]...)
	if err := s.writeJSON(teamFile, members); err != nil {
		return nil, err
	}

	s.logger.Info("Member deleted",
		zap.String("id", id),
		zap.String("name", deleted.Name),
		zap.Int("vacations_removed", removed))

	return &deleted, nil
}

// ListVacations returns all valid vacations in file order.
// Records with unparseable dates are skipped and left untouched on disk.
func (s *Store) ListVacations(_ context.Context) ([]entities.Vacation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readVacations()
	if err != nil {
		return nil, err
	}
	return s.toVacations(records), nil
}

// CreateVacation appends a vacation
func (s *Store) CreateVacation(_ context.Context, v entities.Vacation) (*entities.Vacation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readVacations()
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.ID == v.ID {
			return nil, entities.ErrVacationExists
		}
	}

	records = append(records, fromVacation(v))
	if err := s.writeJSON(vacationsFile, records); err != nil {
		return nil, err
	}

	s.logger.Info("Vacation created",
		zap.String("id", v.ID),
		zap.String("name", v.Name),
		zap.String("start", dateutil.FormatISO(v.Start)),
		zap.String("end", dateutil.FormatISO(v.End)))

	return &v, nil
}

// UpdateVacationDates moves a vacation to new dates
func (s *Store) UpdateVacationDates(_ context.Context, id string, start, end time.Time) (*entities.Vacation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readVacations()
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID != id {
			continue
		}

		records[i].Start = dateutil.FormatISO(start)
		records[i].End = dateutil.FormatISO(end)
		records[i].UpdatedAt = formatTimestamp(time.Now())

		if err := s.writeJSON(vacationsFile, records); err != nil {
			return nil, err
		}

		v, err := toVacation(records[i])
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	return nil, entities.ErrVacationNotFound
}

// DeleteVacation removes a vacation
func (s *Store) DeleteVacation(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.readVacations()
	if err != nil {
		return err
	}

	for i := range records {
		if records[i].ID == id {
			records = append(records[:i], records[i+1:]...)
			if err := s.writeJSON(vacationsFile, records); err != nil {
				return err
			}
			s.logger.Info("Vacation deleted", zap.String("id", id))
			return nil
		}
	}

	return entities.ErrVacationNotFound
}

// Snapshot reads both files under one lock
func (s *Store) Snapshot(_ context.Context) (entities.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, err := s.readMembers()
	if err != nil {
		return entities.Snapshot{}, err
	}
	vacations, err := s.readVacations()
	if err != nil {
		return entities.Snapshot{}, err
	}

	return entities.Snapshot{
		Team:      toMembers(members),
		Vacations: s.toVacations(vacations),
	}, nil
}

func (s *Store) readMembers() ([]memberRecord, error) {
	var records []memberRecord
	if err := s.readJSON(teamFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) readVacations() ([]vacationRecord, error) {
	var records []vacationRecord
	if err := s.readJSON(vacationsFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) readJSON(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist yet - will be created on first write
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func (s *Store) writeJSON(name string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	return writeFileAtomic(filepath.Join(s.dir, name), data)
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func (s *Store) toVacations(records []vacationRecord) []entities.Vacation {
	vacations := make([]entities.Vacation, 0, len(records))
	for _, r := range records {
		v, err := toVacation(r)
		if err != nil {
			s.logger.Warn("Skipping invalid vacation record", zap.String("id", r.ID), zap.Error(err))
			continue
		}
		vacations = append(vacations, v)
	}
	return vacations
}

func toMembers(records []memberRecord) []entities.Member {
	members := make([]entities.Member, 0, len(records))
	for _, r := range records {
		members = append(members, toMember(r))
	}
	return members
}

func toMember(r memberRecord) entities.Member {
	return entities.Member{
		ID:        r.ID,
		Name:      r.Name,
		ColorID:   r.ColorID,
		ColorHex:  r.Color,
		CreatedAt: parseTimestamp(r.CreatedAt),
	}
}

func fromMember(m entities.Member) memberRecord {
	return memberRecord{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.ColorHex,
		ColorID:   m.ColorID,
		CreatedAt: formatTimestamp(m.CreatedAt),
	}
}

func toVacation(r vacationRecord) (entities.Vacation, error) {
	start, err := dateutil.ParseISODate(r.Start)
	if err != nil {
		return entities.Vacation{}, fmt.Errorf("start: %w", err)
	}
	end, err := dateutil.ParseISODate(r.End)
	if err != nil {
		return entities.Vacation{}, fmt.Errorf("end: %w", err)
	}

	createdAt := parseTimestamp(r.CreatedAt)
	updatedAt := createdAt
	if r.UpdatedAt != "" {
		updatedAt = parseTimestamp(r.UpdatedAt)
	}

	return entities.Vacation{
		ID:        r.ID,
		Name:      r.Name,
		Start:     start,
		End:       end,
		StandIn:   r.Vertreter,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func fromVacation(v entities.Vacation) vacationRecord {
	r := vacationRecord{
		ID:        v.ID,
		Name:      v.Name,
		Start:     dateutil.FormatISO(v.Start),
		End:       dateutil.FormatISO(v.End),
		Vertreter: v.StandIn,
		CreatedAt: formatTimestamp(v.CreatedAt),
	}
	if !v.UpdatedAt.IsZero() && !v.UpdatedAt.Equal(v.CreatedAt) {
		r.UpdatedAt = formatTimestamp(v.UpdatedAt)
	}
	return r
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
