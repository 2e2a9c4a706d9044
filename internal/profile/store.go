package profile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// Load reads, parses, and validates the personal information file at path.
// Failures are classified with the package sentinel errors so callers can
// halt or report precisely. A profile is either fully present and
// well-formed or not returned at all.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	if err := validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func validate(p *Profile) error {
	required := map[string]string{
		"name":             p.Name,
		"occupation":       p.Occupation,
		"about_me":         p.AboutMe,
		"education":        p.Education,
		"contact_email":    p.ContactEmail,
		"linkedin_profile": p.LinkedInProfile,
	}
	for field, v := range required {
		if v == "" {
			return fmt.Errorf("%w: missing field %q", ErrInvalid, field)
		}
	}
	if len(p.Skills) == 0 {
		return fmt.Errorf("%w: skills must not be empty", ErrInvalid)
	}
	for i, proj := range p.Projects {
		if proj.Name == "" || proj.Description == "" {
			return fmt.Errorf("%w: project %d is missing name or description", ErrInvalid, i)
		}
	}
	return nil
}

// Store holds the loaded profile behind a read lock. The value is read-only
// after load; the only mutation is the whole-value replace performed by
// Reload or the next Get after Invalidate.
type Store struct {
	path string

	mu     sync.RWMutex
	cached *Profile
}

// NewStore creates a Store for the file at path. Nothing is read until
// Load or Get is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads from.
func (s *Store) Path() string {
	return s.path
}

// Load reads the file and replaces the cached profile. On failure the
// previous value (if any) is kept.
func (s *Store) Load() error {
	p, err := Load(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cached = p
	s.mu.Unlock()
	return nil
}

// Get returns a copy of the current profile, loading it from disk if no
// cached value is present.
func (s *Store) Get() (Profile, error) {
	s.mu.RLock()
	if s.cached != nil {
		p := copyProfile(s.cached)
		s.mu.RUnlock()
		return p, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return copyProfile(s.cached), nil
	}

	p, err := Load(s.path)
	if err != nil {
		return Profile{}, err
	}
	s.cached = p
	return copyProfile(p), nil
}

// Invalidate drops the cached profile so the next Get re-reads the file.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// Reload re-reads the file and swaps the profile wholesale. On failure the
// previous profile stays available and the load error is returned.
func (s *Store) Reload() error {
	if err := s.Load(); err != nil {
		slog.Warn("profile reload failed, keeping previous profile", "path", s.path, "error", err)
		return err
	}
	slog.Info("profile reloaded", "path", s.path)
	return nil
}

func copyProfile(p *Profile) Profile {
	cp := *p
	if p.Skills != nil {
		cp.Skills = make([]string, len(p.Skills))
		copy(cp.Skills, p.Skills)
	}
	if p.Projects != nil {
		cp.Projects = make([]Project, len(p.Projects))
		copy(cp.Projects, p.Projects)
	}
	return cp
}
