package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"tracker-cli/internal/model"
)

// Charts is the chart store: an insertion-ordered id -> chart mapping plus the
// active chart id, written through to a BlobStore after every mutation.
//
// Charts is not safe for concurrent use.
type Charts struct {
	blob BlobStore
	log  *slog.Logger
	now  func() time.Time

	order    []string
	byID     map[string]model.Chart
	activeID string
}

// Summary is one entry of List.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Active    bool      `json:"active,omitempty"`
}

func NewCharts(blob BlobStore, log *slog.Logger) *Charts {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Charts{
		blob: blob,
		log:  log,
		now:  time.Now,
		byID: map[string]model.Chart{},
	}
}

// SetClock overrides the time source used for new chart ids.
func (s *Charts) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Load replaces the in-memory state with the blob store's contents. A corrupt
// blob is logged and treated as empty; an empty store gets one default chart.
// The most recent chart becomes active.
func (s *Charts) Load(ctx context.Context) error {
	raw, err := s.blob.Load(ctx)
	if err != nil {
		return fmt.Errorf("load charts: %w", err)
	}
	order, byID, err := decodeCharts(raw)
	if err != nil {
		var de DeserializationError
		if !errors.As(err, &de) {
			return err
		}
		s.log.Warn("persisted charts are unreadable; starting empty", "err", err)
		order, byID = nil, map[string]model.Chart{}
	}
	for id, c := range byID {
		if c.Normalize() {
			s.log.Warn("repaired chart row widths", "chart", id)
			byID[id] = c
		}
	}
	s.order = order
	s.byID = byID
	s.activeID = ""

	if len(s.order) == 0 {
		_, err := s.Create(ctx)
		return err
	}
	s.activeID = s.List()[0].ID
	return nil
}

func (s *Charts) Len() int { return len(s.order) }

func (s *Charts) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// Get returns a deep copy of the chart.
func (s *Charts) Get(id string) (model.Chart, error) {
	c, ok := s.byID[id]
	if !ok {
		return model.Chart{}, NotFoundError{Kind: "chart", ID: id}
	}
	return c.Clone(), nil
}

func (s *Charts) ActiveID() string { return s.activeID }

// Active returns a deep copy of the active chart.
func (s *Charts) Active() (model.Chart, bool) {
	c, ok := s.byID[s.activeID]
	if !ok {
		return model.Chart{}, false
	}
	return c.Clone(), true
}

// Create inserts a default chart, persists and makes it active. The id is
// returned even when persisting fails.
func (s *Charts) Create(ctx context.Context) (string, error) {
	id := newChartID(s.now(), s.Has)
	c := model.NewDefaultChart(id, fmt.Sprintf("Chart %d", len(s.order)+1))
	s.order = append(s.order, id)
	s.byID[id] = c
	s.activeID = id
	s.log.Debug("chart created", "chart", id)
	return id, s.persist(ctx)
}

// Delete removes a chart. Deleting the last chart creates a fresh default one;
// otherwise the most recent remaining chart becomes active.
func (s *Charts) Delete(ctx context.Context, id string) error {
	if !s.Has(id) {
		return NotFoundError{Kind: "chart", ID: id}
	}
	delete(s.byID, id)
	for i, x := range s.order {
		if x == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.log.Debug("chart deleted", "chart", id)
	persistErr := s.persist(ctx)

	if len(s.order) == 0 {
		_, err := s.Create(ctx)
		return errors.Join(persistErr, err)
	}
	if s.activeID == id || !s.Has(s.activeID) {
		s.activeID = s.List()[0].ID
	}
	return persistErr
}

// Update replaces the stored chart (matched by c.ID) and persists.
func (s *Charts) Update(ctx context.Context, c model.Chart) error {
	if !s.Has(c.ID) {
		return NotFoundError{Kind: "chart", ID: c.ID}
	}
	s.byID[c.ID] = c.Clone()
	return s.persist(ctx)
}

func (s *Charts) Rename(ctx context.Context, id, name string) error {
	c, ok := s.byID[id]
	if !ok {
		return NotFoundError{Kind: "chart", ID: id}
	}
	c.Name = strings.TrimSpace(name)
	s.byID[id] = c
	return s.persist(ctx)
}

func (s *Charts) SetActive(id string) error {
	if !s.Has(id) {
		return NotFoundError{Kind: "chart", ID: id}
	}
	s.activeID = id
	return nil
}

// List orders charts by descending creation time (parsed from the id, 0 when
// unparsable); ties keep insertion order.
func (s *Charts) List() []Summary {
	out := make([]Summary, 0, len(s.order))
	for _, id := range s.order {
		c := s.byID[id]
		name := c.Name
		if strings.TrimSpace(name) == "" {
			name = "Untitled Chart"
		}
		out = append(out, Summary{
			ID:        id,
			Name:      name,
			CreatedAt: time.UnixMilli(ChartCreatedAt(id)).UTC(),
			Active:    id == s.activeID,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return ChartCreatedAt(out[i].ID) > ChartCreatedAt(out[j].ID)
	})
	return out
}

// Save persists the current state explicitly.
func (s *Charts) Save(ctx context.Context) error {
	return s.persist(ctx)
}

func (s *Charts) persist(ctx context.Context) error {
	b, err := encodeCharts(s.order, s.byID)
	if err != nil {
		return fmt.Errorf("persist charts: %w", err)
	}
	if err := s.blob.Save(ctx, b); err != nil {
		s.log.Error("persist charts failed", "err", err)
		return fmt.Errorf("persist charts: %w", err)
	}
	return nil
}
