package dashboard

import (
	"context"
	"log"
	"sync"

	"decora_festas/internal/domain/entities"
	"decora_festas/internal/usecase/interfaces"
)

// Store holds the canonical in-memory collection of budgets for the session.
// Every derived view (filtered list, calendar) is computed from a snapshot of
// this collection and never mutated independently.
//
// Loads are guarded by a generation counter: a load that completes after a
// newer one has already been applied is discarded instead of overwriting
// fresher data.
type Store struct {
	mu         sync.Mutex
	records    []entities.Budget
	generation uint64
	loaded     bool
	degraded   bool

	repo interfaces.IBudgetRepository
}

func NewStore(repo interfaces.IBudgetRepository) *Store {
	return &Store{repo: repo}
}

// Load fetches the canonical collection from the persistence collaborator.
// On failure of the initial load the store falls back to the bundled sample
// dataset and flags the snapshot as degraded; failures of later reloads keep
// the current collection untouched.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	firstLoad := !s.loaded
	s.mu.Unlock()

	records, err := s.repo.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		log.Printf("[dashboard][store] discarding stale load generation=%d current=%d", gen, s.generation)
		return nil
	}
	if err != nil {
		log.Printf("[dashboard][store] load failed err=%v", err)
		if firstLoad {
			log.Printf("[dashboard][store] falling back to sample dataset")
			s.records = SampleBudgets()
			s.loaded = true
			s.degraded = true
			return nil
		}
		return err
	}

	s.records = records
	s.loaded = true
	s.degraded = false
	log.Printf("[dashboard][store] load success count=%d", len(records))
	return nil
}

// Snapshot returns a copy of the canonical collection and whether the store
// is serving the degraded sample dataset.
func (s *Store) Snapshot() ([]entities.Budget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Budget, len(s.records))
	copy(out, s.records)
	return out, s.degraded
}

// Upsert replaces the record with the same id, or appends it. Called only
// after the persistence collaborator confirmed the write.
func (s *Store) Upsert(b entities.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == b.ID {
			s.records[i] = b
			return
		}
	}
	s.records = append(s.records, b)
}

// SetStatus updates exactly one record's status and leaves all others
// untouched. Returns false when the record is absent.
func (s *Store) SetStatus(id string, status entities.BudgetStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records[i].Status = status
			return true
		}
	}
	return false
}

// Remove drops a record from the canonical collection. Called only after the
// persistence collaborator confirmed the deletion.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}
