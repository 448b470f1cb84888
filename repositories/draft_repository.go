package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/Dosada05/event-console/models"
)

var ErrDraftNotFound = errors.New("event draft not found")

// DraftRepository хранит черновики сессий мастера. Состояние черновика живёт
// только до отправки или отмены, поэтому хранилище — память процесса.
//
// Mutate выполняет замыкание под блокировкой конкретного черновика: пока оно
// не вернётся, другая мутация того же черновика не начнётся. Это даёт
// гарантию порядка — add/remove вместе со всеми каскадами завершаются до
// обработки следующего действия.
type DraftRepository interface {
	Create(ctx context.Context, draft *models.EventDraft) error
	GetByID(ctx context.Context, id string) (*models.EventDraft, error)
	Mutate(ctx context.Context, id string, fn func(draft *models.EventDraft) error) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) bool
}

type draftEntry struct {
	mu    sync.Mutex
	draft *models.EventDraft
}

type inMemoryDraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]*draftEntry
}

func NewInMemoryDraftRepository() DraftRepository {
	return &inMemoryDraftRepository{
		drafts: make(map[string]*draftEntry),
	}
}

func (r *inMemoryDraftRepository) Create(_ context.Context, draft *models.EventDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.ID] = &draftEntry{draft: draft}
	return nil
}

// GetByID возвращает снимок черновика: копию верхнего уровня с копиями
// коллекций, чтобы читатели не видели последующих мутаций.
func (r *inMemoryDraftRepository) GetByID(_ context.Context, id string) (*models.EventDraft, error) {
	r.mu.RLock()
	entry, ok := r.drafts[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrDraftNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	snapshot := cloneDraft(entry.draft)
	return snapshot, nil
}

func (r *inMemoryDraftRepository) Mutate(_ context.Context, id string, fn func(draft *models.EventDraft) error) error {
	r.mu.RLock()
	entry, ok := r.drafts[id]
	r.mu.RUnlock()
	if !ok {
		return ErrDraftNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.draft)
}

func (r *inMemoryDraftRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drafts[id]; !ok {
		return ErrDraftNotFound
	}
	delete(r.drafts, id)
	return nil
}

func (r *inMemoryDraftRepository) Exists(_ context.Context, id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.drafts[id]
	return ok
}

func cloneDraft(d *models.EventDraft) *models.EventDraft {
	c := *d
	c.WeightClasses = make([]models.WeightClass, len(d.WeightClasses))
	for i, wc := range d.WeightClasses {
		c.WeightClasses[i] = wc
		c.WeightClasses[i].MatchIDs = append([]string(nil), wc.MatchIDs...)
	}
	c.Matches = append([]models.Match(nil), d.Matches...)
	c.SeatZones = make([]models.SeatZone, len(d.SeatZones))
	for i, sz := range d.SeatZones {
		c.SeatZones[i] = sz
		c.SeatZones[i].SeatLabels = append([]string(nil), sz.SeatLabels...)
	}
	c.Reference.Boxers = append([]models.Boxer(nil), d.Reference.Boxers...)
	c.Reference.Places = append([]models.Place(nil), d.Reference.Places...)
	return &c
}
