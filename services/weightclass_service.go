package services

import (
	"context"
	"errors"

	"github.com/Dosada05/event-console/catalog"
	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/repositories"
	"github.com/google/uuid"
)

// Вместимость категории, создаваемой неявно при сохранении матча.
// Матчу нужны два боксёра; организатор может поднять лимит позже.
const defaultMaxEnrollment = 2

type WeightClassService interface {
	Add(ctx context.Context, draftID string, input WeightClassInput) (*models.WeightClass, error)
	Update(ctx context.Context, draftID, classID string, input UpdateWeightClassInput) (*models.WeightClass, error)
	Remove(ctx context.Context, draftID, classID string) error
}

type WeightClassInput struct {
	Gender         models.Gender
	CatalogEntryID string
	MaxEnrollment  int
}

type UpdateWeightClassInput struct {
	MaxEnrollment int
	// Заполнены только при явном перевыборе записи каталога.
	Gender         models.Gender
	CatalogEntryID string
}

type weightClassService struct {
	drafts  repositories.DraftRepository
	catalog catalog.Provider
}

func NewWeightClassService(drafts repositories.DraftRepository, provider catalog.Provider) WeightClassService {
	return &weightClassService{drafts: drafts, catalog: provider}
}

func (s *weightClassService) Add(ctx context.Context, draftID string, input WeightClassInput) (*models.WeightClass, error) {
	if input.MaxEnrollment <= 0 {
		return nil, ErrInvalidMaxEnrollment
	}
	entry, err := s.resolveEntry(input.Gender, input.CatalogEntryID)
	if err != nil {
		return nil, err
	}

	var created models.WeightClass
	err = mutateDraft(ctx, s.drafts, draftID, func(d *models.EventDraft) error {
		created = newWeightClass(input.Gender, entry, input.MaxEnrollment)
		d.WeightClasses = append(d.WeightClasses, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *weightClassService) Update(ctx context.Context, draftID, classID string, input UpdateWeightClassInput) (*models.WeightClass, error) {
	if input.MaxEnrollment <= 0 {
		return nil, ErrInvalidMaxEnrollment
	}

	reselect := input.CatalogEntryID != ""
	var entry catalog.Entry
	if reselect {
		var err error
		entry, err = s.resolveEntry(input.Gender, input.CatalogEntryID)
		if err != nil {
			return nil, err
		}
	}

	var updated models.WeightClass
	err := mutateDraft(ctx, s.drafts, draftID, func(d *models.EventDraft) error {
		wc := d.WeightClassByID(classID)
		if wc == nil {
			return ErrWeightClassNotFound
		}
		wc.MaxEnrollment = input.MaxEnrollment
		if reselect {
			wc.Gender = input.Gender
			wc.CatalogEntryID = entry.ID
			wc.Name = entry.Name
			wc.MinWeight = entry.MinWeight
			wc.MaxWeight = entry.MaxWeight
		}
		// Уже привязанные матчи сохраняются.
		updated = *wc
		updated.MatchIDs = append([]string(nil), wc.MatchIDs...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Remove deletes the weight class and, transitively, every match that
// references it. Orphaned matches are not permitted.
func (s *weightClassService) Remove(ctx context.Context, draftID, classID string) error {
	return mutateDraft(ctx, s.drafts, draftID, func(d *models.EventDraft) error {
		wc := d.WeightClassByID(classID)
		if wc == nil {
			return ErrWeightClassNotFound
		}

		kept := d.Matches[:0]
		for _, m := range d.Matches {
			if m.WeightClassID != classID {
				kept = append(kept, m)
			}
		}
		d.Matches = kept

		for i := range d.WeightClasses {
			if d.WeightClasses[i].ID == classID {
				d.WeightClasses = append(d.WeightClasses[:i], d.WeightClasses[i+1:]...)
				break
			}
		}
		return nil
	})
}

func (s *weightClassService) resolveEntry(gender models.Gender, entryID string) (catalog.Entry, error) {
	entry, err := s.catalog.Resolve(gender, entryID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrGenderRequired):
			return catalog.Entry{}, ErrGenderRequired
		case errors.Is(err, catalog.ErrEntryNotFound):
			return catalog.Entry{}, ErrCatalogEntryNotFound
		default:
			return catalog.Entry{}, err
		}
	}
	return entry, nil
}

func newWeightClass(gender models.Gender, entry catalog.Entry, maxEnrollment int) models.WeightClass {
	return models.WeightClass{
		ID:             uuid.NewString(),
		Gender:         gender,
		CatalogEntryID: entry.ID,
		Name:           entry.Name,
		MinWeight:      entry.MinWeight,
		MaxWeight:      entry.MaxWeight,
		MaxEnrollment:  maxEnrollment,
		MatchIDs:       []string{},
	}
}

// findOrCreateWeightClass — единственная точка, через которую матч получает
// весовую категорию: либо существующую с той же парой (gender, catalog entry),
// либо новую с вместимостью по умолчанию. Вызывается только под блокировкой
// черновика.
func findOrCreateWeightClass(d *models.EventDraft, gender models.Gender, entry catalog.Entry) *models.WeightClass {
	for i := range d.WeightClasses {
		wc := &d.WeightClasses[i]
		if wc.Gender == gender && wc.CatalogEntryID == entry.ID {
			return wc
		}
	}
	d.WeightClasses = append(d.WeightClasses, newWeightClass(gender, entry, defaultMaxEnrollment))
	return &d.WeightClasses[len(d.WeightClasses)-1]
}

// mutateDraft прячет маппинг ошибки репозитория в сервисную.
func mutateDraft(ctx context.Context, drafts repositories.DraftRepository, id string, fn func(d *models.EventDraft) error) error {
	err := drafts.Mutate(ctx, id, fn)
	if errors.Is(err, repositories.ErrDraftNotFound) {
		return ErrDraftNotFound
	}
	return err
}
