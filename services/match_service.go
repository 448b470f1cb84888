package services

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/repositories"
	"github.com/google/uuid"
)

type MatchService interface {
	Add(ctx context.Context, draftID string, input MatchInput) (*models.Match, error)
	Remove(ctx context.Context, draftID, matchID string) error
	ByDate(ctx context.Context, draftID string, date time.Time) (iter.Seq[models.Match], error)
}

type MatchInput struct {
	Boxer1ID string
	Boxer2ID string
	Date     time.Time
	Hour     int
	Minute   int
	// Пара (gender, catalog entry) определяет весовую категорию матча;
	// отсутствующая категория создаётся на месте.
	Gender         models.Gender
	CatalogEntryID string
}

type matchService struct {
	drafts  repositories.DraftRepository
	classes *weightClassService
}

func NewMatchService(drafts repositories.DraftRepository, classes WeightClassService) MatchService {
	return &matchService{
		drafts:  drafts,
		classes: classes.(*weightClassService),
	}
}

func (s *matchService) Add(ctx context.Context, draftID string, input MatchInput) (*models.Match, error) {
	if input.Boxer1ID == "" || input.Boxer2ID == "" || input.Boxer1ID == input.Boxer2ID {
		return nil, ErrSameBoxer
	}
	entry, err := s.classes.resolveEntry(input.Gender, input.CatalogEntryID)
	if err != nil {
		return nil, err
	}

	var created models.Match
	err = mutateDraft(ctx, s.drafts, draftID, func(d *models.EventDraft) error {
		if !d.Reference.BoxersReady {
			return ErrReferenceDataUnavailable
		}
		if !d.Reference.HasBoxer(input.Boxer1ID) || !d.Reference.HasBoxer(input.Boxer2ID) {
			return ErrBoxerNotFound
		}
		if d.StartDate == nil || d.EndDate == nil {
			return ErrDateRangeRequired
		}

		matchDate, matchTime := models.CombineDateTime(input.Date, input.Hour, input.Minute)
		if matchDate.Before(*d.StartDate) || matchDate.After(*d.EndDate) {
			return ErrMatchDateOutOfRange
		}

		wc := findOrCreateWeightClass(d, input.Gender, entry)

		created = models.Match{
			ID:            uuid.NewString(),
			WeightClassID: wc.ID,
			Boxer1ID:      input.Boxer1ID,
			Boxer2ID:      input.Boxer2ID,
			MatchDate:     matchDate,
			MatchTime:     matchTime,
		}
		d.Matches = append(d.Matches, created)
		wc.MatchIDs = append(wc.MatchIDs, created.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Remove deletes the match from the scheduler and from its weight class.
// The class itself stays even when it becomes empty: an empty class is valid
// and may be reused by a later match.
func (s *matchService) Remove(ctx context.Context, draftID, matchID string) error {
	return mutateDraft(ctx, s.drafts, draftID, func(d *models.EventDraft) error {
		match := d.MatchByID(matchID)
		if match == nil {
			return ErrMatchNotFound
		}

		if wc := d.WeightClassByID(match.WeightClassID); wc != nil {
			for i, id := range wc.MatchIDs {
				if id == matchID {
					wc.MatchIDs = append(wc.MatchIDs[:i], wc.MatchIDs[i+1:]...)
					break
				}
			}
		}
		for i := range d.Matches {
			if d.Matches[i].ID == matchID {
				d.Matches = append(d.Matches[:i], d.Matches[i+1:]...)
				break
			}
		}
		return nil
	})
}

// ByDate returns a restartable sequence of the matches whose match_date falls
// on the given calendar day, in insertion order. The sequence iterates over a
// snapshot, so it stays stable if the draft is mutated afterwards.
func (s *matchService) ByDate(ctx context.Context, draftID string, date time.Time) (iter.Seq[models.Match], error) {
	draft, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, repositories.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}

	day := truncateToDay(date)
	matches := draft.Matches
	return func(yield func(models.Match) bool) {
		for _, m := range matches {
			if m.MatchDate.Equal(day) {
				if !yield(m) {
					return
				}
			}
		}
	}, nil
}
