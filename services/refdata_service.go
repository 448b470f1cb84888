package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Dosada05/event-console/backend"
	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/repositories"
	"golang.org/x/sync/errgroup"
)

// RefDataService наполняет снимок справочных данных сессии мастера.
// Оба списка читаются один раз, параллельно; до успешной загрузки диалоги,
// зависящие от списков, остаются заблокированными.
type RefDataService interface {
	Load(ctx context.Context, draftID string)
	Retry(ctx context.Context, draftID string) error
}

type refDataService struct {
	drafts repositories.DraftRepository
	api    backend.Client
	hub    Notifier
	logger *slog.Logger
}

func NewRefDataService(drafts repositories.DraftRepository, api backend.Client, hub Notifier, logger *slog.Logger) RefDataService {
	return &refDataService{
		drafts: drafts,
		api:    api,
		hub:    hub,
		logger: logger,
	}
}

// Load fetches both reference lists and stores them on the draft. If the
// session was closed while the fetch was in flight, the result is discarded
// without touching any store.
func (s *refDataService) Load(ctx context.Context, draftID string) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		boxers []models.Boxer
		places []models.Place
	)
	g.Go(func() error {
		var err error
		boxers, err = s.api.ListBoxers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		places, err = s.api.ListPlaces(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("reference data load failed",
			slog.String("draft_id", draftID),
			slog.Any("error", err))

		mErr := s.drafts.Mutate(ctx, draftID, func(d *models.EventDraft) error {
			d.Reference.LoadFailed = true
			return nil
		})
		if errors.Is(mErr, repositories.ErrDraftNotFound) {
			return
		}
		s.hub.NotifyDraft(draftID, NoticeReferenceDataError, map[string]string{
			"error": ErrReferenceDataLoadFailed.Error(),
		})
		return
	}

	err := s.drafts.Mutate(ctx, draftID, func(d *models.EventDraft) error {
		d.Reference = models.ReferenceCache{
			Boxers:      boxers,
			Places:      places,
			BoxersReady: true,
			PlacesReady: true,
		}
		return nil
	})
	if errors.Is(err, repositories.ErrDraftNotFound) {
		return
	}

	s.hub.NotifyDraft(draftID, NoticeReferenceDataReady, map[string]int{
		"boxers": len(boxers),
		"places": len(places),
	})
}

// Retry re-runs the load synchronously and reports whether the cache became
// usable.
func (s *refDataService) Retry(ctx context.Context, draftID string) error {
	if !s.drafts.Exists(ctx, draftID) {
		return ErrDraftNotFound
	}

	s.Load(ctx, draftID)

	draft, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, repositories.ErrDraftNotFound) {
			return ErrDraftNotFound
		}
		return err
	}
	if !draft.Reference.Ready() {
		return ErrReferenceDataLoadFailed
	}
	return nil
}
