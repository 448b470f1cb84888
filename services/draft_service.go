package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/repositories"
	"github.com/Dosada05/event-console/storage"
	"github.com/google/uuid"
)

type DraftService interface {
	Create(ctx context.Context, input CreateDraftInput) (*models.EventDraft, error)
	GetByID(ctx context.Context, id string) (*models.EventDraft, error)
	Cancel(ctx context.Context, id string) error
	UpdateBasicInfo(ctx context.Context, id string, input BasicInfoInput) (*models.EventDraft, error)
	UpdateSchedule(ctx context.Context, id string, input ScheduleInput) (*models.EventDraft, error)
	Advance(ctx context.Context, id string) (models.WizardStep, error)
	Retreat(ctx context.Context, id string) (models.WizardStep, bool, error)
	AttachPoster(ctx context.Context, id string, upload AssetUpload) (*models.EventDraft, error)
	AttachSeatChart(ctx context.Context, id string, upload AssetUpload) (*models.EventDraft, error)
}

type CreateDraftInput struct {
	OrganizerID string
}

type BasicInfoInput struct {
	Name        string
	LocationID  string
	Level       string
	Description string
}

type ScheduleInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	EventType models.EventType
	// Смена event_type при заполненном противоположном реестре стирает его
	// содержимое; без подтверждения операция отклоняется.
	ConfirmDiscard bool
}

type AssetUpload struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

// Допустимые типы изображений для постера и схемы зала.
var assetExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type draftService struct {
	drafts   repositories.DraftRepository
	refData  RefDataService
	uploader storage.FileUploader
	hub      Notifier
	logger   *slog.Logger
}

func NewDraftService(
	drafts repositories.DraftRepository,
	refData RefDataService,
	uploader storage.FileUploader,
	hub Notifier,
	logger *slog.Logger,
) DraftService {
	return &draftService{
		drafts:   drafts,
		refData:  refData,
		uploader: uploader,
		hub:      hub,
		logger:   logger,
	}
}

func (s *draftService) Create(ctx context.Context, input CreateDraftInput) (*models.EventDraft, error) {
	draft := &models.EventDraft{
		ID:            uuid.NewString(),
		OrganizerID:   input.OrganizerID,
		EventType:     models.EventTypeRegistration,
		Status:        models.DraftStatusPreparing,
		Step:          models.StepBasicInfo,
		WeightClasses: []models.WeightClass{},
		Matches:       []models.Match{},
		SeatZones:     []models.SeatZone{},
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.drafts.Create(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}

	// Справочники подтягиваются один раз на сессию, в фоне. Если сессию
	// закроют раньше, результат будет отброшен (черновика уже не будет).
	go s.refData.Load(context.WithoutCancel(ctx), draft.ID)

	return s.GetByID(ctx, draft.ID)
}

func (s *draftService) GetByID(ctx context.Context, id string) (*models.EventDraft, error) {
	draft, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDraftNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get draft %s: %w", id, err)
	}
	s.decorateAssetURLs(draft)
	return draft, nil
}

func (s *draftService) Cancel(ctx context.Context, id string) error {
	draft, err := s.drafts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDraftNotFound) {
			return ErrDraftNotFound
		}
		return err
	}

	if err := s.drafts.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrDraftNotFound) {
			return ErrDraftNotFound
		}
		return err
	}

	// Загруженные ассеты больше никому не нужны.
	for _, key := range []*string{draft.PosterKey, draft.SeatChartKey} {
		if key == nil {
			continue
		}
		if delErr := s.uploader.Delete(ctx, *key); delErr != nil {
			s.logger.Warn("failed to delete draft asset",
				slog.String("draft_id", id),
				slog.String("key", *key),
				slog.Any("error", delErr))
		}
	}
	return nil
}

func (s *draftService) UpdateBasicInfo(ctx context.Context, id string, input BasicInfoInput) (*models.EventDraft, error) {
	err := s.mutate(ctx, id, func(d *models.EventDraft) error {
		if input.LocationID != "" && input.LocationID != d.LocationID {
			if !d.Reference.PlacesReady {
				return ErrReferenceDataUnavailable
			}
			if !d.Reference.HasPlace(input.LocationID) {
				return ErrPlaceNotFound
			}
			d.LocationID = input.LocationID
		}
		d.Name = input.Name
		d.Level = input.Level
		d.Description = input.Description
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *draftService) UpdateSchedule(ctx context.Context, id string, input ScheduleInput) (*models.EventDraft, error) {
	var typeChanged bool
	err := s.mutate(ctx, id, func(d *models.EventDraft) error {
		start, end := d.StartDate, d.EndDate
		if input.StartDate != nil {
			t := truncateToDay(*input.StartDate)
			start = &t
		}
		if input.EndDate != nil {
			t := truncateToDay(*input.EndDate)
			end = &t
		}
		if start != nil && end != nil && end.Before(*start) {
			return ErrInvalidDateRange
		}
		// Сужение диапазона не должно оставить матчи за его пределами.
		if start != nil && end != nil {
			for i := range d.Matches {
				if d.Matches[i].MatchDate.Before(*start) || d.Matches[i].MatchDate.After(*end) {
					return ErrMatchDateOutOfRange
				}
			}
		}

		if input.EventType != "" && input.EventType != d.EventType {
			switch input.EventType {
			case models.EventTypeTicketSales:
				if len(d.WeightClasses) > 0 || len(d.Matches) > 0 {
					if !input.ConfirmDiscard {
						return ErrDiscardNotConfirmed
					}
					d.WeightClasses = []models.WeightClass{}
					d.Matches = []models.Match{}
				}
			case models.EventTypeRegistration:
				if len(d.SeatZones) > 0 {
					if !input.ConfirmDiscard {
						return ErrDiscardNotConfirmed
					}
					d.SeatZones = []models.SeatZone{}
				}
			default:
				return ErrEventTypeInvalid
			}
			d.EventType = input.EventType
			typeChanged = true
		}

		d.StartDate, d.EndDate = start, end
		return nil
	})
	if err != nil {
		return nil, err
	}
	if typeChanged {
		s.hub.NotifyDraft(id, NoticeEventTypeChanged, map[string]string{"event_type": string(input.EventType)})
	}
	return s.GetByID(ctx, id)
}

func (s *draftService) Advance(ctx context.Context, id string) (models.WizardStep, error) {
	var step models.WizardStep
	err := s.mutate(ctx, id, func(d *models.EventDraft) error {
		step = d.Step
		if err := ValidateStep(d, d.Step); err != nil {
			return err
		}
		if d.Step < models.StepReview {
			d.Step++
		}
		step = d.Step
		return nil
	})
	if err != nil {
		return step, err
	}
	s.hub.NotifyDraft(id, NoticeStepChanged, map[string]interface{}{"step": int(step)})
	return step, nil
}

// Retreat moves one step back without validation. From the first step it
// reports exit=true and leaves the draft untouched; closing the session is
// the caller's decision.
func (s *draftService) Retreat(ctx context.Context, id string) (models.WizardStep, bool, error) {
	var (
		step models.WizardStep
		exit bool
	)
	err := s.mutate(ctx, id, func(d *models.EventDraft) error {
		if d.Step == models.StepBasicInfo {
			step = d.Step
			exit = true
			return nil
		}
		d.Step--
		step = d.Step
		return nil
	})
	if err != nil {
		return step, false, err
	}
	if !exit {
		s.hub.NotifyDraft(id, NoticeStepChanged, map[string]interface{}{"step": int(step)})
	}
	return step, exit, nil
}

func (s *draftService) AttachPoster(ctx context.Context, id string, upload AssetUpload) (*models.EventDraft, error) {
	return s.attachAsset(ctx, id, upload, "poster",
		func(d *models.EventDraft) **string { return &d.PosterKey })
}

func (s *draftService) AttachSeatChart(ctx context.Context, id string, upload AssetUpload) (*models.EventDraft, error) {
	return s.attachAsset(ctx, id, upload, "seat-chart",
		func(d *models.EventDraft) **string { return &d.SeatChartKey })
}

func (s *draftService) attachAsset(
	ctx context.Context,
	id string,
	upload AssetUpload,
	kind string,
	keyField func(d *models.EventDraft) **string,
) (*models.EventDraft, error) {
	ext, ok := assetExtensions[upload.ContentType]
	if !ok {
		return nil, ErrUnsupportedAsset
	}
	if !s.drafts.Exists(ctx, id) {
		return nil, ErrDraftNotFound
	}

	key := fmt.Sprintf("drafts/%s/%s-%s%s", id, kind, uuid.NewString(), ext)
	result, err := s.uploader.Upload(ctx, key, upload.ContentType, upload.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAssetUploadFailed, err)
	}

	var oldKey *string
	err = s.mutate(ctx, id, func(d *models.EventDraft) error {
		field := keyField(d)
		oldKey = *field
		*field = &result.Key
		return nil
	})
	if err != nil {
		// Черновик исчез, пока шла загрузка — подчищаем объект.
		if delErr := s.uploader.Delete(ctx, result.Key); delErr != nil {
			s.logger.Warn("failed to delete orphaned asset", slog.String("key", result.Key), slog.Any("error", delErr))
		}
		return nil, err
	}
	if oldKey != nil {
		if delErr := s.uploader.Delete(ctx, *oldKey); delErr != nil {
			s.logger.Warn("failed to delete replaced asset", slog.String("key", *oldKey), slog.Any("error", delErr))
		}
	}
	return s.GetByID(ctx, id)
}

func (s *draftService) decorateAssetURLs(d *models.EventDraft) {
	if d.PosterKey != nil {
		url := s.uploader.GetPublicURL(*d.PosterKey)
		d.PosterURL = &url
	}
	if d.SeatChartKey != nil {
		url := s.uploader.GetPublicURL(*d.SeatChartKey)
		d.SeatChartURL = &url
	}
}

func (s *draftService) mutate(ctx context.Context, id string, fn func(d *models.EventDraft) error) error {
	return mutateDraft(ctx, s.drafts, id, fn)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
