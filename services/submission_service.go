package services

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/Dosada05/event-console/backend"
	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/repositories"
	"github.com/Dosada05/event-console/storage"
)

const dateLayout = "2006-01-02"

// SubmissionService собирает черновик в полезную нагрузку и выполняет
// единственную мутацию против бэкенда.
type SubmissionService interface {
	// Assemble — чистое чтение: на неизменённых реестрах повторные вызовы
	// дают идентичную полезную нагрузку.
	Assemble(ctx context.Context, draftID string) (*models.SubmissionPayload, error)
	Submit(ctx context.Context, draftID string) (string, error)
}

type submissionService struct {
	drafts   repositories.DraftRepository
	api      backend.Client
	uploader storage.FileUploader
	hub      Notifier
	logger   *slog.Logger
}

func NewSubmissionService(
	drafts repositories.DraftRepository,
	api backend.Client,
	uploader storage.FileUploader,
	hub Notifier,
	logger *slog.Logger,
) SubmissionService {
	return &submissionService{
		drafts:   drafts,
		api:      api,
		uploader: uploader,
		hub:      hub,
		logger:   logger,
	}
}

func (s *submissionService) Assemble(ctx context.Context, draftID string) (*models.SubmissionPayload, error) {
	draft, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		return nil, ErrDraftNotFound
	}

	// Защитный финальный шлюз: пользователь мог дойти до Review с
	// устаревшим состоянием, поэтому правила всех шагов проверяются заново.
	if err = validateAllSteps(draft); err != nil {
		return nil, err
	}

	payload := &models.SubmissionPayload{
		OrganizerID:   draft.OrganizerID,
		LocationID:    draft.LocationID,
		EventName:     draft.Name,
		Level:         draft.Level,
		Description:   draft.Description,
		StartDate:     draft.StartDate.Format(dateLayout),
		EndDate:       draft.EndDate.Format(dateLayout),
		EventType:     string(draft.EventType),
		Status:        string(draft.Status),
		WeightClasses: make([]models.PayloadWeightClass, 0, len(draft.WeightClasses)),
		SeatZones:     make([]models.PayloadSeatZone, 0, len(draft.SeatZones)),
	}

	// weight_classes присутствует всегда, даже пустым; matches внутри
	// категории заполняется только когда матчи есть.
	for _, wc := range draft.WeightClasses {
		pwc := models.PayloadWeightClass{
			Gender:        string(wc.Gender),
			WeighName:     wc.Name,
			MinWeight:     wc.MinWeight,
			MaxWeight:     wc.MaxWeight,
			MaxEnrollment: wc.MaxEnrollment,
		}
		for _, matchID := range wc.MatchIDs {
			m := draft.MatchByID(matchID)
			if m == nil {
				continue
			}
			pwc.Matches = append(pwc.Matches, models.PayloadMatch{
				MatchDate: m.MatchDate.Format(dateLayout),
				MatchTime: m.MatchTime.Format(time.RFC3339),
				Boxer1ID:  m.Boxer1ID,
				Boxer2ID:  m.Boxer2ID,
			})
		}
		payload.WeightClasses = append(payload.WeightClasses, pwc)
	}

	for _, sz := range draft.SeatZones {
		payload.SeatZones = append(payload.SeatZones, models.PayloadSeatZone{
			ZoneName:     sz.Name,
			NumberOfSeat: sz.SeatCount,
			Price:        sz.Price,
		})
	}

	return payload, nil
}

// Submit assembles the draft and calls the upstream submit operation exactly
// once. On failure no store is mutated: the user may retry and the same
// payload will be produced again.
func (s *submissionService) Submit(ctx context.Context, draftID string) (string, error) {
	payload, err := s.Assemble(ctx, draftID)
	if err != nil {
		return "", err
	}

	draft, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		return "", ErrDraftNotFound
	}

	assets, closeAssets, err := s.collectAssets(ctx, draft)
	if err != nil {
		return "", err
	}
	defer closeAssets()

	eventID, err := s.api.SubmitEvent(ctx, payload, assets)
	if err != nil {
		s.logger.Error("event submission failed",
			slog.String("draft_id", draftID),
			slog.Any("error", err))
		s.hub.NotifyDraft(draftID, NoticeSubmissionFailed, map[string]string{"error": err.Error()})
		return "", fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	// Успех: черновик своё отслужил, сессия сбрасывается.
	if delErr := s.drafts.Delete(ctx, draftID); delErr != nil {
		s.logger.Warn("failed to delete submitted draft", slog.String("draft_id", draftID), slog.Any("error", delErr))
	}
	for _, key := range []*string{draft.PosterKey, draft.SeatChartKey} {
		if key == nil {
			continue
		}
		if delErr := s.uploader.Delete(ctx, *key); delErr != nil {
			s.logger.Warn("failed to delete submitted asset", slog.String("key", *key), slog.Any("error", delErr))
		}
	}

	s.hub.NotifyDraft(draftID, NoticeDraftSubmitted, map[string]string{"event_id": eventID})
	return eventID, nil
}

// collectAssets стримит постер и схему зала из хранилища в файловые части
// формы. Имена полей — исторические имена контракта.
func (s *submissionService) collectAssets(ctx context.Context, draft *models.EventDraft) ([]backend.Asset, func(), error) {
	type namedKey struct {
		field string
		key   *string
	}
	wanted := []namedKey{
		{field: "poster_url", key: draft.PosterKey},
		{field: "seatZone_url", key: draft.SeatChartKey},
	}

	var assets []backend.Asset
	closeAll := func() {
		for _, a := range assets {
			if closer, ok := a.Reader.(interface{ Close() error }); ok {
				_ = closer.Close()
			}
		}
	}

	for _, w := range wanted {
		if w.key == nil {
			continue
		}
		reader, contentType, err := s.uploader.Download(ctx, *w.key)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
		}
		assets = append(assets, backend.Asset{
			FieldName:   w.field,
			FileName:    path.Base(*w.key),
			ContentType: contentType,
			Reader:      reader,
		})
	}
	return assets, closeAll, nil
}
