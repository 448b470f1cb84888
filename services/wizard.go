package services

import (
	"strings"

	"github.com/Dosada05/event-console/models"
)

// Типы уведомлений, которые сервисы рассылают в канал сессии мастера.
const (
	NoticeStepChanged        = "STEP_CHANGED"
	NoticeEventTypeChanged   = "EVENT_TYPE_CHANGED"
	NoticeReferenceDataError = "REFERENCE_DATA_ERROR"
	NoticeReferenceDataReady = "REFERENCE_DATA_READY"
	NoticeSubmissionFailed   = "SUBMISSION_FAILED"
	NoticeDraftSubmitted     = "DRAFT_SUBMITTED"
)

// Notifier delivers out-of-band notices to the wizard UI for one draft.
type Notifier interface {
	NotifyDraft(draftID string, noticeType string, payload interface{})
}

// ValidateStep runs the gate of a single wizard step against the draft.
// Advance uses it for the active step; the submission assembler re-runs it
// for every step as the final defensive gate.
func ValidateStep(d *models.EventDraft, step models.WizardStep) error {
	switch step {
	case models.StepBasicInfo:
		if strings.TrimSpace(d.Name) == "" {
			return ErrEventNameRequired
		}
		if d.LocationID == "" {
			return ErrLocationRequired
		}
		if strings.TrimSpace(d.Level) == "" {
			return ErrLevelRequired
		}

	case models.StepScheduleDetails:
		if d.StartDate == nil || d.EndDate == nil {
			return ErrDateRangeRequired
		}
		if d.EndDate.Before(*d.StartDate) {
			return ErrInvalidDateRange
		}
		switch d.EventType {
		case models.EventTypeRegistration:
			if len(d.WeightClasses) == 0 {
				return ErrWeightClassRequired
			}
		case models.EventTypeTicketSales:
			if len(d.SeatZones) == 0 {
				return ErrSeatZoneRequired
			}
		default:
			return ErrEventTypeInvalid
		}

	case models.StepMatches:
		// Для registration шаг проходной.
		if d.EventType == models.EventTypeTicketSales && len(d.Matches) == 0 {
			return ErrMatchRequired
		}

	case models.StepReview:
		// Последний шаг ворот не имеет, здесь доступен Submit.
	}
	return nil
}

// validateAllSteps re-checks every step rule in one pass. Protects the
// submission path against a draft that reached review in a stale state.
func validateAllSteps(d *models.EventDraft) error {
	for step := models.StepBasicInfo; step <= models.StepReview; step++ {
		if err := ValidateStep(d, step); err != nil {
			return err
		}
	}
	return nil
}
