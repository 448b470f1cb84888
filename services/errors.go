package services

import "errors"

// Общие ошибки сервисного слоя и их маппинг в HTTP живут в handlers.
// Таксономия: ошибки валидации (исправимы пользователем, состояние не
// меняется), ошибки справочных данных (лечатся повтором загрузки) и ошибка
// отправки (полезная нагрузка не теряется, можно отправить ещё раз).
var (
	ErrDraftNotFound         = errors.New("event draft not found")
	ErrDraftAlreadySubmitted = errors.New("event draft has already been submitted")

	// Ошибки валидации шагов
	ErrEventNameRequired   = errors.New("event name is required")
	ErrLocationRequired    = errors.New("event location must be selected")
	ErrLevelRequired       = errors.New("event level must be selected")
	ErrDateRangeRequired   = errors.New("start and end dates must both be set")
	ErrInvalidDateRange    = errors.New("event end date must not be before start date")
	ErrEventTypeInvalid    = errors.New("invalid event type")
	ErrWeightClassRequired = errors.New("registration event requires at least one weight class")
	ErrSeatZoneRequired    = errors.New("ticket sales event requires at least one seat zone")
	ErrMatchRequired       = errors.New("ticket sales event requires at least one match")

	// Ошибки валидации сущностей
	ErrGenderRequired       = errors.New("weight class gender must be selected")
	ErrCatalogEntryNotFound = errors.New("weight class catalog entry not found")
	ErrInvalidMaxEnrollment = errors.New("weight class max enrollment must be positive")
	ErrWeightClassNotFound  = errors.New("weight class not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrSeatZoneNotFound     = errors.New("seat zone not found")
	ErrSameBoxer            = errors.New("a match requires two distinct boxers")
	ErrBoxerNotFound        = errors.New("boxer is not present in the reference list")
	ErrPlaceNotFound        = errors.New("place is not present in the reference list")
	ErrMatchDateOutOfRange  = errors.New("match date must fall within the event date range")
	ErrZoneNameRequired     = errors.New("seat zone name is required")
	ErrInvalidSeatCount     = errors.New("seat zone seat count must be positive")
	ErrInvalidPrice         = errors.New("seat zone price must not be negative")
	ErrDiscardNotConfirmed  = errors.New("changing the event type discards existing entries and must be confirmed")

	// Ошибки справочных данных
	ErrReferenceDataUnavailable = errors.New("reference data is not loaded yet")
	ErrReferenceDataLoadFailed  = errors.New("failed to load reference data")

	// Ошибки отправки
	ErrSubmissionFailed = errors.New("event submission failed")

	// Ошибки загрузки файлов
	ErrAssetUploadFailed = errors.New("failed to upload asset")
	ErrUnsupportedAsset  = errors.New("unsupported asset content type")
)
