package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Dosada05/event-console/services" // Импортируем для маппинга ошибок сервисов
	"github.com/go-playground/validator/v10"
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err) // Паника, т.к. это ошибка программиста (передан не указатель)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	if err != nil {
		return err
	}

	return nil
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// failedValidationResponse разворачивает ошибки validator/v10 в карту
// поле → сообщение.
func failedValidationResponse(w http.ResponseWriter, r *http.Request, errs validator.ValidationErrors) {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		switch fe.ActualTag() {
		case "required":
			fields[fe.Field()] = "this field is required"
		default:
			fields[fe.Field()] = fmt.Sprintf("failed on the %q rule", fe.ActualTag())
		}
	}
	errorResponse(w, r, http.StatusUnprocessableEntity, fields)
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	errorResponse(w, r, http.StatusNotFound, message)
}

func conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusConflict, message)
}

func serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusServiceUnavailable, message)
}

// mapServiceErrorToHTTP преобразует ошибки сервисного слоя в HTTP-ответы.
// Ошибки валидации никогда не выходят за рамки операции: состояние черновика
// не изменено, клиент исправляет поле и повторяет запрос.
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrDraftNotFound),
		errors.Is(err, services.ErrWeightClassNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrSeatZoneNotFound):
		notFoundResponse(w, r)

	// Правила шагов и сущностей
	case errors.Is(err, services.ErrEventNameRequired),
		errors.Is(err, services.ErrLocationRequired),
		errors.Is(err, services.ErrLevelRequired),
		errors.Is(err, services.ErrDateRangeRequired),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrEventTypeInvalid),
		errors.Is(err, services.ErrWeightClassRequired),
		errors.Is(err, services.ErrSeatZoneRequired),
		errors.Is(err, services.ErrMatchRequired),
		errors.Is(err, services.ErrGenderRequired),
		errors.Is(err, services.ErrCatalogEntryNotFound),
		errors.Is(err, services.ErrInvalidMaxEnrollment),
		errors.Is(err, services.ErrSameBoxer),
		errors.Is(err, services.ErrBoxerNotFound),
		errors.Is(err, services.ErrPlaceNotFound),
		errors.Is(err, services.ErrMatchDateOutOfRange),
		errors.Is(err, services.ErrZoneNameRequired),
		errors.Is(err, services.ErrInvalidSeatCount),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrUnsupportedAsset):
		badRequestResponse(w, r, err)

	case errors.Is(err, services.ErrDiscardNotConfirmed),
		errors.Is(err, services.ErrDraftAlreadySubmitted):
		conflictResponse(w, r, err.Error())

	// Справочные данные: лечится повтором загрузки
	case errors.Is(err, services.ErrReferenceDataUnavailable),
		errors.Is(err, services.ErrReferenceDataLoadFailed):
		serviceUnavailableResponse(w, r, err.Error())

	// Отправка: полезная нагрузка не потеряна, можно повторить
	case errors.Is(err, services.ErrSubmissionFailed):
		errorResponse(w, r, http.StatusBadGateway, err.Error())

	default:
		serverErrorResponse(w, r, err)
	}
}
