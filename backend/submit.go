package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Dosada05/event-console/models"
)

// SubmitEvent отправляет собранное событие одним multipart-запросом:
// скалярные поля — отдельными полями формы, weight_classes и seat_zones —
// JSON-строками, ассеты — файловыми частями. Возвращает id созданного
// события.
func (c *httpClient) SubmitEvent(ctx context.Context, payload *models.SubmissionPayload, assets []Asset) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writeScalarFields(writer, payload); err != nil {
		return "", fmt.Errorf("failed to encode submission form: %w", err)
	}

	weightClasses, err := json.Marshal(payload.WeightClasses)
	if err != nil {
		return "", fmt.Errorf("failed to encode weight classes: %w", err)
	}
	if err = writer.WriteField("weight_classes", string(weightClasses)); err != nil {
		return "", err
	}

	seatZones, err := json.Marshal(payload.SeatZones)
	if err != nil {
		return "", fmt.Errorf("failed to encode seat zones: %w", err)
	}
	if err = writer.WriteField("seat_zones", string(seatZones)); err != nil {
		return "", err
	}

	for _, asset := range assets {
		part, partErr := writer.CreateFormFile(asset.FieldName, asset.FileName)
		if partErr != nil {
			return "", partErr
		}
		if _, copyErr := io.Copy(part, asset.Reader); copyErr != nil {
			return "", fmt.Errorf("failed to write asset %s: %w", asset.FieldName, copyErr)
		}
	}

	if err = writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/events", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("backend rejected submission with status %d", resp.StatusCode)
	}

	var result struct {
		EventID string `json:"event_id"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode submission response: %w", err)
	}
	return result.EventID, nil
}

func writeScalarFields(writer *multipart.Writer, p *models.SubmissionPayload) error {
	fields := map[string]string{
		"organizer_id": p.OrganizerID,
		"location_id":  p.LocationID,
		"event_name":   p.EventName,
		"level":        p.Level,
		"description":  p.Description,
		"start_date":   p.StartDate,
		"end_date":     p.EndDate,
		"event_type":   p.EventType,
		"status":       p.Status,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return err
		}
	}
	return nil
}
