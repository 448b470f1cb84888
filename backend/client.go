// Package backend — клиент API бэкенда, для которого мастер собирает событие.
// Мастер потребляет ровно четыре операции: списки боксёров и площадок,
// разрешение изображения и единственную мутацию — отправку события.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Dosada05/event-console/models"
)

// Asset — бинарный файл, прикладываемый к отправке как file part.
type Asset struct {
	FieldName   string
	FileName    string
	ContentType string
	Reader      io.Reader
}

// Client is the wizard's view of the upstream API.
type Client interface {
	ListBoxers(ctx context.Context) ([]models.Boxer, error)
	ListPlaces(ctx context.Context) ([]models.Place, error)
	SubmitEvent(ctx context.Context, payload *models.SubmissionPayload, assets []Asset) (string, error)
	ResolveImage(ctx context.Context, assetRef string) (string, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPClient(baseURL string) Client {
	return &httpClient{
		baseURL: baseURL,
		// Таймауты отдаются транспортному слою, ядро своих не накладывает.
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *httpClient) ListBoxers(ctx context.Context) ([]models.Boxer, error) {
	var boxers []models.Boxer
	if err := c.getJSON(ctx, "/boxers", &boxers); err != nil {
		return nil, fmt.Errorf("failed to list boxers: %w", err)
	}
	return boxers, nil
}

func (c *httpClient) ListPlaces(ctx context.Context) ([]models.Place, error) {
	var places []models.Place
	if err := c.getJSON(ctx, "/places", &places); err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	return places, nil
}

func (c *httpClient) ResolveImage(ctx context.Context, assetRef string) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}
	if err := c.getJSON(ctx, "/images/"+assetRef, &resp); err != nil {
		return "", fmt.Errorf("failed to resolve image %q: %w", assetRef, err)
	}
	return resp.URL, nil
}

func (c *httpClient) getJSON(ctx context.Context, path string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
