package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dosada05/event-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_ListBoxers(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/boxers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"boxer-1","first_name":"Ivan","last_name":"Petrov","gender":"male"}]`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	boxers, err := client.ListBoxers(context.Background())
	require.NoError(t, err)
	require.Len(t, boxers, 1)
	assert.Equal(t, "boxer-1", boxers[0].ID)
	assert.Equal(t, models.GenderMale, boxers[0].Gender)
}

func TestHTTPClient_ListPlaces_BackendError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	_, err := client.ListPlaces(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPClient_ResolveImage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/poster-ref", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn.test/poster.png"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	url, err := client.ResolveImage(context.Background(), "poster-ref")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/poster.png", url)
}

// Контракт отправки: скаляры — полями формы, реестры — JSON-строками,
// ассеты — файловыми частями с историческими именами полей.
func TestHTTPClient_SubmitEvent(t *testing.T) {
	t.Parallel()

	payload := &models.SubmissionPayload{
		OrganizerID: "org-1",
		LocationID:  "place-1",
		EventName:   "City Boxing Cup",
		Level:       "regional",
		Description: "annual cup",
		StartDate:   "2025-05-01",
		EndDate:     "2025-05-31",
		EventType:   "registration",
		Status:      "preparing",
		WeightClasses: []models.PayloadWeightClass{
			{
				Gender:        "male",
				WeighName:     "Lightweight",
				MinWeight:     58.967,
				MaxWeight:     61.235,
				MaxEnrollment: 2,
				Matches: []models.PayloadMatch{
					{MatchDate: "2025-05-10", MatchTime: "2025-05-10T19:00:00Z", Boxer1ID: "boxer-1", Boxer2ID: "boxer-2"},
				},
			},
		},
		SeatZones: []models.PayloadSeatZone{},
	}
	assets := []Asset{
		{FieldName: "poster_url", FileName: "poster.png", ContentType: "image/png", Reader: strings.NewReader("poster-bytes")},
		{FieldName: "seatZone_url", FileName: "chart.png", ContentType: "image/png", Reader: strings.NewReader("chart-bytes")},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/events", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "org-1", r.FormValue("organizer_id"))
		assert.Equal(t, "City Boxing Cup", r.FormValue("event_name"))
		assert.Equal(t, "2025-05-01", r.FormValue("start_date"))
		assert.Equal(t, "registration", r.FormValue("event_type"))
		assert.Equal(t, "preparing", r.FormValue("status"))

		var classes []models.PayloadWeightClass
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("weight_classes")), &classes))
		require.Len(t, classes, 1)
		assert.Equal(t, "Lightweight", classes[0].WeighName)
		require.Len(t, classes[0].Matches, 1)
		assert.Equal(t, "boxer-1", classes[0].Matches[0].Boxer1ID)

		// Историческое имя поля weigh_name уходит как есть.
		assert.Contains(t, r.FormValue("weight_classes"), `"weigh_name":"Lightweight"`)
		assert.Equal(t, "[]", r.FormValue("seat_zones"))

		poster, header, err := r.FormFile("poster_url")
		require.NoError(t, err)
		defer poster.Close()
		assert.Equal(t, "poster.png", header.Filename)
		data, err := io.ReadAll(poster)
		require.NoError(t, err)
		assert.Equal(t, "poster-bytes", string(data))

		chart, _, err := r.FormFile("seatZone_url")
		require.NoError(t, err)
		defer chart.Close()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"event_id":"event-42"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	eventID, err := client.SubmitEvent(context.Background(), payload, assets)
	require.NoError(t, err)
	assert.Equal(t, "event-42", eventID)
}

func TestHTTPClient_SubmitEvent_Rejected(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	_, err := client.SubmitEvent(context.Background(), &models.SubmissionPayload{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestHTTPClient_SubmitEvent_SeatZonesContract(t *testing.T) {
	t.Parallel()

	payload := &models.SubmissionPayload{
		EventType: "ticket_sales",
		Status:    "preparing",
		SeatZones: []models.PayloadSeatZone{
			{ZoneName: "VIP", NumberOfSeat: 3, Price: 2000},
		},
		WeightClasses: []models.PayloadWeightClass{},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "[]", r.FormValue("weight_classes"))
		assert.JSONEq(t, `[{"zone_name":"VIP","number_of_seat":3,"price":2000}]`, r.FormValue("seat_zones"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"event_id":"event-7"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	eventID, err := client.SubmitEvent(context.Background(), payload, nil)
	require.NoError(t, err)
	assert.Equal(t, "event-7", eventID)
}
