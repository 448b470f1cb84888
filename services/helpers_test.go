package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Dosada05/event-console/backend"
	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/repositories"
	"github.com/Dosada05/event-console/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations

type mockBackendClient struct {
	mock.Mock
}

func (m *mockBackendClient) ListBoxers(ctx context.Context) ([]models.Boxer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Boxer), args.Error(1)
}

func (m *mockBackendClient) ListPlaces(ctx context.Context) ([]models.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Place), args.Error(1)
}

func (m *mockBackendClient) SubmitEvent(ctx context.Context, payload *models.SubmissionPayload, assets []backend.Asset) (string, error) {
	args := m.Called(ctx, payload, assets)
	return args.String(0), args.Error(1)
}

func (m *mockBackendClient) ResolveImage(ctx context.Context, assetRef string) (string, error) {
	args := m.Called(ctx, assetRef)
	return args.String(0), args.Error(1)
}

// recordingNotifier собирает уведомления, отправленные сервисами за тест.
type recordingNotifier struct {
	mu      sync.Mutex
	notices []recordedNotice
}

type recordedNotice struct {
	DraftID string
	Type    string
	Payload interface{}
}

func (n *recordingNotifier) NotifyDraft(draftID string, noticeType string, payload interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, recordedNotice{DraftID: draftID, Type: noticeType, Payload: payload})
}

func (n *recordingNotifier) typesFor(draftID string) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var types []string
	for _, notice := range n.notices {
		if notice.DraftID == draftID {
			types = append(types, notice.Type)
		}
	}
	return types
}

// fakeUploader держит объекты в памяти, считая загрузки и удаления.
type fakeUploader struct {
	mu      sync.Mutex
	objects map[string]fakeObject
	deleted []string
}

type fakeObject struct {
	contentType string
	data        []byte
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string]fakeObject)}
}

func (u *fakeUploader) Upload(_ context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[key] = fakeObject{contentType: contentType, data: data}
	return &storage.UploadResult{Key: key, Location: "https://assets.test/" + key}, nil
}

func (u *fakeUploader) Download(_ context.Context, key string) (io.ReadCloser, string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	obj, ok := u.objects[key]
	if !ok {
		return nil, "", fmt.Errorf("object %s not found", key)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), obj.contentType, nil
}

func (u *fakeUploader) Delete(_ context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.objects, key)
	u.deleted = append(u.deleted, key)
	return nil
}

func (u *fakeUploader) GetPublicURL(key string) string {
	return "https://assets.test/" + key
}

func (u *fakeUploader) stored(key string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, ok := u.objects[key]
	return ok
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Fixtures

var (
	testBoxers = []models.Boxer{
		{ID: "boxer-1", FirstName: "Ivan", LastName: "Petrov", Gender: models.GenderMale},
		{ID: "boxer-2", FirstName: "Oleg", LastName: "Sidorov", Gender: models.GenderMale},
		{ID: "boxer-3", FirstName: "Anna", LastName: "Ivanova", Gender: models.GenderFemale},
	}
	testPlaces = []models.Place{
		{ID: "place-1", Name: "Central Arena", Address: "Main St 1"},
		{ID: "place-2", Name: "Sports Palace"},
	}
)

func seedDraft(t *testing.T, repo repositories.DraftRepository, opts ...func(*models.EventDraft)) *models.EventDraft {
	t.Helper()

	draft := &models.EventDraft{
		ID:            uuid.NewString(),
		OrganizerID:   "org-1",
		EventType:     models.EventTypeRegistration,
		Status:        models.DraftStatusPreparing,
		Step:          models.StepBasicInfo,
		WeightClasses: []models.WeightClass{},
		Matches:       []models.Match{},
		SeatZones:     []models.SeatZone{},
		CreatedAt:     time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(draft)
	}
	require.NoError(t, repo.Create(context.Background(), draft))
	return draft
}

func withReferenceData(d *models.EventDraft) {
	d.Reference = models.ReferenceCache{
		Boxers:      testBoxers,
		Places:      testPlaces,
		BoxersReady: true,
		PlacesReady: true,
	}
}

func withDateRange(start, end string) func(*models.EventDraft) {
	return func(d *models.EventDraft) {
		s := mustDay(start)
		e := mustDay(end)
		d.StartDate = &s
		d.EndDate = &e
	}
}

func withBasicInfo(d *models.EventDraft) {
	d.Name = "City Boxing Cup"
	d.LocationID = "place-1"
	d.Level = "regional"
}

func mustDay(value string) time.Time {
	day, err := time.Parse(dateLayout, value)
	if err != nil {
		panic(err)
	}
	return day
}
