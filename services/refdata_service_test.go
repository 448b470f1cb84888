package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefDataService_Load(t *testing.T) {
	t.Parallel()

	t.Run("fills cache and notifies", func(t *testing.T) {
		t.Parallel()

		repo := repositories.NewInMemoryDraftRepository()
		api := new(mockBackendClient)
		notifier := &recordingNotifier{}
		svc := NewRefDataService(repo, api, notifier, discardLogger())

		draft := seedDraft(t, repo)
		api.On("ListBoxers", mock.Anything).Return(testBoxers, nil)
		api.On("ListPlaces", mock.Anything).Return(testPlaces, nil)

		svc.Load(context.Background(), draft.ID)

		stored, err := repo.GetByID(context.Background(), draft.ID)
		require.NoError(t, err)
		assert.True(t, stored.Reference.Ready())
		assert.Len(t, stored.Reference.Boxers, len(testBoxers))
		assert.Len(t, stored.Reference.Places, len(testPlaces))
		assert.False(t, stored.Reference.LoadFailed)
		assert.Equal(t, []string{NoticeReferenceDataReady}, notifier.typesFor(draft.ID))
	})

	t.Run("marks failure when either list fails", func(t *testing.T) {
		t.Parallel()

		repo := repositories.NewInMemoryDraftRepository()
		api := new(mockBackendClient)
		notifier := &recordingNotifier{}
		svc := NewRefDataService(repo, api, notifier, discardLogger())

		draft := seedDraft(t, repo)
		api.On("ListBoxers", mock.Anything).Return(testBoxers, nil)
		api.On("ListPlaces", mock.Anything).Return(nil, errors.New("backend down"))

		svc.Load(context.Background(), draft.ID)

		stored, err := repo.GetByID(context.Background(), draft.ID)
		require.NoError(t, err)
		assert.False(t, stored.Reference.Ready())
		assert.True(t, stored.Reference.LoadFailed)
		assert.Equal(t, []string{NoticeReferenceDataError}, notifier.typesFor(draft.ID))
	})

	// Сессию закрыли, пока списки были в полёте: результат тихо
	// отбрасывается, уведомлений нет.
	t.Run("discards result when draft is gone", func(t *testing.T) {
		t.Parallel()

		repo := repositories.NewInMemoryDraftRepository()
		api := new(mockBackendClient)
		notifier := &recordingNotifier{}
		svc := NewRefDataService(repo, api, notifier, discardLogger())

		draft := seedDraft(t, repo)
		require.NoError(t, repo.Delete(context.Background(), draft.ID))

		api.On("ListBoxers", mock.Anything).Return(testBoxers, nil)
		api.On("ListPlaces", mock.Anything).Return(testPlaces, nil)

		svc.Load(context.Background(), draft.ID)

		assert.Empty(t, notifier.typesFor(draft.ID))
	})
}

func TestRefDataService_Retry(t *testing.T) {
	t.Parallel()

	t.Run("recovers after transient failure", func(t *testing.T) {
		t.Parallel()

		repo := repositories.NewInMemoryDraftRepository()
		api := new(mockBackendClient)
		notifier := &recordingNotifier{}
		svc := NewRefDataService(repo, api, notifier, discardLogger())

		draft := seedDraft(t, repo, func(d *models.EventDraft) {
			d.Reference.LoadFailed = true
		})
		api.On("ListBoxers", mock.Anything).Return(testBoxers, nil)
		api.On("ListPlaces", mock.Anything).Return(testPlaces, nil)

		require.NoError(t, svc.Retry(context.Background(), draft.ID))

		stored, err := repo.GetByID(context.Background(), draft.ID)
		require.NoError(t, err)
		assert.True(t, stored.Reference.Ready())
	})

	t.Run("reports persistent failure", func(t *testing.T) {
		t.Parallel()

		repo := repositories.NewInMemoryDraftRepository()
		api := new(mockBackendClient)
		svc := NewRefDataService(repo, api, &recordingNotifier{}, discardLogger())

		draft := seedDraft(t, repo)
		api.On("ListBoxers", mock.Anything).Return(nil, errors.New("still down"))
		api.On("ListPlaces", mock.Anything).Return(testPlaces, nil)

		err := svc.Retry(context.Background(), draft.ID)
		require.ErrorIs(t, err, ErrReferenceDataLoadFailed)
	})

	t.Run("unknown draft", func(t *testing.T) {
		t.Parallel()

		repo := repositories.NewInMemoryDraftRepository()
		svc := NewRefDataService(repo, new(mockBackendClient), &recordingNotifier{}, discardLogger())

		err := svc.Retry(context.Background(), "missing")
		require.ErrorIs(t, err, ErrDraftNotFound)
	})
}
