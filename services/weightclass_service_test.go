package services

import (
	"context"
	"testing"

	"github.com/Dosada05/event-console/catalog"
	"github.com/Dosada05/event-console/models"
	"github.com/Dosada05/event-console/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWeightClassFixture(t *testing.T) (WeightClassService, repositories.DraftRepository) {
	t.Helper()
	repo := repositories.NewInMemoryDraftRepository()
	return NewWeightClassService(repo, catalog.NewBuiltinProvider()), repo
}

func TestWeightClassService_Add(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		input       WeightClassInput
		expectedErr error
	}{
		{
			name:  "resolves range from catalog",
			input: WeightClassInput{Gender: models.GenderMale, CatalogEntryID: "lightweight", MaxEnrollment: 8},
		},
		{
			name:        "gender required",
			input:       WeightClassInput{CatalogEntryID: "lightweight", MaxEnrollment: 8},
			expectedErr: ErrGenderRequired,
		},
		{
			name:        "unknown catalog entry",
			input:       WeightClassInput{Gender: models.GenderMale, CatalogEntryID: "openweight", MaxEnrollment: 8},
			expectedErr: ErrCatalogEntryNotFound,
		},
		{
			name:        "max enrollment must be positive",
			input:       WeightClassInput{Gender: models.GenderMale, CatalogEntryID: "lightweight", MaxEnrollment: 0},
			expectedErr: ErrInvalidMaxEnrollment,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, repo := newWeightClassFixture(t)
			draft := seedDraft(t, repo)

			wc, err := svc.Add(context.Background(), draft.ID, tc.input)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				stored, getErr := repo.GetByID(context.Background(), draft.ID)
				require.NoError(t, getErr)
				assert.Empty(t, stored.WeightClasses)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, wc.ID)
			assert.Equal(t, "Lightweight", wc.Name)
			assert.Equal(t, 58.967, wc.MinWeight)
			assert.Equal(t, 61.235, wc.MaxWeight)
			assert.Equal(t, 8, wc.MaxEnrollment)
			assert.Empty(t, wc.MatchIDs)
		})
	}
}

func TestWeightClassService_Add_DraftNotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newWeightClassFixture(t)
	_, err := svc.Add(context.Background(), "missing", WeightClassInput{
		Gender:         models.GenderMale,
		CatalogEntryID: "lightweight",
		MaxEnrollment:  4,
	})
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestWeightClassService_Update(t *testing.T) {
	t.Parallel()

	svc, repo := newWeightClassFixture(t)
	draft := seedDraft(t, repo)

	wc, err := svc.Add(context.Background(), draft.ID, WeightClassInput{
		Gender:         models.GenderFemale,
		CatalogEntryID: "featherweight",
		MaxEnrollment:  4,
	})
	require.NoError(t, err)

	t.Run("raise enrollment only", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), draft.ID, wc.ID, UpdateWeightClassInput{MaxEnrollment: 10})
		require.NoError(t, err)
		assert.Equal(t, 10, updated.MaxEnrollment)
		assert.Equal(t, "featherweight", updated.CatalogEntryID)
	})

	t.Run("reselect catalog entry", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), draft.ID, wc.ID, UpdateWeightClassInput{
			MaxEnrollment:  10,
			Gender:         models.GenderFemale,
			CatalogEntryID: "bantamweight",
		})
		require.NoError(t, err)
		assert.Equal(t, "Bantamweight", updated.Name)
		assert.Equal(t, 52.163, updated.MinWeight)
		assert.Equal(t, 53.524, updated.MaxWeight)
	})

	t.Run("unknown class", func(t *testing.T) {
		_, err := svc.Update(context.Background(), draft.ID, "missing", UpdateWeightClassInput{MaxEnrollment: 2})
		require.ErrorIs(t, err, ErrWeightClassNotFound)
	})
}

// Удаление категории должно утянуть за собой все её матчи: «осиротевшие»
// матчи недопустимы.
func TestWeightClassService_Remove_CascadesMatches(t *testing.T) {
	t.Parallel()

	repo := repositories.NewInMemoryDraftRepository()
	classes := NewWeightClassService(repo, catalog.NewBuiltinProvider())
	matches := NewMatchService(repo, classes)

	draft := seedDraft(t, repo, withReferenceData, withDateRange("2025-05-01", "2025-05-31"))

	day := mustDay("2025-05-10")
	first, err := matches.Add(context.Background(), draft.ID, MatchInput{
		Boxer1ID: "boxer-1", Boxer2ID: "boxer-2",
		Date: day, Hour: 18, Minute: 0,
		Gender: models.GenderMale, CatalogEntryID: "lightweight",
	})
	require.NoError(t, err)
	_, err = matches.Add(context.Background(), draft.ID, MatchInput{
		Boxer1ID: "boxer-2", Boxer2ID: "boxer-1",
		Date: day, Hour: 20, Minute: 30,
		Gender: models.GenderMale, CatalogEntryID: "lightweight",
	})
	require.NoError(t, err)

	// Категория из другой пары (gender, entry) остаётся нетронутой.
	keptClass, err := classes.Add(context.Background(), draft.ID, WeightClassInput{
		Gender: models.GenderFemale, CatalogEntryID: "featherweight", MaxEnrollment: 4,
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	require.Len(t, stored.Matches, 2)
	require.Len(t, stored.WeightClasses, 2)

	require.NoError(t, classes.Remove(context.Background(), draft.ID, first.WeightClassID))

	stored, err = repo.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Matches)
	require.Len(t, stored.WeightClasses, 1)
	assert.Equal(t, keptClass.ID, stored.WeightClasses[0].ID)
}

func TestWeightClassService_Remove_NotFound(t *testing.T) {
	t.Parallel()

	svc, repo := newWeightClassFixture(t)
	draft := seedDraft(t, repo)

	err := svc.Remove(context.Background(), draft.ID, "missing")
	require.ErrorIs(t, err, ErrWeightClassNotFound)
}
