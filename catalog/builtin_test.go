package catalog

import (
	"testing"

	"github.com/Dosada05/event-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinProvider_Resolve(t *testing.T) {
	t.Parallel()

	provider := NewBuiltinProvider()

	testCases := []struct {
		name        string
		gender      models.Gender
		entryID     string
		expectedErr error
		wantName    string
		wantMin     float64
		wantMax     float64
	}{
		{
			name:     "lightweight range",
			gender:   models.GenderMale,
			entryID:  "lightweight",
			wantName: "Lightweight",
			wantMin:  58.967,
			wantMax:  61.235,
		},
		{
			name:     "featherweight range",
			gender:   models.GenderFemale,
			entryID:  "featherweight",
			wantName: "Featherweight",
			wantMin:  55.338,
			wantMax:  57.153,
		},
		{
			name:     "heavyweight carries sentinel cap",
			gender:   models.GenderMale,
			entryID:  "heavyweight",
			wantName: "Heavyweight",
			wantMin:  90.718,
			wantMax:  150,
		},
		{
			name:        "gender required",
			entryID:     "lightweight",
			expectedErr: ErrGenderRequired,
		},
		{
			name:        "unknown entry",
			gender:      models.GenderMale,
			entryID:     "openweight",
			expectedErr: ErrEntryNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			entry, err := provider.Resolve(tc.gender, tc.entryID)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.entryID, entry.ID)
			assert.Equal(t, tc.wantName, entry.Name)
			assert.Equal(t, tc.wantMin, entry.MinWeight)
			assert.Equal(t, tc.wantMax, entry.MaxWeight)
		})
	}
}

func TestBuiltinProvider_List(t *testing.T) {
	t.Parallel()

	provider := NewBuiltinProvider()

	_, err := provider.List("")
	require.ErrorIs(t, err, ErrGenderRequired)

	entries, err := provider.List(models.GenderFemale)
	require.NoError(t, err)
	require.Len(t, entries, 17)

	// Диапазоны стыкуются без дыр и каждый корректен сам по себе.
	for i, e := range entries {
		assert.Less(t, e.MinWeight, e.MaxWeight, "entry %s", e.ID)
		if i > 0 {
			assert.Equal(t, entries[i-1].MaxWeight, e.MinWeight, "entry %s", e.ID)
		}
	}

	// Возвращается копия: правка результата не трогает таблицу.
	entries[0].Name = "mutated"
	fresh, err := provider.List(models.GenderFemale)
	require.NoError(t, err)
	assert.Equal(t, "Minimumweight", fresh[0].Name)
}
