package models

// Gender используется и весовыми категориями, и справочником боксёров.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// WeightClass — весовая категория черновика. Диапазон и название всегда
// берутся из фиксированного каталога, вручную они не вводятся.
type WeightClass struct {
	ID             string  `json:"id"`
	Gender         Gender  `json:"gender"`
	CatalogEntryID string  `json:"catalog_entry_id"`
	Name           string  `json:"name"`
	MinWeight      float64 `json:"min_weight"`
	MaxWeight      float64 `json:"max_weight"`
	MaxEnrollment  int     `json:"max_enrollment"`

	// Идентификаторы матчей категории в порядке добавления.
	MatchIDs []string `json:"match_ids"`
}
