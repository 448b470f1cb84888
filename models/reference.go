package models

// Boxer — внешняя справочная сущность, мастером не изменяется.
type Boxer struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Gender    Gender  `json:"gender"`
	WeightKg  float64 `json:"weight_kg,omitempty"`
}

// Place — внешняя справочная сущность (площадка события).
type Place struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// ReferenceCache holds the read-only boxer and place snapshots for one wizard
// session. LoadFailed is set when either fetch failed; dialogs that depend on
// the lists stay disabled until a retry succeeds.
type ReferenceCache struct {
	Boxers []Boxer `json:"boxers"`
	Places []Place `json:"places"`

	BoxersReady bool `json:"boxers_ready"`
	PlacesReady bool `json:"places_ready"`
	LoadFailed  bool `json:"load_failed"`
}

// Ready reports whether both reference lists have been loaded.
func (c *ReferenceCache) Ready() bool {
	return c.BoxersReady && c.PlacesReady
}

// HasBoxer reports whether the id is present in the cached boxer list.
func (c *ReferenceCache) HasBoxer(id string) bool {
	for i := range c.Boxers {
		if c.Boxers[i].ID == id {
			return true
		}
	}
	return false
}

// HasPlace reports whether the id is present in the cached place list.
func (c *ReferenceCache) HasPlace(id string) bool {
	for i := range c.Places {
		if c.Places[i].ID == id {
			return true
		}
	}
	return false
}
