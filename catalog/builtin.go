package catalog

import "github.com/Dosada05/event-console/models"

// Встроенная таблица: профессиональные лимиты в фунтах, переведённые в
// килограммы и округлённые до трёх знаков. Верхней границы у тяжёлого веса
// нет, поэтому стоит заглушка 150 кг.
var builtinEntries = []Entry{
	{ID: "minimumweight", Name: "Minimumweight", MinWeight: 0, MaxWeight: 47.627},
	{ID: "light_flyweight", Name: "Light Flyweight", MinWeight: 47.627, MaxWeight: 48.988},
	{ID: "flyweight", Name: "Flyweight", MinWeight: 48.988, MaxWeight: 50.802},
	{ID: "super_flyweight", Name: "Super Flyweight", MinWeight: 50.802, MaxWeight: 52.163},
	{ID: "bantamweight", Name: "Bantamweight", MinWeight: 52.163, MaxWeight: 53.524},
	{ID: "super_bantamweight", Name: "Super Bantamweight", MinWeight: 53.524, MaxWeight: 55.338},
	{ID: "featherweight", Name: "Featherweight", MinWeight: 55.338, MaxWeight: 57.153},
	{ID: "super_featherweight", Name: "Super Featherweight", MinWeight: 57.153, MaxWeight: 58.967},
	{ID: "lightweight", Name: "Lightweight", MinWeight: 58.967, MaxWeight: 61.235},
	{ID: "super_lightweight", Name: "Super Lightweight", MinWeight: 61.235, MaxWeight: 63.503},
	{ID: "welterweight", Name: "Welterweight", MinWeight: 63.503, MaxWeight: 66.678},
	{ID: "super_welterweight", Name: "Super Welterweight", MinWeight: 66.678, MaxWeight: 69.853},
	{ID: "middleweight", Name: "Middleweight", MinWeight: 69.853, MaxWeight: 72.575},
	{ID: "super_middleweight", Name: "Super Middleweight", MinWeight: 72.575, MaxWeight: 76.204},
	{ID: "light_heavyweight", Name: "Light Heavyweight", MinWeight: 76.204, MaxWeight: 79.379},
	{ID: "cruiserweight", Name: "Cruiserweight", MinWeight: 79.379, MaxWeight: 90.718},
	{ID: "heavyweight", Name: "Heavyweight", MinWeight: 90.718, MaxWeight: 150},
}

type builtinProvider struct{}

// NewBuiltinProvider returns the in-process catalog. It is used when no
// catalog database is configured and by the test suite.
func NewBuiltinProvider() Provider {
	return builtinProvider{}
}

func (builtinProvider) Resolve(gender models.Gender, entryID string) (Entry, error) {
	if gender != models.GenderMale && gender != models.GenderFemale {
		return Entry{}, ErrGenderRequired
	}
	for _, e := range builtinEntries {
		if e.ID == entryID {
			return e, nil
		}
	}
	return Entry{}, ErrEntryNotFound
}

func (builtinProvider) List(gender models.Gender) ([]Entry, error) {
	if gender != models.GenderMale && gender != models.GenderFemale {
		return nil, ErrGenderRequired
	}
	out := make([]Entry, len(builtinEntries))
	copy(out, builtinEntries)
	return out, nil
}
