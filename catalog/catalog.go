// Package catalog предоставляет фиксированный справочник весовых категорий.
// Значения категории никогда не вводятся вручную — только выбираются отсюда.
package catalog

import (
	"errors"

	"github.com/Dosada05/event-console/models"
)

var (
	ErrEntryNotFound  = errors.New("weight class catalog entry not found")
	ErrGenderRequired = errors.New("gender is required to resolve a catalog entry")
)

// Entry — одна запись каталога: именованный весовой диапазон в килограммах.
type Entry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	MinWeight float64 `json:"min_weight"`
	MaxWeight float64 `json:"max_weight"`
}

// Provider resolves catalog entries per gender. Implemented by the built-in
// table and by the Postgres-backed repository.
type Provider interface {
	Resolve(gender models.Gender, entryID string) (Entry, error)
	List(gender models.Gender) ([]Entry, error)
}
