package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/event-console/catalog"
	"github.com/Dosada05/event-console/models"
)

// PostgresCatalogRepository читает справочник весовых категорий из БД консоли.
// Таблица заполняется миграциями и в процессе работы не меняется, поэтому
// репозиторий только читает.
type postgresCatalogRepository struct {
	db *sql.DB
}

func NewPostgresCatalogRepository(db *sql.DB) catalog.Provider {
	return &postgresCatalogRepository{db: db}
}

func (r *postgresCatalogRepository) Resolve(gender models.Gender, entryID string) (catalog.Entry, error) {
	if gender != models.GenderMale && gender != models.GenderFemale {
		return catalog.Entry{}, catalog.ErrGenderRequired
	}

	query := `SELECT entry_id, name, min_weight, max_weight
	          FROM weight_class_catalog
	          WHERE gender = $1 AND entry_id = $2`

	var e catalog.Entry
	err := r.db.QueryRowContext(context.Background(), query, string(gender), entryID).
		Scan(&e.ID, &e.Name, &e.MinWeight, &e.MaxWeight)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Entry{}, catalog.ErrEntryNotFound
		}
		return catalog.Entry{}, fmt.Errorf("failed to resolve catalog entry %q: %w", entryID, err)
	}
	return e, nil
}

func (r *postgresCatalogRepository) List(gender models.Gender) ([]catalog.Entry, error) {
	if gender != models.GenderMale && gender != models.GenderFemale {
		return nil, catalog.ErrGenderRequired
	}

	query := `SELECT entry_id, name, min_weight, max_weight
	          FROM weight_class_catalog
	          WHERE gender = $1
	          ORDER BY min_weight ASC`

	rows, err := r.db.QueryContext(context.Background(), query, string(gender))
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}
	defer rows.Close()

	entries := make([]catalog.Entry, 0)
	for rows.Next() {
		var e catalog.Entry
		if scanErr := rows.Scan(&e.ID, &e.Name, &e.MinWeight, &e.MaxWeight); scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
