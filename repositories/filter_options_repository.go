package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// FilterOptionsRepository returns the distinct values present in the event feed.
type FilterOptionsRepository interface {
	ListSportTypes(ctx context.Context) ([]string, error)
	ListDisciplines(ctx context.Context) ([]string, error)
	ListCities(ctx context.Context) ([]string, error)
	ListCountries(ctx context.Context) ([]string, error)
	ListAgeGroups(ctx context.Context) ([]string, error)
}

type postgresFilterOptionsRepository struct {
	db SQLExecutor
}

func NewPostgresFilterOptionsRepository(db *sql.DB) FilterOptionsRepository {
	return &postgresFilterOptionsRepository{db: db}
}

func (r *postgresFilterOptionsRepository) ListSportTypes(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, "sport_type")
}

func (r *postgresFilterOptionsRepository) ListDisciplines(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, "unnest(disciplines)")
}

func (r *postgresFilterOptionsRepository) ListCities(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, "city")
}

func (r *postgresFilterOptionsRepository) ListCountries(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, "country")
}

func (r *postgresFilterOptionsRepository) ListAgeGroups(ctx context.Context) ([]string, error) {
	return r.listDistinct(ctx, "age_group")
}

// listDistinct expects expr to be one of the fixed column expressions above, never user input.
func (r *postgresFilterOptionsRepository) listDistinct(ctx context.Context, expr string) ([]string, error) {
	query := distinctValuesQuery(expr)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query distinct %s: %w", expr, err)
	}
	values, err := scanStrings(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan distinct %s: %w", expr, err)
	}
	return values, nil
}

func distinctValuesQuery(expr string) string {
	return fmt.Sprintf(
		`SELECT v FROM (SELECT DISTINCT %s AS v FROM sport_events) d WHERE v IS NOT NULL AND v <> '' ORDER BY v ASC`,
		expr,
	)
}
