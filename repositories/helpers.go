package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SQLExecutor is satisfied by *sql.DB and *sql.Tx.
type SQLExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// queryBuilder накапливает условия WHERE с позиционными параметрами $1, $2, ...
type queryBuilder struct {
	sb   strings.Builder
	args []interface{}
}

func newQueryBuilder(base string) *queryBuilder {
	qb := &queryBuilder{}
	qb.sb.WriteString(base)
	return qb
}

// where appends " AND <cond>" where cond contains a single %s placeholder for the argument.
func (qb *queryBuilder) where(cond string, arg interface{}) {
	qb.args = append(qb.args, arg)
	qb.sb.WriteString(" AND ")
	qb.sb.WriteString(fmt.Sprintf(cond, fmt.Sprintf("$%d", len(qb.args))))
}

func (qb *queryBuilder) raw(s string) {
	qb.sb.WriteString(s)
}

func (qb *queryBuilder) limit(limit, offset int) {
	if limit > 0 {
		qb.args = append(qb.args, limit)
		qb.sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(qb.args)))
	}
	if offset > 0 {
		qb.args = append(qb.args, offset)
		qb.sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(qb.args)))
	}
}

func (qb *queryBuilder) build() (string, []interface{}) {
	return qb.sb.String(), qb.args
}

func scanStrings(rows *sql.Rows) ([]string, error) {
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
