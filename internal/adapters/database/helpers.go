package database

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/alx-travel-app/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

// execAffectingOne runs an UPDATE or DELETE and reports NotFound when no row matched
func execAffectingOne(ctx context.Context, client *postgres.Client, query string, args []interface{}, action, entity, id string) error {
	result, err := client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err, action)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to get rows affected", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s with id %s not found", entity, id))
	}

	return nil
}

func count(ctx context.Context, client *postgres.Client, db *goqu.Database, table string) (int, error) {
	query, args, err := db.From(table).Select(goqu.COUNT("*")).ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build count query", err)
	}

	var n int
	if err := client.DB().QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, translateError(err, "count "+table)
	}
	return n, nil
}
