package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/alx-travel-app/backend/internal/domain/entities"
	"github.com/alx-travel-app/backend/internal/domain/repositories"
	"github.com/alx-travel-app/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/alx-travel-app/backend/pkg/errors"
)

var propertyColumns = []interface{}{
	"id", "host_id", "name", "description", "location",
	"price_per_night", "created_at", "updated_at",
}

// PropertyAdapter implements the PropertyRepository interface
type PropertyAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewPropertyAdapter creates a new property adapter
func NewPropertyAdapter(client *postgres.Client) repositories.PropertyRepository {
	return &PropertyAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new property
func (a *PropertyAdapter) Create(ctx context.Context, property *entities.Property) error {
	record := goqu.Record{
		"id":              property.ID,
		"host_id":         property.HostID,
		"name":            property.Name,
		"description":     property.Description,
		"location":        property.Location,
		"price_per_night": property.PricePerNight,
		"created_at":      property.CreatedAt,
		"updated_at":      property.UpdatedAt,
	}

	query, args, err := a.db.Insert("properties").Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		return translateError(err, "create property")
	}

	return nil
}

// GetByID retrieves a property by ID
func (a *PropertyAdapter) GetByID(ctx context.Context, id string) (*entities.Property, error) {
	query, args, err := a.db.Select(propertyColumns...).
		From("properties").
		Where(goqu.Ex{"id": id}).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	property, err := scanProperty(a.client.DB().QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("property with id %s not found", id))
	}
	if err != nil {
		return nil, translateError(err, "get property")
	}

	return property, nil
}

// ListByHost retrieves the properties owned by a host, oldest first
func (a *PropertyAdapter) ListByHost(ctx context.Context, hostID string) ([]*entities.Property, error) {
	query, args, err := a.db.Select(propertyColumns...).
		From("properties").
		Where(goqu.Ex{"host_id": hostID}).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateError(err, "list properties")
	}
	defer rows.Close()

	properties := []*entities.Property{}
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan property", err)
		}
		properties = append(properties, property)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to iterate properties", err)
	}

	return properties, nil
}

func scanProperty(row rowScanner) (*entities.Property, error) {
	property := &entities.Property{}
	err := row.Scan(
		&property.ID,
		&property.HostID,
		&property.Name,
		&property.Description,
		&property.Location,
		&property.PricePerNight,
		&property.CreatedAt,
		&property.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return property, nil
}

// Update updates a property, writing the caller's updated_at
func (a *PropertyAdapter) Update(ctx context.Context, property *entities.Property) error {
	record := goqu.Record{
		"host_id":         property.HostID,
		"name":            property.Name,
		"description":     property.Description,
		"location":        property.Location,
		"price_per_night": property.PricePerNight,
		"updated_at":      property.UpdatedAt,
	}

	query, args, err := a.db.Update("properties").
		Set(record).
		Where(goqu.Ex{"id": property.ID}).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build update query", err)
	}

	return execAffectingOne(ctx, a.client, query, args, "update property", "property", property.ID)
}

// Delete deletes a property; the schema cascades to bookings and reviews
func (a *PropertyAdapter) Delete(ctx context.Context, id string) error {
	query, args, err := a.db.Delete("properties").Where(goqu.Ex{"id": id}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}

	return execAffectingOne(ctx, a.client, query, args, "delete property", "property", id)
}

// Count returns the number of properties
func (a *PropertyAdapter) Count(ctx context.Context) (int, error) {
	return count(ctx, a.client, a.db, "properties")
}
