package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/ridelog/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RideRepository struct {
	pool *pgxpool.Pool
}

func NewRideRepository(pool *pgxpool.Pool) *RideRepository {
	return &RideRepository{pool: pool}
}

// CreateRide inserts ride. An unknown rider fails with the foreign-key
// violation from ride_rider_fkey.
func (r *RideRepository) CreateRide(ctx context.Context, ride *model.Ride) error {
	stmt := `
		INSERT INTO ride (id, rider, name, description, distance, started, ended)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, stmt,
		ride.ID,
		ride.Rider,
		ride.Name,
		ride.Description,
		ride.Distance,
		ride.Started,
		ride.Ended,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ride %s: %w", ride.ID, err)
	}

	return nil
}

// ListRidesByRider returns the rides of one member ordered by start date
// then id. A member without rides yields an empty slice.
func (r *RideRepository) ListRidesByRider(ctx context.Context, rider uuid.UUID) ([]model.Ride, error) {
	stmt := `
		SELECT id, name, description, distance, started, ended
		FROM ride
		WHERE rider = $1
		ORDER BY started, id
	`

	rows, err := r.pool.Query(ctx, stmt, rider)
	if err != nil {
		return nil, fmt.Errorf("failed to query rides of %s: %w", rider, err)
	}

	// Lax: the rider column is not selected, it is the query parameter.
	rides, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[model.Ride])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rides of %s: %w", rider, err)
	}

	for i := range rides {
		rides[i].Rider = rider
	}

	return rides, nil
}
