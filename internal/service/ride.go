package service

import (
	"context"
	"time"

	"github.com/deppfellow/ridelog/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RegisterRideInput carries the registerRide arguments.
type RegisterRideInput struct {
	Rider       string
	Name        string
	Description string
	Started     time.Time
	Ended       time.Time
}

type RideService struct {
	rides RideStore
	newID func() uuid.UUID
}

func NewRideService(rides RideStore) *RideService {
	return &RideService{
		rides: rides,
		newID: uuid.New,
	}
}

// RegisterRide stores a ride for an existing member. New rides always
// start with a distance of 0. An unknown rider surfaces as
// MEMBER_NOT_FOUND through the foreign key.
func (s *RideService) RegisterRide(ctx context.Context, in RegisterRideInput) (*model.Ride, error) {
	riderID, err := parseID(in.Rider, CodeInvalidRiderID, "rider")
	if err != nil {
		return nil, err
	}

	ride := &model.Ride{
		ID:          s.newID(),
		Rider:       riderID,
		Name:        in.Name,
		Description: in.Description,
		Distance:    0,
		Started:     in.Started,
		Ended:       in.Ended,
	}

	if err := s.rides.CreateRide(ctx, ride); err != nil {
		return nil, fail(ctx, err, "failed to register ride")
	}

	zerolog.Ctx(ctx).Info().
		Str("ride_id", ride.ID.String()).
		Str("member_id", riderID.String()).
		Msg("ride registered")

	return ride, nil
}

// ListRidesByMember returns the rides of memberID, never nil.
func (s *RideService) ListRidesByMember(ctx context.Context, memberID uuid.UUID) ([]model.Ride, error) {
	rides, err := s.rides.ListRidesByRider(ctx, memberID)
	if err != nil {
		return nil, fail(ctx, err, "failed to list rides")
	}

	if rides == nil {
		rides = []model.Ride{}
	}
	return rides, nil
}
