package graph

import "github.com/deppfellow/ridelog/internal/model"

type rideResolver struct {
	ride *model.Ride
}

func (r *rideResolver) ID() string {
	return r.ride.ID.String()
}

func (r *rideResolver) Name() string {
	return r.ride.Name
}

func (r *rideResolver) Description() string {
	return r.ride.Description
}

func (r *rideResolver) Distance() int32 {
	return r.ride.Distance
}

func (r *rideResolver) Started() NaiveDate {
	return NewNaiveDate(r.ride.Started)
}

func (r *rideResolver) Ended() NaiveDate {
	return NewNaiveDate(r.ride.Ended)
}
