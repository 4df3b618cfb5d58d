package graph

import (
	"context"

	"github.com/deppfellow/ridelog/internal/model"
)

type memberResolver struct {
	member *model.Member
	rides  RideService
}

func (r *memberResolver) ID() string {
	return r.member.ID.String()
}

func (r *memberResolver) Email() string {
	return r.member.Email
}

func (r *memberResolver) Firstname() string {
	return r.member.FirstName
}

func (r *memberResolver) Lastname() string {
	return r.member.LastName
}

func (r *memberResolver) Birthdate() NaiveDate {
	return NewNaiveDate(r.member.Birthdate)
}

// Rides is only queried when the field is selected.
func (r *memberResolver) Rides(ctx context.Context) ([]*rideResolver, error) {
	rides, err := r.rides.ListRidesByMember(ctx, r.member.ID)
	if err != nil {
		return nil, err
	}

	out := make([]*rideResolver, len(rides))
	for i := range rides {
		out[i] = &rideResolver{ride: &rides[i]}
	}
	return out, nil
}
