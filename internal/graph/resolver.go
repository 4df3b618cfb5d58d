package graph

import (
	"context"

	"github.com/deppfellow/ridelog/internal/model"
	"github.com/deppfellow/ridelog/internal/service"
	"github.com/google/uuid"
)

// MemberService is implemented by *service.MemberService.
type MemberService interface {
	RegisterMember(ctx context.Context, in service.RegisterMemberInput) (*model.Member, error)
	GetMember(ctx context.Context, id string) (*model.Member, error)
	ListMembers(ctx context.Context) ([]model.Member, error)
}

// RideService is implemented by *service.RideService.
type RideService interface {
	RegisterRide(ctx context.Context, in service.RegisterRideInput) (*model.Ride, error)
	ListRidesByMember(ctx context.Context, memberID uuid.UUID) ([]model.Ride, error)
}

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	members MemberService
	rides   RideService
}

func NewResolver(members MemberService, rides RideService) *Resolver {
	return &Resolver{members: members, rides: rides}
}

func (r *Resolver) Member(ctx context.Context, args struct{ ID string }) (*memberResolver, error) {
	m, err := r.members.GetMember(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	return r.member(m), nil
}

func (r *Resolver) Members(ctx context.Context) ([]*memberResolver, error) {
	members, err := r.members.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*memberResolver, len(members))
	for i := range members {
		out[i] = r.member(&members[i])
	}
	return out, nil
}

type registerMemberArgs struct {
	Email     string
	Firstname string
	Lastname  string
	Birthdate NaiveDate
}

func (r *Resolver) RegisterMember(ctx context.Context, args registerMemberArgs) (*memberResolver, error) {
	m, err := r.members.RegisterMember(ctx, service.RegisterMemberInput{
		Email:     args.Email,
		FirstName: args.Firstname,
		LastName:  args.Lastname,
		Birthdate: args.Birthdate.Time,
	})
	if err != nil {
		return nil, err
	}
	return r.member(m), nil
}

type registerRideArgs struct {
	Rider       string
	Name        string
	Description string
	Started     NaiveDate
	Ended       NaiveDate
}

func (r *Resolver) RegisterRide(ctx context.Context, args registerRideArgs) (*rideResolver, error) {
	ride, err := r.rides.RegisterRide(ctx, service.RegisterRideInput{
		Rider:       args.Rider,
		Name:        args.Name,
		Description: args.Description,
		Started:     args.Started.Time,
		Ended:       args.Ended.Time,
	})
	if err != nil {
		return nil, err
	}
	return &rideResolver{ride: ride}, nil
}

func (r *Resolver) member(m *model.Member) *memberResolver {
	return &memberResolver{member: m, rides: r.rides}
}
