package service

import (
	"context"

	"github.com/deppfellow/ridelog/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockMemberStore struct {
	mock.Mock
}

var _ MemberStore = (*MockMemberStore)(nil)

func (m *MockMemberStore) CreateMember(ctx context.Context, member *model.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockMemberStore) GetMemberByID(ctx context.Context, id uuid.UUID) (*model.Member, error) {
	args := m.Called(ctx, id)
	if member := args.Get(0); member != nil {
		return member.(*model.Member), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMemberStore) ListMembers(ctx context.Context) ([]model.Member, error) {
	args := m.Called(ctx)
	if members := args.Get(0); members != nil {
		return members.([]model.Member), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRideStore struct {
	mock.Mock
}

var _ RideStore = (*MockRideStore)(nil)

func (m *MockRideStore) CreateRide(ctx context.Context, ride *model.Ride) error {
	return m.Called(ctx, ride).Error(0)
}

func (m *MockRideStore) ListRidesByRider(ctx context.Context, rider uuid.UUID) ([]model.Ride, error) {
	args := m.Called(ctx, rider)
	if rides := args.Get(0); rides != nil {
		return rides.([]model.Ride), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockWelcomeNotifier struct {
	mock.Mock
}

var _ WelcomeNotifier = (*MockWelcomeNotifier)(nil)

func (m *MockWelcomeNotifier) EnqueueWelcomeEmail(ctx context.Context, to, firstName string) error {
	return m.Called(ctx, to, firstName).Error(0)
}
