package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/ridelog/internal/errs"
	"github.com/deppfellow/ridelog/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	fixedMemberID = uuid.MustParse("6f1c2b1e-4d0a-4e7b-9a55-2f3a9c7d1e01")
	fixedRideID   = uuid.MustParse("0b8e9d2c-7a31-4c55-8f0e-5d6c4b3a2f10")
	birthdate     = time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)
)

func requireHTTPError(t *testing.T, err error, code string, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, code, httpErr.Code)
	assert.Equal(t, status, httpErr.Status)
	return httpErr
}

func newMemberService(store MemberStore, notifier WelcomeNotifier) *MemberService {
	svc := NewMemberService(store, notifier)
	svc.newID = func() uuid.UUID { return fixedMemberID }
	return svc
}

func TestRegisterMember(t *testing.T) {
	store := &MockMemberStore{}
	notifier := &MockWelcomeNotifier{}

	expected := &model.Member{
		ID:        fixedMemberID,
		Email:     "jane.doe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Birthdate: birthdate,
	}
	store.On("CreateMember", mock.Anything, expected).Return(nil)
	notifier.On("EnqueueWelcomeEmail", mock.Anything, "jane.doe@example.com", "Jane").Return(nil)

	svc := newMemberService(store, notifier)
	got, err := svc.RegisterMember(context.Background(), RegisterMemberInput{
		Email:     "Jane.Doe@Example.COM",
		FirstName: "Jane",
		LastName:  "Doe",
		Birthdate: birthdate,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, got)
	store.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRegisterMember_GeneratesV4IDs(t *testing.T) {
	store := &MockMemberStore{}
	store.On("CreateMember", mock.Anything, mock.Anything).Return(nil)

	svc := NewMemberService(store, nil)
	first, err := svc.RegisterMember(context.Background(), RegisterMemberInput{Email: "a@example.com"})
	require.NoError(t, err)
	second, err := svc.RegisterMember(context.Background(), RegisterMemberInput{Email: "b@example.com"})
	require.NoError(t, err)

	assert.Equal(t, uuid.Version(4), first.ID.Version())
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRegisterMember_EnqueueFailureIsNotFatal(t *testing.T) {
	store := &MockMemberStore{}
	notifier := &MockWelcomeNotifier{}
	store.On("CreateMember", mock.Anything, mock.Anything).Return(nil)
	notifier.On("EnqueueWelcomeEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

	svc := newMemberService(store, notifier)
	got, err := svc.RegisterMember(context.Background(), RegisterMemberInput{Email: "jane@example.com", FirstName: "Jane"})

	require.NoError(t, err)
	assert.Equal(t, fixedMemberID, got.ID)
}

func TestRegisterMember_EnqueueIsBounded(t *testing.T) {
	store := &MockMemberStore{}
	notifier := &MockWelcomeNotifier{}
	store.On("CreateMember", mock.Anything, mock.Anything).Return(nil)

	start := time.Now()
	hasDeadline := mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && !deadline.After(start.Add(WelcomeEmailEnqueueTimeout+time.Second))
	})
	notifier.On("EnqueueWelcomeEmail", hasDeadline, "jane@example.com", "Jane").Return(nil)

	svc := newMemberService(store, notifier)
	_, err := svc.RegisterMember(context.Background(), RegisterMemberInput{Email: "jane@example.com", FirstName: "Jane"})

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestRegisterMember_DuplicateEmail(t *testing.T) {
	store := &MockMemberStore{}
	notifier := &MockWelcomeNotifier{}
	store.On("CreateMember", mock.Anything, mock.Anything).Return(fmt.Errorf("failed to insert member: %w", &pgconn.PgError{
		Code:           "23505",
		TableName:      "member",
		ConstraintName: "member_email_key",
	}))

	svc := newMemberService(store, notifier)
	_, err := svc.RegisterMember(context.Background(), RegisterMemberInput{Email: "jane@example.com"})

	requireHTTPError(t, err, "MEMBER_ALREADY_EXISTS", http.StatusBadRequest)
	notifier.AssertNotCalled(t, "EnqueueWelcomeEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetMember(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		store := &MockMemberStore{}
		member := &model.Member{ID: fixedMemberID, Email: "jane@example.com"}
		store.On("GetMemberByID", ctx, fixedMemberID).Return(member, nil)

		got, err := NewMemberService(store, nil).GetMember(ctx, fixedMemberID.String())
		require.NoError(t, err)
		assert.Same(t, member, got)
	})

	t.Run("invalid id", func(t *testing.T) {
		store := &MockMemberStore{}

		_, err := NewMemberService(store, nil).GetMember(ctx, "not-a-uuid")
		httpErr := requireHTTPError(t, err, CodeInvalidMemberID, http.StatusBadRequest)
		assert.Equal(t, "member", httpErr.Errors[0].Field)
		store.AssertNotCalled(t, "GetMemberByID", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		store := &MockMemberStore{}
		store.On("GetMemberByID", ctx, fixedMemberID).Return(nil, fmt.Errorf("table:member: %w", pgx.ErrNoRows))

		_, err := NewMemberService(store, nil).GetMember(ctx, fixedMemberID.String())
		httpErr := requireHTTPError(t, err, "NOT_FOUND", http.StatusNotFound)
		assert.Equal(t, "Member not found", httpErr.Message)
	})

	t.Run("database failure is not leaked", func(t *testing.T) {
		store := &MockMemberStore{}
		store.On("GetMemberByID", ctx, fixedMemberID).Return(nil, errors.New("connection reset by peer"))

		_, err := NewMemberService(store, nil).GetMember(ctx, fixedMemberID.String())
		httpErr := requireHTTPError(t, err, "INTERNAL_SERVER_ERROR", http.StatusInternalServerError)
		assert.NotContains(t, httpErr.Message, "connection reset")
	})
}

func TestListMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("nil becomes empty", func(t *testing.T) {
		store := &MockMemberStore{}
		store.On("ListMembers", ctx).Return(nil, nil)

		got, err := NewMemberService(store, nil).ListMembers(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("passes rows through", func(t *testing.T) {
		store := &MockMemberStore{}
		rows := []model.Member{{ID: fixedMemberID, LastName: "Doe"}}
		store.On("ListMembers", ctx).Return(rows, nil)

		got, err := NewMemberService(store, nil).ListMembers(ctx)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})
}

func TestRegisterRide(t *testing.T) {
	ctx := context.Background()
	started := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	input := RegisterRideInput{
		Rider:       fixedMemberID.String(),
		Name:        "Morning loop",
		Description: "Around the park",
		Started:     started,
		Ended:       started,
	}

	t.Run("stores with zero distance", func(t *testing.T) {
		store := &MockRideStore{}
		expected := &model.Ride{
			ID:          fixedRideID,
			Rider:       fixedMemberID,
			Name:        "Morning loop",
			Description: "Around the park",
			Distance:    0,
			Started:     started,
			Ended:       started,
		}
		store.On("CreateRide", ctx, expected).Return(nil)

		svc := NewRideService(store)
		svc.newID = func() uuid.UUID { return fixedRideID }

		got, err := svc.RegisterRide(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
		store.AssertExpectations(t)
	})

	t.Run("invalid rider", func(t *testing.T) {
		store := &MockRideStore{}
		bad := input
		bad.Rider = "42"

		_, err := NewRideService(store).RegisterRide(ctx, bad)
		requireHTTPError(t, err, CodeInvalidRiderID, http.StatusBadRequest)
		store.AssertNotCalled(t, "CreateRide", mock.Anything, mock.Anything)
	})

	t.Run("unknown rider", func(t *testing.T) {
		store := &MockRideStore{}
		store.On("CreateRide", ctx, mock.Anything).Return(&pgconn.PgError{
			Code:           "23503",
			TableName:      "ride",
			ConstraintName: "ride_rider_fkey",
		})

		_, err := NewRideService(store).RegisterRide(ctx, input)
		httpErr := requireHTTPError(t, err, "MEMBER_NOT_FOUND", http.StatusBadRequest)
		assert.Equal(t, "The referenced Member does not exist", httpErr.Message)
	})
}

func TestListRidesByMember(t *testing.T) {
	ctx := context.Background()

	store := &MockRideStore{}
	store.On("ListRidesByRider", ctx, fixedMemberID).Return(nil, nil)

	got, err := NewRideService(store).ListRidesByMember(ctx, fixedMemberID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	failing := &MockRideStore{}
	failing.On("ListRidesByRider", ctx, fixedMemberID).Return(nil, errors.New("timeout"))

	_, err = NewRideService(failing).ListRidesByMember(ctx, fixedMemberID)
	requireHTTPError(t, err, "INTERNAL_SERVER_ERROR", http.StatusInternalServerError)
}
