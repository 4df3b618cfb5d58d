// Package service contains the business logic.
//
// It sits between the GraphQL resolvers and the repository layer. It
// parses client supplied identifiers, applies the registration rules
// (fresh v4 ids, lower-cased emails, zero distance for new rides) and
// turns every failure into an *errs.HTTPError the resolvers can return
// as is.
package service

import (
	"context"

	"github.com/deppfellow/ridelog/internal/errs"
	"github.com/deppfellow/ridelog/internal/model"
	"github.com/deppfellow/ridelog/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MemberStore is implemented by *repository.MemberRepository.
type MemberStore interface {
	CreateMember(ctx context.Context, m *model.Member) error
	GetMemberByID(ctx context.Context, id uuid.UUID) (*model.Member, error)
	ListMembers(ctx context.Context) ([]model.Member, error)
}

// RideStore is implemented by *repository.RideRepository.
type RideStore interface {
	CreateRide(ctx context.Context, ride *model.Ride) error
	ListRidesByRider(ctx context.Context, rider uuid.UUID) ([]model.Ride, error)
}

// WelcomeNotifier is implemented by *job.JobService.
type WelcomeNotifier interface {
	EnqueueWelcomeEmail(ctx context.Context, to, firstName string) error
}

// Error codes for identifiers that are not UUIDs.
const (
	CodeInvalidMemberID = "INVALID_MEMBER_ID"
	CodeInvalidRiderID  = "INVALID_RIDER_ID"
)

// parseID parses a client supplied UUID, reporting failures with code.
func parseID(raw, code, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		errorCode := code
		return uuid.Nil, errs.NewBadRequestError(
			"Invalid "+label+" id: expected a UUID",
			false,
			&errorCode,
			[]errs.FieldError{{Field: label, Error: "must be a UUID"}},
			nil,
		)
	}
	return id, nil
}

// fail logs the raw cause on the request logger and returns its
// client-facing translation.
func fail(ctx context.Context, err error, msg string) error {
	mapped := sqlerr.HandleError(err)

	event := zerolog.Ctx(ctx).Warn()
	if httpErr, ok := mapped.(*errs.HTTPError); ok && httpErr.Status >= 500 {
		event = zerolog.Ctx(ctx).Error()
	}
	event.Err(err).Msg(msg)

	return mapped
}
