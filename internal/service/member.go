package service

import (
	"context"
	"strings"
	"time"

	"github.com/deppfellow/ridelog/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WelcomeEmailEnqueueTimeout bounds how long RegisterMember waits on the
// job queue before giving up on the welcome email.
const WelcomeEmailEnqueueTimeout = 2 * time.Second

// RegisterMemberInput carries the registerMember arguments.
type RegisterMemberInput struct {
	Email     string
	FirstName string
	LastName  string
	Birthdate time.Time
}

type MemberService struct {
	members  MemberStore
	notifier WelcomeNotifier
	newID    func() uuid.UUID
}

// NewMemberService builds a MemberService. notifier may be nil, in which
// case no welcome email is scheduled.
func NewMemberService(members MemberStore, notifier WelcomeNotifier) *MemberService {
	return &MemberService{
		members:  members,
		notifier: notifier,
		newID:    uuid.New,
	}
}

// RegisterMember stores a new member under a fresh v4 id with the email
// lower-cased, then schedules the welcome email. Scheduling failures are
// logged and never fail the registration.
func (s *MemberService) RegisterMember(ctx context.Context, in RegisterMemberInput) (*model.Member, error) {
	m := &model.Member{
		ID:        s.newID(),
		Email:     strings.ToLower(in.Email),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Birthdate: in.Birthdate,
	}

	if err := s.members.CreateMember(ctx, m); err != nil {
		return nil, fail(ctx, err, "failed to register member")
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().Str("member_id", m.ID.String()).Msg("member registered")

	if s.notifier != nil {
		enqueueCtx, cancel := context.WithTimeout(ctx, WelcomeEmailEnqueueTimeout)
		defer cancel()

		if err := s.notifier.EnqueueWelcomeEmail(enqueueCtx, m.Email, m.FirstName); err != nil {
			logger.Error().Err(err).Str("member_id", m.ID.String()).Msg("failed to schedule welcome email")
		}
	}

	return m, nil
}

// GetMember resolves a member by its id string.
func (s *MemberService) GetMember(ctx context.Context, id string) (*model.Member, error) {
	memberID, err := parseID(id, CodeInvalidMemberID, "member")
	if err != nil {
		return nil, err
	}

	m, err := s.members.GetMemberByID(ctx, memberID)
	if err != nil {
		return nil, fail(ctx, err, "failed to get member")
	}

	return m, nil
}

// ListMembers returns every member, never nil.
func (s *MemberService) ListMembers(ctx context.Context) ([]model.Member, error) {
	members, err := s.members.ListMembers(ctx)
	if err != nil {
		return nil, fail(ctx, err, "failed to list members")
	}

	if members == nil {
		members = []model.Member{}
	}
	return members, nil
}
