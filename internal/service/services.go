package service

import (
	"github.com/deppfellow/ridelog/internal/repository"
	"github.com/deppfellow/ridelog/internal/server"
)

// Services is the container handed to the GraphQL resolvers.
type Services struct {
	Member *MemberService
	Ride   *RideService
}

// NewServices wires the services on top of repos. Welcome emails are only
// scheduled when the server runs a job service.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var notifier WelcomeNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Member: NewMemberService(repos.Member, notifier),
		Ride:   NewRideService(repos.Ride),
	}, nil
}
