package repository

import (
	"github.com/deppfellow/ridelog/internal/server"
)

// Repositories is a container for all repository instances. Every
// repository shares the pool owned by the server container.
type Repositories struct {
	Member *MemberRepository
	Ride   *RideRepository
}

// NewRepositories constructs the repository container from s.DB.Pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Member: NewMemberRepository(s.DB.Pool),
		Ride:   NewRideRepository(s.DB.Pool),
	}
}
