// Package registry manages the reference entities (routes, buses, users)
// that bookings and timetables point at, plus login for the users it holds.
package registry

import (
	"time"

	"github.com/Domenick1991/busbooking/internal/auth"
	"github.com/Domenick1991/busbooking/internal/repository"
	"go.uber.org/zap"
)

type RegistryService struct {
	routes repository.RouteRepository
	buses  repository.BusRepository
	users  repository.UserRepository
	tokens *auth.TokenManager
	log    *zap.Logger
	now    func() time.Time
}

func NewRegistryService(
	routes repository.RouteRepository,
	buses repository.BusRepository,
	users repository.UserRepository,
	tokens *auth.TokenManager,
	log *zap.Logger,
) *RegistryService {
	return &RegistryService{
		routes: routes,
		buses:  buses,
		users:  users,
		tokens: tokens,
		log:    log,
		now:    time.Now,
	}
}

var (
	_ RouteUseCase = (*RegistryService)(nil)
	_ BusUseCase   = (*RegistryService)(nil)
	_ UserUseCase  = (*RegistryService)(nil)
)
