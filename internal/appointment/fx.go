package appointment

import (
	"github.com/petcareops/vetclinic/internal/appointment/repository"
	"github.com/petcareops/vetclinic/internal/appointment/service"
	"go.uber.org/fx"
)

var Module = fx.Module("appointment.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
