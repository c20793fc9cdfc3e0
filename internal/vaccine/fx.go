package vaccine

import (
	"github.com/petcareops/vetclinic/internal/vaccine/repository"
	"github.com/petcareops/vetclinic/internal/vaccine/service"
	"go.uber.org/fx"
)

var Module = fx.Module("vaccine.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
