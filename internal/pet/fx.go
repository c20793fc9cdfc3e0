package pet

import (
	"github.com/petcareops/vetclinic/internal/pet/repository"
	"github.com/petcareops/vetclinic/internal/pet/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pet.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
