package veterinarian

import (
	"github.com/petcareops/vetclinic/internal/veterinarian/repository"
	"github.com/petcareops/vetclinic/internal/veterinarian/service"
	"go.uber.org/fx"
)

var Module = fx.Module("veterinarian.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
