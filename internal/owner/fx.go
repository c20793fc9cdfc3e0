package owner

import (
	"github.com/petcareops/vetclinic/internal/owner/repository"
	"github.com/petcareops/vetclinic/internal/owner/service"
	"go.uber.org/fx"
)

var Module = fx.Module("owner.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
