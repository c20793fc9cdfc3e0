package medicalrecord

import (
	"github.com/petcareops/vetclinic/internal/medicalrecord/repository"
	"github.com/petcareops/vetclinic/internal/medicalrecord/service"
	"go.uber.org/fx"
)

var Module = fx.Module("medicalrecord.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
