package credential

import (
	"github.com/smallbiznis/sapbridge/internal/credential/repository"
	"github.com/smallbiznis/sapbridge/internal/credential/service"
	"go.uber.org/fx"
)

var Module = fx.Module("credential.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
