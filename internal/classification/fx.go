package classification

import (
	"github.com/smallbiznis/sapbridge/internal/classification/repository"
	"github.com/smallbiznis/sapbridge/internal/classification/service"
	"go.uber.org/fx"
)

var Module = fx.Module("classification.resolver",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
