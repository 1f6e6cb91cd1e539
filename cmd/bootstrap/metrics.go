package bootstrap

import (
	"lab-reservation/internal/infra/metrics"
	"lab-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) commands.Observer { return m },
	),
)
