package bootstrap

import (
	"tour-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.CacheModule,
	components.PaymentGatewayModule,
	components.MessagingModule,
	components.UseCaseModule,
	components.HandlerModule,
)
