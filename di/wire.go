//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"cospace/config"
	"cospace/infras/jwt"
	"cospace/infras/kafka"
	"cospace/infras/otel"
	"cospace/infras/postgres"
	"cospace/infras/redis"
	"cospace/permissions"
	"cospace/shared/cache"
	"cospace/transport/http"
	"cospace/transport/http/middleware"
	"cospace/transport/http/router"

	authService "cospace/internal/domains/auth/service"
	bookingRepository "cospace/internal/domains/booking/repository"
	bookingService "cospace/internal/domains/booking/service"
	paymentRepository "cospace/internal/domains/payment/repository"
	paymentService "cospace/internal/domains/payment/service"
	reviewRepository "cospace/internal/domains/review/repository"
	reviewService "cospace/internal/domains/review/service"
	tariffRepository "cospace/internal/domains/tariff/repository"
	tariffService "cospace/internal/domains/tariff/service"
	userRepository "cospace/internal/domains/user/repository"
	workspaceRepository "cospace/internal/domains/workspace/repository"
	workspaceService "cospace/internal/domains/workspace/service"

	authHandler "cospace/internal/handlers/auth"
	bookingHandler "cospace/internal/handlers/booking"
	paymentHandler "cospace/internal/handlers/payment"
	reviewHandler "cospace/internal/handlers/review"
	tariffHandler "cospace/internal/handlers/tariff"
	workspaceHandler "cospace/internal/handlers/workspace"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var workspaceDomain = wire.NewSet(
	workspaceRepository.New,
	workspaceService.New,
)

var tariffDomain = wire.NewSet(
	tariffRepository.New,
	tariffService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	authDomain,
	workspaceDomain,
	tariffDomain,
	bookingDomain,
	paymentDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	workspaceHandler.New,
	tariffHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	reviewHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
