//go:build wireinject
// +build wireinject

package di

import (
	"passat/config"
	"passat/infras/jwt"
	"passat/infras/kafka"
	"passat/infras/otel"
	"passat/infras/postgres"
	"passat/infras/redis"
	"passat/infras/s3"
	"passat/permissions"
	"passat/shared/cache"
	"passat/shared/clock"
	"passat/transport/http"
	"passat/transport/http/middleware"
	"passat/transport/http/router"

	authService "passat/internal/domains/auth/service"
	bookingRepository "passat/internal/domains/booking/repository"
	bookingService "passat/internal/domains/booking/service"
	customerRepository "passat/internal/domains/customer/repository"
	customerService "passat/internal/domains/customer/service"
	invoiceRepository "passat/internal/domains/invoice/repository"
	invoiceService "passat/internal/domains/invoice/service"
	roomRepository "passat/internal/domains/room/repository"
	roomService "passat/internal/domains/room/service"
	roomTypeRepository "passat/internal/domains/roomtype/repository"
	roomTypeService "passat/internal/domains/roomtype/service"
	userRepository "passat/internal/domains/user/repository"
	userService "passat/internal/domains/user/service"

	authHandler "passat/internal/handlers/auth"
	bookingHandler "passat/internal/handlers/booking"
	customerHandler "passat/internal/handlers/customer"
	invoiceHandler "passat/internal/handlers/invoice"
	roomHandler "passat/internal/handlers/room"
	roomTypeHandler "passat/internal/handlers/roomtype"
	userHandler "passat/internal/handlers/user"

	"github.com/google/wire"
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
	s3.New,
	clock.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewOccupancyCharge,
	bookingService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceRepository.NewInvoiceLineItem,
	invoiceService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	customerDomain,
	roomTypeDomain,
	roomDomain,
	bookingDomain,
	invoiceDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	customerHandler.New,
	roomTypeHandler.New,
	roomHandler.New,
	bookingHandler.New,
	invoiceHandler.New,
	userHandler.New,
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
