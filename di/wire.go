//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"hostelhub/config"
	"hostelhub/infras/jwt"
	"hostelhub/infras/kafka"
	"hostelhub/infras/otel"
	"hostelhub/infras/postgres"
	"hostelhub/infras/redis"
	"hostelhub/infras/s3"
	"hostelhub/permissions"
	"hostelhub/shared/cache"
	"hostelhub/transport/http"
	"hostelhub/transport/http/middleware"
	"hostelhub/transport/http/router"

	adminRepository "hostelhub/internal/domains/admin/repository"
	adminService "hostelhub/internal/domains/admin/service"
	authService "hostelhub/internal/domains/auth/service"
	bookingRepository "hostelhub/internal/domains/booking/repository"
	bookingService "hostelhub/internal/domains/booking/service"
	hostelRepository "hostelhub/internal/domains/hostel/repository"
	hostelService "hostelhub/internal/domains/hostel/service"
	messRepository "hostelhub/internal/domains/mess/repository"
	messService "hostelhub/internal/domains/mess/service"
	paymentRepository "hostelhub/internal/domains/payment/repository"
	paymentService "hostelhub/internal/domains/payment/service"
	roomRepository "hostelhub/internal/domains/room/repository"
	roomService "hostelhub/internal/domains/room/service"
	searchRepository "hostelhub/internal/domains/search/repository"
	searchService "hostelhub/internal/domains/search/service"
	studentRepository "hostelhub/internal/domains/student/repository"
	studentService "hostelhub/internal/domains/student/service"
	userRepository "hostelhub/internal/domains/user/repository"
	userService "hostelhub/internal/domains/user/service"
	visitorRepository "hostelhub/internal/domains/visitor/repository"
	visitorService "hostelhub/internal/domains/visitor/service"

	adminHandler "hostelhub/internal/handlers/admin"
	authHandler "hostelhub/internal/handlers/auth"
	bookingHandler "hostelhub/internal/handlers/booking"
	hostelHandler "hostelhub/internal/handlers/hostel"
	messHandler "hostelhub/internal/handlers/mess"
	paymentHandler "hostelhub/internal/handlers/payment"
	roomHandler "hostelhub/internal/handlers/room"
	searchHandler "hostelhub/internal/handlers/search"
	studentHandler "hostelhub/internal/handlers/student"
	userHandler "hostelhub/internal/handlers/user"
	visitorHandler "hostelhub/internal/handlers/visitor"
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
	userService.New,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminRepository.NewAssignment,
	adminRepository.NewOverride,
	adminService.New,
	adminService.NewOverride,
)

var hostelDomain = wire.NewSet(
	hostelRepository.New,
	hostelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentRepository.NewSchedule,
	paymentService.New,
)

var messDomain = wire.NewSet(
	messRepository.New,
	messService.New,
)

var studentDomain = wire.NewSet(
	studentRepository.New,
	studentRepository.NewDocument,
	studentService.New,
)

var visitorDomain = wire.NewSet(
	visitorRepository.NewPreference,
	visitorRepository.NewFavorite,
	visitorRepository.NewActivity,
	visitorRepository.NewRecommendation,
	visitorService.New,
	visitorService.NewRecommendation,
)

var searchDomain = wire.NewSet(
	searchRepository.NewQuery,
	searchRepository.NewSavedSearch,
	searchService.New,
	searchService.NewSavedSearch,
	searchService.NewOptimizer,
)

var domains = wire.NewSet(
	authDomain,
	adminDomain,
	hostelDomain,
	roomDomain,
	bookingDomain,
	paymentDomain,
	messDomain,
	studentDomain,
	visitorDomain,
	searchDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	adminHandler.New,
	hostelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	messHandler.New,
	studentHandler.New,
	visitorHandler.New,
	searchHandler.New,
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
