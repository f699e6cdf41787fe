// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
	repository2 "hostelhub/internal/domains/admin/repository"
	service3 "hostelhub/internal/domains/admin/service"
	"hostelhub/internal/domains/auth/service"
	repository5 "hostelhub/internal/domains/booking/repository"
	service6 "hostelhub/internal/domains/booking/service"
	repository3 "hostelhub/internal/domains/hostel/repository"
	service4 "hostelhub/internal/domains/hostel/service"
	repository7 "hostelhub/internal/domains/mess/repository"
	service8 "hostelhub/internal/domains/mess/service"
	repository6 "hostelhub/internal/domains/payment/repository"
	service7 "hostelhub/internal/domains/payment/service"
	repository4 "hostelhub/internal/domains/room/repository"
	service5 "hostelhub/internal/domains/room/service"
	repository10 "hostelhub/internal/domains/search/repository"
	service11 "hostelhub/internal/domains/search/service"
	repository8 "hostelhub/internal/domains/student/repository"
	service9 "hostelhub/internal/domains/student/service"
	"hostelhub/internal/domains/user/repository"
	service2 "hostelhub/internal/domains/user/service"
	repository9 "hostelhub/internal/domains/visitor/repository"
	service10 "hostelhub/internal/domains/visitor/service"
	"hostelhub/internal/handlers/admin"
	"hostelhub/internal/handlers/auth"
	"hostelhub/internal/handlers/booking"
	"hostelhub/internal/handlers/hostel"
	"hostelhub/internal/handlers/mess"
	"hostelhub/internal/handlers/payment"
	"hostelhub/internal/handlers/room"
	"hostelhub/internal/handlers/search"
	"hostelhub/internal/handlers/student"
	"hostelhub/internal/handlers/user"
	"hostelhub/internal/handlers/visitor"
	"hostelhub/permissions"
	"hostelhub/shared/cache"
	"hostelhub/transport/http"
	"hostelhub/transport/http/middleware"
	"hostelhub/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceUser := service2.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	repositoryAdmin := repository2.New(connection, otelOtel)
	assignment := repository2.NewAssignment(connection, otelOtel)
	repositoryHostel := repository3.New(connection, otelOtel)
	serviceAdmin := service3.New(repositoryAdmin, assignment, repositoryUser, repositoryHostel, configConfig, redisCache, otelOtel)
	override := repository2.NewOverride(connection, otelOtel)
	serviceOverride := service3.NewOverride(override, repositoryAdmin, repositoryHostel, configConfig, redisCache, otelOtel)
	adminHandler := admin.New(serviceAdmin, serviceOverride, otelOtel)
	serviceHostel := service4.New(repositoryHostel, configConfig, redisCache, otelOtel)
	hostelHandler := hostel.New(serviceHostel, otelOtel)
	repositoryRoom := repository4.New(connection, otelOtel)
	serviceRoom := service5.New(repositoryRoom, repositoryHostel, serviceAdmin, configConfig, redisCache, otelOtel)
	roomHandler := room.New(serviceRoom, otelOtel)
	repositoryBooking := repository5.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service6.New(repositoryBooking, repositoryRoom, serviceAdmin, configConfig, redisCache, kafkaClient, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	repositoryPayment := repository6.New(connection, otelOtel)
	schedule := repository6.NewSchedule(connection, otelOtel)
	servicePayment := service7.New(repositoryPayment, schedule, serviceAdmin, configConfig, redisCache, kafkaClient, otelOtel)
	paymentHandler := payment.New(servicePayment, serviceAdmin, otelOtel)
	menu := repository7.New(connection, otelOtel)
	serviceMenu := service8.New(menu, repositoryHostel, serviceAdmin, configConfig, redisCache, otelOtel)
	messHandler := mess.New(serviceMenu, otelOtel)
	repositoryStudent := repository8.New(connection, otelOtel)
	document := repository8.NewDocument(connection, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceStudent := service9.New(repositoryStudent, document, repositoryHostel, repositoryRoom, configConfig, redisCache, otelOtel, s3S3)
	studentHandler := student.New(serviceStudent, otelOtel)
	preference := repository9.NewPreference(connection, otelOtel)
	favorite := repository9.NewFavorite(connection, otelOtel)
	activity := repository9.NewActivity(connection, otelOtel)
	serviceVisitor := service10.New(preference, favorite, activity, repositoryHostel, configConfig, redisCache, kafkaClient, otelOtel)
	recommendation := repository9.NewRecommendation(connection, otelOtel)
	serviceRecommendation := service10.NewRecommendation(recommendation, preference, favorite, activity, repositoryHostel, repositoryRoom, configConfig, otelOtel)
	visitorHandler := visitor.New(serviceVisitor, serviceRecommendation, otelOtel)
	query := repository10.NewQuery(connection, otelOtel)
	serviceSearch := service11.New(query, repositoryHostel, repositoryRoom, configConfig, otelOtel)
	savedSearch := repository10.NewSavedSearch(connection, otelOtel)
	serviceSavedSearch := service11.NewSavedSearch(savedSearch, serviceSearch, configConfig, otelOtel)
	optimizer := service11.NewOptimizer(query, activity, repositoryHostel, configConfig, otelOtel)
	searchHandler := search.New(serviceSearch, serviceSavedSearch, optimizer, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:    handler,
		User:    userHandler,
		Admin:   adminHandler,
		Hostel:  hostelHandler,
		Room:    roomHandler,
		Booking: bookingHandler,
		Payment: paymentHandler,
		Mess:    messHandler,
		Student: studentHandler,
		Visitor: visitorHandler,
		Search:  searchHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, authRole)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, s3.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var authDomain = wire.NewSet(repository.New, service.New, service2.New)

var adminDomain = wire.NewSet(repository2.New, repository2.NewAssignment, repository2.NewOverride, service3.New, service3.NewOverride)

var hostelDomain = wire.NewSet(repository3.New, service4.New)

var roomDomain = wire.NewSet(repository4.New, service5.New)

var bookingDomain = wire.NewSet(repository5.New, service6.New)

var paymentDomain = wire.NewSet(repository6.New, repository6.NewSchedule, service7.New)

var messDomain = wire.NewSet(repository7.New, service8.New)

var studentDomain = wire.NewSet(repository8.New, repository8.NewDocument, service9.New)

var visitorDomain = wire.NewSet(repository9.NewPreference, repository9.NewFavorite, repository9.NewActivity, repository9.NewRecommendation, service10.New, service10.NewRecommendation)

var searchDomain = wire.NewSet(repository10.NewQuery, repository10.NewSavedSearch, service11.New, service11.NewSavedSearch, service11.NewOptimizer)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, user.New, admin.New, hostel.New, room.New, booking.New, payment.New, mess.New, student.New, visitor.New, search.New, router.New)
