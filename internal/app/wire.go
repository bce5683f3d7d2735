package app

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"ridehail/internal/config"
	"ridehail/internal/handler"
	internalredis "ridehail/internal/redis"
	"ridehail/internal/service"
)

// Options are the inputs to NewHandler. Only Repos is required.
type Options struct {
	Repos       Repositories
	Fare        config.FareConfig
	RedisClient *redis.Client
	NewRelicApp *newrelic.Application
	Logger      *log.Logger
	Clock       service.Clock
	References  service.ReferenceGenerator
}

// Services are the application services built by NewServices.
type Services struct {
	Riders   *service.RiderService
	Drivers  *service.DriverService
	Rides    *service.RideService
	Payments *service.PaymentService
}

// NewServices wires the services over the given repositories. All services
// share one locker: in Redis when a client is set, in-process otherwise.
func NewServices(opts Options) Services {
	repos := opts.Repos
	pricing := service.NewPricingService(service.FareConfig{
		BaseFare:   opts.Fare.BaseFare,
		PerKmRate:  opts.Fare.PerKmRate,
		PerMinRate: opts.Fare.PerMinRate,
	})
	matcher := service.NewMatchingService(repos.Drivers)

	var locker service.Locker = service.NewLocalLocker()
	if opts.RedisClient != nil {
		locker = internalredis.NewLockStore(opts.RedisClient, internalredis.DefaultLockTTL)
	}

	rides := service.NewRideService(repos.Rides, repos.Drivers, repos.Riders, matcher, opts.Clock, opts.Logger).
		WithLocker(locker)
	if repos.Tx != nil {
		rides.WithTransactor(repos.Tx)
	}

	return Services{
		Riders:   service.NewRiderService(repos.Riders, opts.Logger).WithLocker(locker),
		Drivers:  service.NewDriverService(repos.Drivers, opts.Logger).WithLocker(locker),
		Rides:    rides,
		Payments: service.NewPaymentService(repos.Rides, repos.Receipts, pricing, opts.Logger),
	}
}

// NewHandler builds the services, handlers and router.
func NewHandler(opts Options) *gin.Engine {
	svcs := NewServices(opts)

	return NewRouter(RouterDeps{
		RiderHandler:   handler.NewRiderHandler(svcs.Riders),
		DriverHandler:  handler.NewDriverHandler(svcs.Drivers),
		RideHandler:    handler.NewRideHandler(svcs.Rides),
		PaymentHandler: handler.NewPaymentHandler(svcs.Payments, opts.References, opts.Clock),
		RedisClient:    opts.RedisClient,
		NewRelicApp:    opts.NewRelicApp,
	})
}
