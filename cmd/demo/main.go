// Command demo runs a single ride end to end against in-memory storage and
// prints the receipt.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"ridehail/internal/app"
	"ridehail/internal/config"
	"ridehail/internal/domain"
	"ridehail/internal/service"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}

func run(ctx context.Context) error {
	logger := log.New(os.Stderr, "demo: ", log.LstdFlags)
	cfg := config.Load()

	svcs := app.NewServices(app.Options{
		Repos:  app.NewMemoryRepositories(),
		Fare:   cfg.Fare,
		Logger: logger,
	})

	if _, err := svcs.Riders.RegisterRider(ctx, "r1", "Chinmay"); err != nil {
		return err
	}

	drivers := []struct {
		id, name string
		lat, lng float64
	}{
		{"d1", "Amit", 19.076, 72.8777},
		{"d2", "Rahul", 19.2, 72.8},
	}
	for _, d := range drivers {
		loc, err := domain.NewLocation(d.lat, d.lng)
		if err != nil {
			return err
		}
		if _, err := svcs.Drivers.RegisterDriver(ctx, service.RegisterDriverRequest{ID: d.id, Name: d.name, Location: loc}); err != nil {
			return err
		}
		if _, err := svcs.Drivers.GoOnline(ctx, d.id); err != nil {
			return err
		}
	}

	pickup, err := domain.NewLocation(19.08, 72.88)
	if err != nil {
		return err
	}
	drop, err := domain.NewLocation(19.1, 72.9)
	if err != nil {
		return err
	}

	ride, err := svcs.Rides.RequestRide(ctx, service.RequestRideRequest{
		RideID:  "ride-101",
		RiderID: "r1",
		Pickup:  pickup,
		Drop:    drop,
	})
	if err != nil {
		return err
	}
	driverID, _ := ride.DriverID()
	fmt.Printf("Ride %s status: %s\n", ride.ID(), ride.Status())
	fmt.Printf("Assigned driver: %s\n", driverID)

	if ride, err = svcs.Rides.StartRide(ctx, ride.ID()); err != nil {
		return err
	}
	fmt.Printf("Ride %s status: %s\n", ride.ID(), ride.Status())

	if ride, err = svcs.Rides.CompleteRide(ctx, ride.ID()); err != nil {
		return err
	}
	fmt.Printf("Ride %s status: %s\n", ride.ID(), ride.Status())

	receipt, err := svcs.Payments.PayForRide(ctx, service.PayForRideRequest{
		RideID:      ride.ID(),
		DurationMin: 18,
		Method:      service.NewUPIPayment(nil, nil),
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(service.FormatReceipt(receipt))
	return nil
}
