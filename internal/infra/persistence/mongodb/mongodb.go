// Package mongodb contains the concrete implementation of the persistence
// layer on top of the official MongoDB driver.
package mongodb

import (
	"context"
	"log/slog"

	"foodio/config"
	"foodio/internal/domain/lifecycle"
	"foodio/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	foodsCollection  = "foods"
	ordersCollection = "orders"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle and ties the client to the fx
// lifecycle: ping on start, disconnect on stop.
func New(params Params) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(params.Config.Mongo.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	if params.Config.Mongo.Timeout > 0 {
		opts = opts.SetTimeout(params.Config.Mongo.Timeout)
	}

	client, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return client.Database(params.Config.Mongo.Database), nil
}
