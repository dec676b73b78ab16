package containers

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mongoImage    = "mongo:7"
	MongoDatabase = "dynasty_tracker_test"
)

type MongoContainer struct {
	container *mongodb.MongoDBContainer
}

func NewMongoContainer() *MongoContainer {
	container, err := mongodb.Run(context.Background(), mongoImage,
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error starting mongo container")
	}

	log.Debug().Str("image", mongoImage).Msg("started mongo container")
	return &MongoContainer{container: container}
}

func (c *MongoContainer) Shutdown() {
	terminate("mongo", c.container)
}

func (c *MongoContainer) URI() string {
	uri, err := c.container.ConnectionString(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("error getting mongo uri")
	}
	return uri
}
