package redis_client

import (
	"context"
	"strconv"

	"github.com/adjust/rmq/v5"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/itinerary/pkg/util"
)

var Client *redis.Client
var QueueConnection rmq.Connection

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

func IsConfigured() bool {
	return util.GetEnvironmentVariables()["TRAVIGO_REDIS_ADDRESS"] != ""
}

func Connect() error {
	address := util.GetEnvironmentVariable("TRAVIGO_REDIS_ADDRESS", defaultConnectionAddress)
	password := util.GetEnvironmentVariable("TRAVIGO_REDIS_PASSWORD", defaultConnectionPassword)
	database := defaultDatabase

	if databaseName := util.GetEnvironmentVariable("TRAVIGO_REDIS_DATABASE", ""); databaseName != "" {
		if n, err := strconv.Atoi(databaseName); err == nil {
			database = n
		} else {
			return err
		}
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	if err := Client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	var err error
	QueueConnection, err = rmq.OpenConnectionWithRedisClient("itinerary", Client, nil)
	if err != nil {
		return err
	}

	log.Info().Str("address", address).Int("database", database).Msg("Redis client setup")

	return nil
}
