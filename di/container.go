package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"meetgrid/api"
	"meetgrid/api/roomapi"
	"meetgrid/config"
	"meetgrid/dao/redis"
	"meetgrid/db"
	"meetgrid/server"
	"meetgrid/server/handlers"
	services "meetgrid/service"
)

// Container holds all application dependencies.
type Container struct {
	Config              config.Config
	RedisClient         db.RedisClient
	RedisDraftDao       *redis.RedisDraftDAO
	RoomAPI             roomapi.RoomAPI
	AvailabilityService *services.AvailabilityService
	ResultService       *services.ResultService
	GridHandler         *handlers.GridHandler
	AvailabilityHandler *handlers.AvailabilityHandler
	ResultHandler       *handlers.ResultHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	MeetGridHttpServer  *server.MeetGridHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg config.Config) (*Container, error) {
	log.Printf("initializing container - env: %s", cfg.Env)

	var (
		redisClient db.RedisClient
		roomAPI     roomapi.RoomAPI
	)
	if cfg.IsProd() {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cacheClient, err := db.NewCacheRedisClient(ctx, redisInternalClient)
		if err != nil {
			_ = redisInternalClient.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		redisClient = cacheClient

		log.Printf("Using prod room api at %s", cfg.RoomAPIBase)
		httpClient := api.NewHTTPClientWithBreaker(cfg.RoomAPIBase, cfg.RoomAPITimeout, api.BreakerSettings{
			Name:             "room-api",
			FailureThreshold: cfg.BreakerFailures,
			OpenTimeout:      cfg.BreakerOpen,
		})
		roomAPI = roomapi.NewRoomApiClient(httpClient)
	} else {
		log.Printf("Using mock room api and in-memory redis")
		redisClient = db.NewMockRedisClient()
		roomAPI = roomapi.NewRoomApiClientMock()
	}

	redisDraftDao := redis.NewRedisDraftDAO(redisClient, cfg.DraftTTL)

	availabilityService := services.NewAvailabilityService(roomAPI, redisDraftDao, cfg.GridInterval)
	resultService := services.NewResultService(roomAPI)

	gridHandler := handlers.NewGridHandler(cfg.GridInterval)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, cfg.GridInterval)
	resultHandler := handlers.NewResultHandler(resultService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(gridHandler, availabilityHandler, resultHandler, muxRouter)
	httpServer := server.NewMeetGridHttpServer(router, muxRouter, cfg.HTTPAddr,
		config.HTTP_SHUTDOWN_TIMEOUT_SECONDS*time.Second)

	return &Container{
		Config:              cfg,
		RedisClient:         redisClient,
		RedisDraftDao:       redisDraftDao,
		RoomAPI:             roomAPI,
		AvailabilityService: availabilityService,
		ResultService:       resultService,
		GridHandler:         gridHandler,
		AvailabilityHandler: availabilityHandler,
		ResultHandler:       resultHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		MeetGridHttpServer:  httpServer,
	}, nil
}
