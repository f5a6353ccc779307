package main

import (
	"flag"
	"net/http"

	goredis "github.com/redis/go-redis/v9"

	"github.com/itchan-dev/authd/internal/config"
	"github.com/itchan-dev/authd/internal/email"
	"github.com/itchan-dev/authd/internal/handler"
	"github.com/itchan-dev/authd/internal/jwt"
	"github.com/itchan-dev/authd/internal/logger"
	"github.com/itchan-dev/authd/internal/middleware"
	"github.com/itchan-dev/authd/internal/router"
	"github.com/itchan-dev/authd/internal/service"
	"github.com/itchan-dev/authd/internal/storage/memory"
	redisstore "github.com/itchan-dev/authd/internal/storage/redis"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	userStore := memory.NewUserStore()
	codeStore := memory.NewTwoFACodeStore()

	var bannedStore service.BannedTokenStore
	switch cfg.Public.BannedStore {
	case "redis":
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Public.Redis.Addr,
			Password: cfg.RedisPassword(),
			DB:       cfg.Public.Redis.DB,
		})
		bannedStore = redisstore.NewBannedTokenStore(client, cfg.JwtTTL())
		logger.Log.Info("using redis banned token store", "addr", cfg.Public.Redis.Addr)
	default:
		bannedStore = memory.NewBannedTokenStore()
		logger.Log.Info("using in-memory banned token store")
	}

	tokens := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	notifier := email.New(&cfg.Public.Email, cfg.SMTPPassword())

	auth := service.NewAuth(userStore, codeStore, bannedStore, tokens, notifier)
	h := handler.New(auth, cfg)
	authMw := middleware.NewAuth(auth)

	r := router.New(h, authMw, cfg)

	logger.Log.Info("server started", "address", cfg.Public.Address)
	if err := http.ListenAndServe(cfg.Public.Address, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
	}
}
