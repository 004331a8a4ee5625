package main

import (
	"net/http"

	"go.uber.org/zap"

	"skirmish/internal/config"
	"skirmish/internal/logging"
	"skirmish/internal/server"
)

func main() {
	var env config.ServerEnv
	if err := config.ParseEnv(&env); err != nil {
		panic(err)
	}

	log := logging.New(logging.Options{Level: env.LogLevel, File: env.LogFile})
	defer log.Sync()

	catalog, err := config.LoadCatalog(env.UnitsFile)
	if err != nil {
		log.Fatal("load catalog", zap.String("file", env.UnitsFile), zap.Error(err))
	}

	srv := server.New(catalog, env.MaxRounds, log)
	log.Info("listening",
		zap.String("addr", env.Addr),
		zap.Int("units", len(catalog)),
		zap.Int("max_rounds", env.MaxRounds))
	if err := http.ListenAndServe(env.Addr, srv.Router()); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
