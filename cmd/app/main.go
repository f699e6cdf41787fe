package main

import (
	"hostelhub/config"
	"hostelhub/di"
	"hostelhub/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
