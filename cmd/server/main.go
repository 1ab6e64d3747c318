package main

import (
	"github.com/cultural-wonders/backend/internal/server"
	"github.com/cultural-wonders/backend/internal/util"
	"github.com/cultural-wonders/backend/pkg/logger"
	"github.com/cultural-wonders/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
