package main

import (
	"github.com/OFFIS-RIT/lingraph/internal/server"
	"github.com/OFFIS-RIT/lingraph/internal/util"
	"github.com/OFFIS-RIT/lingraph/pkg/logger"
	"github.com/OFFIS-RIT/lingraph/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug:  debug,
		Format: util.GetEnvString("LOG_FORMAT", "text"),
		Prefix: "server",
	})
	logger.Init(consoleLogger)

	server.Init()
}
