package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/library-desk/desk/app"
	"github.com/Astemirdum/library-desk/desk/config"
)

// @title       Library desk API
// @version     1.0
// @BasePath    /api/v1
func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("load envs from .env:", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
