package main

import (
	"shop_backend/internal/app"
	"shop_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
