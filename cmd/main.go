package main

import (
	"tokenswap/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Token Swap API
// @version 1.0
// @description Token lists, pairs, quotes and signed swap submission against the sandbox trading provider.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("application stopped")
	}
}
