package logging

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// L defaults to a no-op logger so library code and tests can log without
// calling Init first; the server replaces it at startup.
var L = zap.NewNop()

// Init builds the global logger. Development mode (human-readable console
// output) is selected with ENV=DEV, matching how the portal is run locally.
func Init() {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("ENV") == "DEV" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	L = logger
}

func Sync() {
	if L != nil {
		_ = L.Sync()
	}
}
