package main

import (
	"log"
	"net/http"

	"github.com/forgelogic/greet/internal/devserver"
)

func main() {
	cfg := devserver.LoadConfig()

	logger, err := devserver.NewLogger(cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Close()

	r := devserver.NewRouter(cfg, logger)
	logger.Info("Dev server running on " + cfg.Addr + ", serving " + cfg.WebDir)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
