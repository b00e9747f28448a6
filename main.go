package main

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"photofeed/config"
	"photofeed/database"
	"photofeed/routes"
	"photofeed/routes/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	store, err := database.Open(cfg.DataDir)
	if err != nil {
		log.Fatal(err)
	}

	router := mux.NewRouter()
	routes.NewHandler(store, cfg).Register(router, cfg.PublicDir)

	var server http.Handler = middleware.RequestID(router)
	server = handlers.CombinedLoggingHandler(os.Stdout, server)
	server = handlers.RecoveryHandler()(server)

	log.Println("Listening on port " + cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, server); err != nil {
		log.Fatal(err)
	}
}
