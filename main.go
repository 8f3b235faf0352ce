package main

import (
	"embed"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	"github.com/penpaperdiary/penpaper-api/internal/api"
)

//go:embed sql/schema/*.sql
var migrations embed.FS

func main() {
	const port = "8000"

	cfg := api.LoadEnvConfig(".env")
	cfg.ConnectToDB(migrations, "sql/schema")

	penpaper := &http.Server{
		Addr:    ":" + port,
		Handler: api.SetupMux(cfg),
	}

	// start server
	log.Fatal(penpaper.ListenAndServe())
}
