package main

import (
	"log"
	"net/http"

	"github.com/tcsatheesh/semker/internal/config"
	"github.com/tcsatheesh/semker/internal/toolserver"
)

func main() {
	cfg := config.Load()

	handler := toolserver.NewServer()

	port := ":" + cfg.ToolsPort
	log.Println("Semker tool services listening on port:", port)
	if err := http.ListenAndServe(port, handler); err != nil {
		log.Fatal(err)
	}
}
