package main

import (
	"os"

	"github.com/appdotbuilder/nutri-scan/config"
	"github.com/appdotbuilder/nutri-scan/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
