package main

import (
	"os"

	"github.com/hukuhuku/shot-tracker/config"
	"github.com/hukuhuku/shot-tracker/routes"
	"github.com/hukuhuku/shot-tracker/utils"
)

func main() {
	config.InitDB()
	utils.InitFirebase()

	r := routes.SetupDefaultRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
