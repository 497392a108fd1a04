package main

import (
	"os"

	"github.com/ferbta/babyverse/config"
	"github.com/ferbta/babyverse/routes"
	"github.com/ferbta/babyverse/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
