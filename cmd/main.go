package main

import (
	"log"

	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	rt := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("Failed to init push service: %v", err)
	}
	services.InitAlertDeps(config.DB, rt, push)

	r := routes.SetupRouter(rt, push)
	r.Run(":8080")
}
