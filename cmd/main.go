package main

import (
	"log"

	"github.com/mark-blue-evans/purescan/config"
	"github.com/mark-blue-evans/purescan/routes"
	"github.com/mark-blue-evans/purescan/services"
	"github.com/mark-blue-evans/purescan/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	rt := services.NewRealtimeHub()
	ps, err := services.NewPushService(config.DB)
	if err != nil {
		log.Fatalf("push service init failed: %v", err)
	}
	services.InitAlertDeps(config.DB, rt, ps)

	r := routes.SetupRouter(rt, ps)
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
