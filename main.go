package main

import (
	"Nathkrupa/CronJobs"
	"Nathkrupa/FiberConfig"
	"Nathkrupa/Models"
	"fmt"
)

func main() {
	Models.Connect()

	reconciler := CronJobs.NewAggregateReconciler(Models.DB, false)
	if err := reconciler.Start(); err != nil {
		fmt.Printf("Failed to start aggregate reconciler: %v\n", err)
	}

	FiberConfig.FiberConfig()
}
