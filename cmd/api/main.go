package main

import (
	"log"

	"sureshot/cmd"
)

func main() {
	apiHandler, schedulerHandler, config, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	if _, err := schedulerHandler.Start(); err != nil {
		log.Fatal(err)
	}

	if err := apiHandler.StartApi(config.ListenPort); err != nil {
		log.Fatal(err)
	}
}
