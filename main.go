package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/linked-collections/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
