package main

import (
	"os"

	"github.com/connecthub/connecthub-backend/log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error.Println(err)
		os.Exit(1)
	}
}
