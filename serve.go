package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/connecthub/connecthub-backend/auth"
	"github.com/connecthub/connecthub-backend/log"
	"github.com/connecthub/connecthub-backend/router"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Info.Printf("Starting ConnectHub Backend...\n")

		c, dbs, store, err := openStore(context.Background())
		if err != nil {
			return err
		}
		defer dbs.Close()

		r := router.Init(&router.Server{
			Store: store,
			Auth:  auth.NewManager(dbs.Sessions, c.SessionTTL),
		})

		log.Info.Printf("Listening on :%s with %s storage\n", c.Port, c.Backend)
		return http.ListenAndServe(fmt.Sprintf(":%s", c.Port), r)
	},
}
