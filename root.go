package main

import (
	"context"
	"io"

	"github.com/connecthub/connecthub-backend/config"
	"github.com/connecthub/connecthub-backend/db"
	"github.com/connecthub/connecthub-backend/log"
	"github.com/connecthub/connecthub-backend/posts"
	"github.com/spf13/cobra"
)

var (
	configPath string
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "connecthub",
	Short: "ConnectHub backend: demo feed, job board and profiles",
	Long: `ConnectHub serves the demo social network's feed, job board and profiles
over HTTP, keeping posts and job postings in memory, redis or postgres.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if quiet {
			log.SetOutput(io.Discard)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Silence logging")

	rootCmd.AddCommand(serveCmd, seedCmd, postsCmd, jobsCmd)
}

// openStore loads the config and opens the store on the configured backend.
// The returned DB must be closed by the caller.
func openStore(ctx context.Context) (*config.Config, *db.DB, *posts.Store, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	d, err := db.Init(ctx, c)
	if err != nil {
		return nil, nil, nil, err
	}
	return c, d, posts.NewStore(d.Storage), nil
}
