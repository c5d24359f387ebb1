package main

import (
	"context"

	"github.com/connecthub/connecthub-backend/log"
	"github.com/spf13/cobra"
)

var resetSeed bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the demo posts and job postings to storage",
	Long: `Seed writes the demo posts and job postings for any collection that is
not stored yet. With --reset both collections are overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		_, dbs, store, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer dbs.Close()

		if err := store.Seed(ctx, resetSeed); err != nil {
			return err
		}
		log.Info.Printf("Seed complete\n")
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&resetSeed, "reset", false, "Overwrite existing posts and job postings")
}
