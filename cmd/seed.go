package cmd

import (
	"context"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narasux/bloghub/pkg/infras/database"
	"github.com/narasux/bloghub/pkg/logging"
	"github.com/narasux/bloghub/pkg/seeder"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "seed generate demo users, blogs and view events.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		logging.InitLogger()
		database.InitDBClient(ctx)

		if err := seeder.Run(ctx, database.Client(ctx)); err != nil {
			log.Fatalf("failed to seed demo data: %s", err)
		}
		color.Green("demo data generated")
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
