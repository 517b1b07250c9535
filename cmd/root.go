package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bloghub",
	Short: "bloghub is a multi-role blogging platform backend.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("welcome to use bloghub, use `bloghub -h` for help")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
