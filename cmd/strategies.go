package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/boyter/dilemma/strategy"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the strategies available to play",
	Run: func(cmd *cobra.Command, args []string) {
		for _, key := range strategy.Keys() {
			s, err := strategy.New(key, strategy.Options{RandomDefectOdds: 10})
			if err != nil {
				logrus.Warnf("Could not build %s: %v", key, err)
				continue
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", key, s.Name()); err != nil {
				logrus.Fatalf("Failed to write strategy list: %v", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}
