package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reqqual/reqqual/internal/domain/rules"
	"github.com/reqqual/reqqual/internal/infrastructure/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the detector catalog in evaluation order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(config.DefaultFile)
		if err != nil {
			return err
		}

		catalog := rules.DefaultCatalog(cfg.RuleConfig())
		for _, d := range catalog.Detectors() {
			fmt.Printf("%-8s %s\n", d.ID(), d.Description())
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(rulesCmd)
}
