package main

import (
	"github.com/spf13/cobra"

	"mcheck/models/diehard"
)

func newDiehardCommand(root *rootOptions) *cobra.Command {
	spec := diehard.DefaultSpec()

	cmd := &cobra.Command{
		Use:   "diehard",
		Short: "Check the two-jug puzzle model",
		Long: `Check the two-jug puzzle model.

Two jugs can be filled, emptied and poured into each other. The invariant
states that the big jug never holds the target amount, so the counterexample
trace is the solution of the puzzle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("big") && cfg.Diehard.Big > 0 {
				spec.BigCap = cfg.Diehard.Big
			}
			if !cmd.Flags().Changed("small") && cfg.Diehard.Small > 0 {
				spec.SmallCap = cfg.Diehard.Small
			}
			if !cmd.Flags().Changed("target") && cfg.Diehard.Target > 0 {
				spec.Target = cfg.Diehard.Target
			}
			return runCheck(cmd, root, cfg, []diehard.State{diehard.Initial(spec)})
		},
	}

	cmd.Flags().Int8Var(&spec.BigCap, "big", spec.BigCap, "capacity of the big jug")
	cmd.Flags().Int8Var(&spec.SmallCap, "small", spec.SmallCap, "capacity of the small jug")
	cmd.Flags().Int8Var(&spec.Target, "target", spec.Target, "amount the big jug must never hold")
	return cmd
}
