package main

import (
	"github.com/spf13/cobra"

	"mcheck/models/raftlog"
)

func newRaftlogCommand(root *rootOptions) *cobra.Command {
	spec := raftlog.DefaultSpec()

	cmd := &cobra.Command{
		Use:   "raftlog",
		Short: "Check rollback safety of the replicated-log model",
		Long: `Check rollback safety of the replicated-log model.

A set of replicas holds append-only logs; entries are replicated, divergent
suffixes are rolled back and elections advance the term. The invariant
states that a majority-acknowledged write is never rolled back. With
--unsafe the commit rule accepts entries from earlier terms and the checker
finds the classic rollback counterexample.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(root.configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("nodes") && cfg.Raftlog.Nodes > 0 {
				spec.Nodes = cfg.Raftlog.Nodes
			}
			if !cmd.Flags().Changed("max-term") && cfg.Raftlog.MaxTerm > 0 {
				spec.MaxTerm = cfg.Raftlog.MaxTerm
			}
			if !cmd.Flags().Changed("max-log") && cfg.Raftlog.MaxLog > 0 {
				spec.MaxLogLen = cfg.Raftlog.MaxLog
			}
			if !cmd.Flags().Changed("unsafe") && cfg.Raftlog.Unsafe {
				spec.UnsafeCommit = true
			}
			return runCheck(cmd, root, cfg, []raftlog.State{raftlog.Initial(spec)})
		},
	}

	cmd.Flags().IntVar(&spec.Nodes, "nodes", spec.Nodes, "number of replicas")
	cmd.Flags().Uint8Var(&spec.MaxTerm, "max-term", spec.MaxTerm, "stop expanding states beyond this term")
	cmd.Flags().IntVar(&spec.MaxLogLen, "max-log", spec.MaxLogLen, "stop expanding states whose logs reach this length")
	cmd.Flags().BoolVar(&spec.UnsafeCommit, "unsafe", spec.UnsafeCommit, "allow committing entries from earlier terms")
	return cmd
}
