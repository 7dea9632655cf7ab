package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/wedplan/internal/budget"
)

// NewScenarioCommand creates the scenario command group.
func NewScenarioCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage budget scenarios",
	}

	cmd.AddCommand(newScenarioListCommand(rootOpts))
	cmd.AddCommand(newScenarioActivateCommand(rootOpts))
	cmd.AddCommand(newScenarioCloneCommand(rootOpts))

	return cmd
}

func newScenarioListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List scenarios with their totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			scenarios, err := store.ListScenarios(ctx)
			if err != nil {
				return err
			}
			expenses, err := store.ListExpenses(ctx, "")
			if err != nil {
				return err
			}
			rows := budget.CompareScenarios(scenarios, expenses)

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ACTIVE\tID\tNAME\tEXPENSES\tTOTAL\tPAID")
			for _, r := range rows {
				mark := ""
				if r.IsActive {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
					mark, r.ScenarioID, r.Name, r.Count, r.Total.StringFixed(2), r.Paid.StringFixed(2))
			}
			return tw.Flush()
		},
	}
}

func newScenarioActivateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <id>",
		Short: "Make a scenario the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			if err := store.ActivateScenario(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to activate %s: %w", args[0], err)
			}
			scenario, err := store.GetScenario(ctx, args[0])
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), scenario)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Activated %q\n", scenario.Name)
			return nil
		},
	}
}

func newScenarioCloneCommand(rootOpts *RootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "clone <id>",
		Short: "Copy a scenario and its expenses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			if name == "" {
				source, err := store.GetScenario(ctx, args[0])
				if err != nil {
					return err
				}
				if source == nil {
					return fmt.Errorf("scenario %s not found", args[0])
				}
				name = source.Name + " (copy)"
			}

			clone, err := store.CloneScenario(ctx, args[0], name)
			if err != nil {
				return fmt.Errorf("failed to clone %s: %w", args[0], err)
			}
			copied, err := store.ListExpenses(ctx, clone.ID)
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"scenario": clone, "copied": len(copied)})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %q (%s) with %d expenses\n", clone.Name, clone.ID, len(copied))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name of the copy (default \"<source> (copy)\")")

	return cmd
}
