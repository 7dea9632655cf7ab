package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmynk/wedplan/internal/dashboard"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	var scenarioID string
	var all bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard overview",
		Long: `Print the same overview as the dashboard. The budget covers the active
scenario unless --scenario or --all is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			if scenarioID == "" && !all {
				active, err := store.GetActiveScenario(ctx)
				if err != nil {
					return err
				}
				if active != nil {
					scenarioID = active.ID
				}
			}

			snap, err := dashboard.Load(ctx, store, dashboard.DefaultTimeout, scenarioID)
			if err != nil {
				return err
			}
			st := dashboard.Compute(snap, now())

			if rootOpts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), st)
			}
			writeStatsText(cmd.OutOrStdout(), st)
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioID, "scenario", "", "scenario whose expenses feed the budget")
	cmd.Flags().BoolVar(&all, "all", false, "include the expenses of every scenario")
	cmd.MarkFlagsMutuallyExclusive("scenario", "all")

	return cmd
}

func writeStatsText(w io.Writer, st dashboard.Stats) {
	if st.Project != nil {
		fmt.Fprintf(w, "Project:  %s (%s)\n", st.Project.Name, st.Project.Currency)
	}

	t := st.Tasks
	fmt.Fprintf(w, "Tasks:    %d total, %d todo, %d doing, %d done, %d overdue\n",
		t.Total, t.Todo, t.Doing, t.Done, t.Overdue)

	g := st.Guests
	fmt.Fprintf(w, "Guests:   %d invited (%d people), %d confirmed (%d people), %d pending, %d not sent, %d declined\n",
		g.Total, g.HeadCount, g.Confirmed, g.ConfirmedHeadCount, g.Pending, g.NotSent, g.Declined)

	b := st.Budget
	fmt.Fprintf(w, "Budget:   %s total, %s paid, %s remaining (%d expenses)\n",
		b.Total.StringFixed(2), b.Paid.StringFixed(2), b.Remaining.StringFixed(2), b.Count)
	for _, c := range b.Categories {
		fmt.Fprintf(w, "  %-12s %10s %10s paid\n", c.Category, c.Total.StringFixed(2), c.Paid.StringFixed(2))
	}

	v := st.Vendors
	fmt.Fprintf(w, "Vendors:  %d total, %d booked, %d considering, %d rejected\n",
		v.Total, v.Booked, v.Considering, v.Rejected)

	e := st.Events
	fmt.Fprintf(w, "Timeline: %d events, %d upcoming, %d past\n", e.Total, e.Upcoming, e.Past)

	fmt.Fprintf(w, "Notes:    %d notes, %d tagged\n", st.Notes.Total, st.Notes.WithTags)
}
