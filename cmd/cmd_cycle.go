package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"smartfurnace/internal/engine"
)

func newStartCycleCmd(opts *rootOptions) *cobra.Command {
	var schedule string

	cmd := &cobra.Command{
		Use:   "start-cycle",
		Short: "Record now as the start of the firing cycle",
		Long: `Record the current time as the start of the firing cycle.

There is one cycle start per installation. Starting again replaces it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			st, err := a.services.Cycle.Start(cmd.Context(), schedule)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printOK(out, "Cycle started at %s", st.StartedAt.Format(time.RFC3339))
			if st.Schedule != "" {
				printMuted(out, "schedule: %s", st.Schedule)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&schedule, "schedule", "s", "", "Schedule fired by this cycle")
	return cmd
}

func newCurrentTempCmd(opts *rootOptions) *cobra.Command {
	var (
		schedule string
		at       string
	)

	cmd := &cobra.Command{
		Use:   "current-temp",
		Short: "Show the target temperature of a schedule right now",
		Long: `Evaluate a schedule against the recorded cycle start.

Without --schedule the schedule named by start-cycle is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Time{}
			if at != "" {
				t, err := time.Parse(time.RFC3339Nano, at)
				if err != nil {
					return fmt.Errorf("invalid --at %q: expected RFC3339", at)
				}
				now = t
			}

			a, err := openApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			if schedule == "" {
				st, ok, err := a.services.Cycle.Current(ctx)
				if err != nil {
					return err
				}
				if ok {
					schedule = st.Schedule
				}
			}
			if schedule == "" {
				return errors.New("no schedule: pass --schedule or start a cycle with one")
			}

			ev, err := a.services.Evaluate(ctx, schedule, now)
			if err != nil {
				return err
			}
			printEvaluation(cmd, schedule, ev)
			return nil
		},
	}
	cmd.Flags().StringVarP(&schedule, "schedule", "s", "", "Schedule to evaluate")
	cmd.Flags().StringVar(&at, "at", "", "Evaluate at this RFC3339 time instead of now")
	return cmd
}

func printEvaluation(cmd *cobra.Command, schedule string, ev engine.Evaluation) {
	out := cmd.OutOrStdout()
	printTitle(out, "%s", schedule)

	temp := "not available"
	if c, ok := ev.Temperature(); ok {
		temp = formatTemp(c)
	}
	step := "-"
	if ev.StepIndex >= 0 {
		step = strconv.Itoa(ev.StepIndex + 1)
	}

	rows := [][]string{
		{"status", string(ev.Status)},
		{"target", temp},
		{"step", step},
	}
	if ev.Status == engine.StatusRunning || ev.Status == engine.StatusComplete {
		rows = append(rows,
			[]string{"elapsed", engine.FormatDuration(ev.ElapsedMinutes)},
			[]string{"remaining", engine.FormatDuration(ev.RemainingMinutes)},
		)
	}
	fmt.Fprintln(out, renderPairs(rows))
}
