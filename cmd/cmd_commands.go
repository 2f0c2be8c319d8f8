package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"smartfurnace/internal/engine"
)

func newCommandsCmd(opts *rootOptions) *cobra.Command {
	var program int

	cmd := &cobra.Command{
		Use:   "commands NAME",
		Short: "Print the controller program for a schedule",
		Long: `Print the controller entries that program a schedule into the kiln,
one program slot per step starting at --program.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if program < 0 || program > engine.MaxProgram {
				return fmt.Errorf("--program must be between 0 and %d", engine.MaxProgram)
			}

			a, err := openApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			cmds, err := a.services.Commands(cmd.Context(), args[0], program)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			if len(cmds) == 0 {
				printMuted(out, "No steps.")
				return nil
			}
			rows := make([][]string, 0, len(cmds))
			for _, c := range cmds {
				rows = append(rows, []string{strconv.Itoa(c.Program), c.Temperature, c.Time})
			}
			fmt.Fprintln(out, renderTable([]string{"Program", "Temperature", "Time"}, rows))
			return nil
		},
	}
	cmd.Flags().IntVarP(&program, "program", "p", 0, "First program slot")
	return cmd
}
