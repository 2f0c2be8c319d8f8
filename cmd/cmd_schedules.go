package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"smartfurnace/internal/engine"
	"smartfurnace/internal/models"
)

func newSchedulesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schedules",
		Aliases: []string{"schedule"},
		Short:   "Manage stored firing schedules",
	}
	cmd.AddCommand(
		newSchedulesListCmd(opts),
		newSchedulesShowCmd(opts),
		newSchedulesImportCmd(opts),
		newSchedulesDeleteCmd(opts),
	)
	return cmd
}

func newSchedulesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List schedule names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			names, err := a.services.Schedules.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(names) == 0 {
				printMuted(out, "No schedules.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func newSchedulesShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Print the steps of a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			sch, err := a.services.Schedules.Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			printTitle(out, "%s", sch.Name)
			if len(sch.Steps) == 0 {
				printMuted(out, "No steps.")
				return nil
			}

			rows := make([][]string, 0, len(sch.Steps))
			for _, st := range sch.Steps {
				end := formatTemp(st.EndTempC)
				if st.Kind == models.KindSoak {
					end = "-"
				}
				rows = append(rows, []string{
					strconv.Itoa(st.Position),
					string(st.Kind),
					formatTemp(st.StartTempC),
					end,
					st.Duration,
					st.Notes,
				})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Kind", "Start", "End", "Duration", "Notes"}, rows))

			if curve, err := a.services.Curve(ctx, sch.Name); err == nil {
				printMuted(out, "total %s, %s to %s", engine.FormatDuration(curve.TotalMinutes),
					formatTemp(curve.MinTempC), formatTemp(curve.MaxTempC))
			}
			return nil
		},
	}
}

// scheduleFile is the YAML layout accepted by schedules import.
type scheduleFile struct {
	Name  string        `yaml:"name"`
	Steps []models.Step `yaml:"steps"`
}

func newSchedulesImportCmd(opts *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Create or replace a schedule from a YAML file",
		Long: `Create or replace a schedule from a YAML file.

The schedule name comes from --name, then the file's name field, then the
file name without its extension.

Example file:
  name: bisque
  steps:
    - kind: ramp
      start_temp_c: 20
      end_temp_c: 200
      duration: "01:00:00"
    - kind: soak
      start_temp_c: 200
      duration: 30 minutes
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sch, err := readScheduleFile(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				sch.Name = name
			}

			a, err := openApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			saved, err := a.services.Schedules.Save(cmd.Context(), sch)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			printOK(cmd.OutOrStdout(), "Saved schedule %q (%d steps)", saved.Name, len(saved.Steps))
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Schedule name (overrides the file)")
	return cmd
}

func readScheduleFile(path string) (models.Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Schedule{}, err
	}
	defer f.Close()

	var sf scheduleFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Schedule{}, fmt.Errorf("%s: %w", path, errEmptyFile)
		}
		return models.Schedule{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if strings.TrimSpace(sf.Name) == "" {
		sf.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return models.Schedule{Name: sf.Name, Steps: sf.Steps}, nil
}

func newSchedulesDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, opts, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.services.Schedules.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			printOK(cmd.OutOrStdout(), "Deleted schedule %q", args[0])
			return nil
		},
	}
}

var errEmptyFile = errors.New("empty schedule file")
