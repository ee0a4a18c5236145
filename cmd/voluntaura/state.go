package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"voluntaura/internal/models"
	"voluntaura/internal/prefs"
	"voluntaura/internal/storage/sqlite"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Inspect or reset the persisted preference state",
}

var stateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print status sets, progress and stored keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.Open(cfg.Storage.Path, log)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		st := prefs.New(ctx, store, cfg.Storage.Key, log).Snapshot()
		entries, err := store.Keys(ctx)
		if err != nil {
			return err
		}
		renderState(cmd.OutOrStdout(), st, entries)
		return nil
	},
}

var stateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the persisted state so the next start uses defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sqlite.Open(cfg.Storage.Path, log)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		err = store.Delete(ctx, cfg.Storage.Key)
		switch {
		case errors.Is(err, prefs.ErrNotFound):
			fmt.Fprintf(cmd.OutOrStdout(), "nothing stored under %q\n", cfg.Storage.Key)
		case err != nil:
			return err
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "removed %q\n", cfg.Storage.Key)
		}
		return nil
	},
}

func renderState(w io.Writer, st prefs.State, entries []sqlite.Entry) {
	statuses := table.NewWriter()
	statuses.SetOutputMirror(w)
	statuses.SetTitle("Status sets")
	statuses.AppendHeader(table.Row{"Kind", "Count", "IDs"})
	for _, kind := range models.StatusKinds {
		ids := st.Status(kind)
		statuses.AppendRow(table.Row{kind, ids.Len(), strings.Join(ids.Items(), ", ")})
	}
	statuses.Render()

	p := st.Progress()
	progress := table.NewWriter()
	progress.SetOutputMirror(w)
	progress.SetTitle("Progress")
	progress.AppendHeader(table.Row{"Scheduled", "Goal", "Percent", "To go", "Questionnaire"})
	done := "pending"
	if st.QuestionnaireCompleted {
		done = "completed"
	}
	progress.AppendRow(table.Row{p.ScheduledHours, p.GoalHours, fmt.Sprintf("%.0f%%", p.Percentage), p.HoursToGo, done})
	progress.Render()

	keys := table.NewWriter()
	keys.SetOutputMirror(w)
	keys.SetTitle("Stored keys")
	keys.AppendHeader(table.Row{"Key", "Bytes", "Updated"})
	for _, e := range entries {
		keys.AppendRow(table.Row{e.Key, e.Size, e.UpdatedAt.Format("2006-01-02 15:04:05")})
	}
	keys.Render()
}
