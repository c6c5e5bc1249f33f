package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mcpackr/internal/ledger"
)

type historyView struct {
	ID             int64  `json:"id"`
	RunID          string `json:"run_id"`
	Pack           string `json:"pack"`
	SourceRevision int    `json:"source_revision"`
	Revision       int    `json:"revision"`
	Label          string `json:"label"`
	Path           string `json:"path"`
	Entries        int    `json:"entries"`
	SHA256         string `json:"sha256"`
	Complaints     int    `json:"complaints"`
	CreatedAt      string `json:"created_at"`
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var runID string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show archives recorded in the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openLedger()
			if err != nil {
				return fmt.Errorf("open ledger: %w", err)
			}
			if store == nil {
				return errLedgerDisabled
			}
			defer store.Close()

			var entries []ledger.Entry
			if id := strings.TrimSpace(runID); id != "" {
				entries, err = store.ByRun(cmd.Context(), id)
			} else {
				entries, err = store.List(cmd.Context(), limit)
			}
			if err != nil {
				return fmt.Errorf("read ledger: %w", err)
			}

			if asJSON {
				views := make([]historyView, 0, len(entries))
				for _, e := range entries {
					views = append(views, newHistoryView(e))
				}
				return writeJSON(cmd, views)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No archives recorded")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.CreatedAt.Local().Format("2006-01-02 15:04"),
					e.PackName,
					fmt.Sprintf("%d -> %d", e.SourceRevision, e.Revision),
					e.Label,
					strconv.Itoa(e.Entries),
					strconv.Itoa(e.Complaints),
					e.Path,
				})
			}
			fmt.Fprintln(out, renderTable([]column{
				{title: "Created"},
				{title: "Pack"},
				{title: "Format"},
				{title: "Versions"},
				{title: "Entries", align: alignRight},
				{title: "Complaints", align: alignRight},
				{title: "Path"},
			}, rows))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of archives to show (0 for all)")
	cmd.Flags().StringVar(&runID, "run", "", "Only show archives produced by this run id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newHistoryView(e ledger.Entry) historyView {
	return historyView{
		ID:             e.ID,
		RunID:          e.RunID,
		Pack:           e.PackName,
		SourceRevision: int(e.SourceRevision),
		Revision:       int(e.Revision),
		Label:          e.Label,
		Path:           e.Path,
		Entries:        e.Entries,
		SHA256:         e.SHA256,
		Complaints:     e.Complaints,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
