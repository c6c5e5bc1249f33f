package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mcpackr/internal/revision"
)

type revisionView struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Class string `json:"class"`
}

func newRevisionsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "revisions",
		Short:       "List the pack formats mcpackr can emit",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := revision.All()
			if asJSON {
				views := make([]revisionView, 0, len(catalog))
				for _, r := range catalog {
					views = append(views, revisionView{ID: int(r.ID), Label: r.Label, Class: r.ID.Class().String()})
				}
				return writeJSON(cmd, views)
			}

			rows := make([][]string, 0, len(catalog))
			for _, r := range catalog {
				rows = append(rows, []string{strconv.Itoa(int(r.ID)), r.Label, r.ID.Class().String()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]column{
				{title: "Format", align: alignRight},
				{title: "Versions"},
				{title: "Naming"},
			}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
