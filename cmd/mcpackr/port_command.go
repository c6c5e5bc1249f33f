package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mcpackr/internal/config"
	"mcpackr/internal/logging"
	"mcpackr/internal/porter"
	"mcpackr/internal/revision"
)

type portFlags struct {
	output    string
	targets   []string
	lowercase bool
	asJSON    bool
}

type archiveView struct {
	Revision   int      `json:"revision"`
	Label      string   `json:"label"`
	Path       string   `json:"path"`
	Entries    int      `json:"entries"`
	SHA256     string   `json:"sha256"`
	Complaints []string `json:"complaints"`
}

type portView struct {
	RunID      string        `json:"run_id"`
	Pack       string        `json:"pack"`
	Source     int           `json:"source_revision"`
	Archives   []archiveView `json:"archives"`
	Complaints []string      `json:"complaints"`
}

func newPortCommand(ctx *commandContext) *cobra.Command {
	var flags portFlags

	cmd := &cobra.Command{
		Use:   "port [pack-dir]",
		Short: "Build an archive of the pack for every target revision",
		Long: "Build one zip archive per target revision from the resource pack in pack-dir " +
			"(default: the working directory). Archives are written next to the pack unless " +
			"--output or [paths] output_dir says otherwise.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			packDir, err := packDirArg(args)
			if err != nil {
				return err
			}
			opts, err := portOptions(cmd, cfg, packDir, flags)
			if err != nil {
				return err
			}

			logger, closeLog, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer closeLog()
			opts.Logger = logger

			store, err := ctx.openLedger()
			if err != nil {
				return fmt.Errorf("open ledger: %w", err)
			}
			if store != nil {
				defer store.Close()
				opts.Ledger = store
			}

			result, err := porter.Port(cmd.Context(), opts)
			if err != nil {
				return err
			}
			view := newPortView(result)
			if flags.asJSON {
				return writeJSON(cmd, view)
			}
			printPortSummary(cmd, view)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Directory receiving the archives (default: the pack directory)")
	cmd.Flags().StringArrayVarP(&flags.targets, "target", "t", nil, "Target revision, as pack_format id or label (repeatable)")
	cmd.Flags().BoolVar(&flags.lowercase, "lowercase", true, "Lower-case every path written to the archives")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Output the run summary as JSON")
	return cmd
}

func portOptions(cmd *cobra.Command, cfg *config.Config, packDir string, flags portFlags) (porter.Options, error) {
	opts := porter.OptionsFromConfig(cfg, packDir)
	if out := strings.TrimSpace(flags.output); out != "" {
		expanded, err := config.ExpandPath(out)
		if err != nil {
			return opts, fmt.Errorf("resolve output directory: %w", err)
		}
		opts.OutputDir = expanded
	}
	if len(flags.targets) > 0 {
		targets, err := parseTargets(flags.targets)
		if err != nil {
			return opts, err
		}
		opts.Targets = targets
	}
	if cmd.Flags().Changed("lowercase") {
		opts.LowercasePaths = flags.lowercase
	}
	return opts, nil
}

// parseTargets accepts repeated values and comma separated lists.
func parseTargets(values []string) ([]revision.ID, error) {
	var ids []revision.ID
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			id, err := revision.Parse(part)
			if err != nil {
				return nil, fmt.Errorf("--target %q: %w", part, err)
			}
			ids = append(ids, id)
		}
	}
	return revision.Normalize(ids), nil
}

func newPortView(result *porter.Result) portView {
	view := portView{
		RunID:      result.RunID,
		Pack:       result.PackName,
		Source:     int(result.Source),
		Archives:   make([]archiveView, 0, len(result.Archives)),
		Complaints: append([]string{}, result.Complaints...),
	}
	for _, a := range result.Archives {
		view.Archives = append(view.Archives, archiveView{
			Revision:   int(a.Revision),
			Label:      a.Label,
			Path:       a.Path,
			Entries:    a.Entries,
			SHA256:     a.SHA256,
			Complaints: append([]string{}, a.Complaints...),
		})
	}
	return view
}

func printPortSummary(cmd *cobra.Command, view portView) {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	rows := make([][]string, 0, len(view.Archives))
	for _, a := range view.Archives {
		rows = append(rows, []string{
			strconv.Itoa(a.Revision),
			a.Label,
			filepath.Base(a.Path),
			strconv.Itoa(a.Entries),
			strconv.Itoa(len(a.Complaints)),
		})
	}
	fmt.Fprintln(out, renderTable([]column{
		{title: "Format", align: alignRight},
		{title: "Versions"},
		{title: "Archive"},
		{title: "Entries", align: alignRight},
		{title: "Complaints", align: alignRight},
	}, rows))

	if len(view.Complaints) == 0 {
		fmt.Fprintln(out, renderStatusLine(view.Pack, statusOK, "ported without complaints", colorize))
	} else {
		fmt.Fprintln(out, renderStatusLine(view.Pack, statusWarn, fmt.Sprintf("ported with %d complaint(s)", len(view.Complaints)), colorize))
		for _, c := range view.Complaints {
			fmt.Fprintln(out, renderComplaint(c, colorize))
		}
	}
	fmt.Fprintln(out, renderMuted("run "+view.RunID, colorize))
}
