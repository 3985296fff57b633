package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/diary"
	"github.com/akyairhashvil/sitediary/internal/models"
	"github.com/akyairhashvil/sitediary/internal/persist"
	"github.com/akyairhashvil/sitediary/internal/report"
	"github.com/akyairhashvil/sitediary/internal/tui"
	"github.com/akyairhashvil/sitediary/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var errWrongSecret = errors.New("password incorrect")

// readSecret prompts on the terminal without echo. Tests replace it.
var readSecret = promptForKey

type options struct {
	configPath string
	savesDir   string
	reportsDir string
	layout     string
	format     string
	filter     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "sitediary",
		Short: "Site Diary Verification Log",
		Long: `Record and verify site diary entries for a ground investigation package.

Run without arguments to open the interactive form. Saved reports can be
listed and exported to XLSX or PDF from the command line.`,
		Version:       tui.VersionLabel(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultConfigPath(), "config file")
	root.PersistentFlags().StringVar(&opts.savesDir, "saves-dir", "", "directory for saved reports (overrides config)")
	root.PersistentFlags().StringVar(&opts.reportsDir, "reports-dir", "", "directory for exported reports (overrides config)")
	root.PersistentFlags().StringVar(&opts.layout, "layout", "", "form layout: table or daily (overrides config)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved reports, newest first",
		Long: `Lists saved reports, newest first. --filter narrows the list with
project:<no>, package:<n>, status:<pending|verified|issues> and free text
matched against entries, notes and sign-off names.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), opts)
		},
	}

	listCmd.Flags().StringVar(&opts.filter, "filter", "", "only list reports matching this query")

	exportCmd := &cobra.Command{
		Use:   "export <save>",
		Short: "Export a saved report to XLSX or PDF",
		Long: `Loads a saved report and writes it to the reports directory as
Site_Diary_Log_<YYYY-MM-DD>.<format>. The shared password is required.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.OutOrStdout(), opts, args[0])
		},
	}
	exportCmd.Flags().StringVar(&opts.format, "format", string(report.FormatSpreadsheet), "output format: xlsx or pdf")

	root.AddCommand(listCmd, exportCmd)
	return root
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.savesDir != "" {
		cfg.SavesDir = opts.savesDir
	}
	if opts.reportsDir != "" {
		cfg.ReportsDir = opts.reportsDir
	}
	if opts.layout != "" {
		cfg.Layout = opts.layout
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", opts.configPath, err)
	}
	return cfg, nil
}

func setup(opts *options) (*config.Config, *zap.Logger, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}
	logger, err := util.NewLogger(cfg.LogFile, cfg.Debug)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runTUI(opts *options) error {
	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store := persist.NewStore(cfg.SavesDir, time.Now, logger.Named("persist"))
	model := tui.NewMainModel(tui.Options{
		State:      diary.NewState(models.Layout(cfg.Layout), time.Now),
		Store:      store,
		Logger:     logger.Named("tui"),
		ReportsDir: cfg.ReportsDir,
		SecretHash: cfg.PasswordHash,
		Theme:      cfg.Theme,
		Now:        time.Now,
	})
	logger.Info("session started", zap.String("layout", cfg.Layout), zap.String("saves_dir", cfg.SavesDir))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Info("session ended")
	return nil
}

func runList(out io.Writer, opts *options) error {
	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store := persist.NewStore(cfg.SavesDir, time.Now, logger.Named("persist"))
	names, err := store.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(out, "No saved reports in %s\n", cfg.SavesDir)
		return nil
	}
	query := util.ParseSearchQuery(opts.filter)
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPROJECT\tSAVED")
	for _, name := range names {
		r, meta, err := store.LoadWithMeta(name)
		if err != nil {
			if query.Empty() {
				fmt.Fprintf(w, "%s\t-\tunreadable: %v\n", name, errors.Unwrap(err))
			}
			continue
		}
		if !diary.Matches(r, query) {
			continue
		}
		saved := "-"
		if !meta.SavedAt.IsZero() {
			saved = meta.SavedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s %s\t%s\n", name, r.Project.ProjectNo, r.Project.GIPackage, saved)
	}
	return w.Flush()
}

func runExport(out io.Writer, opts *options, name string) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	cfg, logger, err := setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	secret, err := readSecret("Password: ")
	if err != nil {
		return err
	}
	if !util.CheckSecret(cfg.PasswordHash, secret) {
		logger.Warn("export refused", zap.String("file", name))
		return errWrongSecret
	}

	store := persist.NewStore(cfg.SavesDir, time.Now, logger.Named("persist"))
	doc, err := store.Load(name)
	if err != nil {
		return err
	}
	path, err := report.ExportFile(cfg.ReportsDir, format, doc, time.Now())
	if err != nil {
		util.LogError(logger, "export "+string(format), err)
		return err
	}
	logger.Info("report exported", zap.String("file", name), zap.String("path", path))
	fmt.Fprintf(out, "Exported %s\n", path)
	return nil
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
