package cli

import (
	"fmt"

	"github.com/nconklindev/rowify/internal/config"
	"github.com/nconklindev/rowify/internal/converter"
	"github.com/nconklindev/rowify/internal/download"
	"github.com/nconklindev/rowify/internal/logging"
	"github.com/nconklindev/rowify/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("rowify %s\ncommit: %s\nbuilt: %s\n", b.Version, b.Commit, b.Date)
}

type app struct {
	v    *viper.Viper
	info BuildInfo
}

func (a *app) load() (*config.Config, error) {
	cfg, err := config.Load(a.v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// NewRootCommand builds the rowify command tree. Without a subcommand it
// opens the terminal form.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{v: config.New(), info: info}

	rootCmd := &cobra.Command{
		Use:   "rowify",
		Short: "Turn a string into rows of an Excel sheet",
		Long: `rowify splits a string on whitespace and writes every token as a row of a
single-column Excel sheet under a header. Phone numbers shaped 123-456-7890
stay in one piece.

Examples:
  rowify                                         # interactive form
  rowify convert -f numbers -H Numbers 1 2 3     # writes numbers.xlsx
  rowify serve --port 8080                       # browser form`,
		Version:       info.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runForm()
		},
	}
	rootCmd.SetVersionTemplate(info.String())

	rootCmd.PersistentFlags().StringP("output-dir", "o", ".", "Directory workbooks are saved to")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	_ = a.v.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	_ = a.v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(newConvertCommand(a))
	rootCmd.AddCommand(newServeCommand(a))
	rootCmd.AddCommand(newVersionCommand(a))

	return rootCmd
}

func (a *app) runForm() error {
	cfg, err := a.load()
	if err != nil {
		return err
	}

	logger, logFile, err := logging.SetupFile(cfg.LogLevel, cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	svc := converter.NewService(converter.XLSXSerializer{}, converter.WithLogger(logger))
	model := ui.InitialModel(svc, download.DirDownloader{Dir: cfg.OutputDir})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), a.info.String())
		},
	}
}
