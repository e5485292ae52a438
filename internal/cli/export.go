package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mideakin/advisor/internal/catalog"
	"github.com/mideakin/advisor/internal/store"
)

// ExportResult is the JSON payload of the export command.
type ExportResult struct {
	Load     *catalog.LoadReport `json:"load"`
	Database string              `json:"database"`
	Exported int                 `json:"exported"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file] [db]",
		Short: "Write a SQLite snapshot of the catalog",
		Long: `Load the catalog file and write its courses and prerequisites to a
SQLite database for inspection with external tooling. The snapshot
replaces any previous contents of the database.

Either argument may be omitted when catalog.path or export.path is
set in the config file.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runExport(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	path, err := catalogPath(opts, formatter, args)
	if err != nil {
		return err
	}
	dbPath, err := exportPath(opts, formatter, args)
	if err != nil {
		return err
	}

	planner, report, err := loadCatalog(opts, formatter, path)
	if err != nil {
		return err
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeExportFailed, err.Error())
	}
	defer db.Close()

	exported, err := db.SaveSnapshot(cmd.Context(), planner.Source(), planner.Courses())
	if err != nil {
		return fail(formatter, ExitCommandError, ErrCodeExportFailed, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(ExportResult{
			Load:     report,
			Database: dbPath,
			Exported: exported,
		})
	}

	fmt.Fprintf(formatter.Writer, "Exported %d course(s) to %s\n", exported, dbPath)
	return nil
}

// exportPath resolves the snapshot database: the second positional argument
// when given, otherwise export.path from the config.
func exportPath(opts *RootOptions, formatter *OutputFormatter, args []string) (string, error) {
	if len(args) > 1 && args[1] != "" {
		return args[1], nil
	}
	if path := opts.Config().Export.Path; path != "" {
		return path, nil
	}
	return "", fail(formatter, ExitCommandError, ErrCodeGeneric,
		"no snapshot database given (pass a db argument or set export.path in the config)")
}
