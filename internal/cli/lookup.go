package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mideakin/advisor/internal/catalog"
)

// LookupResult is the JSON payload of the lookup command.
type LookupResult struct {
	Load   *catalog.LoadReport   `json:"load"`
	Course *catalog.CourseDetail `json:"course"`
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [file] <course>",
		Short: "Print course information (title and prerequisites)",
		Long: `Load the catalog file and print one course's title and
prerequisites. Prerequisite titles are resolved against the loaded
catalog; numbers without a matching record are marked as not found
in the file.

With one argument the catalog file comes from catalog.path in the
config and the argument is the course number.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runLookup(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	var fileArgs []string
	number := args[len(args)-1]
	if len(args) == 2 {
		fileArgs = args[:1]
	}

	path, err := catalogPath(opts, formatter, fileArgs)
	if err != nil {
		return err
	}
	planner, report, err := loadCatalog(opts, formatter, path)
	if err != nil {
		return err
	}

	detail, err := planner.Lookup(number)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrEmptyCourseNumber):
		return fail(formatter, ExitFailure, ErrCodeEmptyNumber, "course number cannot be empty")
	case catalog.IsNotFound(err):
		return fail(formatter, ExitFailure, ErrCodeNotFound, err.Error())
	default:
		return fail(formatter, ExitFailure, ErrCodeGeneric, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(LookupResult{
			Load:   report,
			Course: detail,
		})
	}

	renderCourseDetail(formatter.Writer, detail)
	return nil
}
