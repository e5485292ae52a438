package cli

import (
	"github.com/spf13/cobra"

	"github.com/mideakin/advisor/internal/catalog"
)

// ListResult is the JSON payload of the list command.
type ListResult struct {
	Load    *catalog.LoadReport     `json:"load"`
	Courses []catalog.CourseSummary `json:"courses"`
	Total   int                     `json:"total"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "Print an alphanumeric list of all courses",
		Long: `Load the catalog file and print every course in ascending
course-number order with a trailing total.

The file argument may be omitted when catalog.path is set in the
config file.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	path, err := catalogPath(opts, formatter, args)
	if err != nil {
		return err
	}
	planner, report, err := loadCatalog(opts, formatter, path)
	if err != nil {
		return err
	}

	courses, err := planner.List()
	if err != nil {
		// Unreachable after a successful load; kept for coverage of the
		// not-ready guidance state.
		return fail(formatter, ExitFailure, ErrCodeNotLoaded, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(ListResult{
			Load:    report,
			Courses: courses,
			Total:   len(courses),
		})
	}

	renderCourseList(formatter.Writer, courses)
	return nil
}
