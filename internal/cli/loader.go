package cli

import (
	"github.com/mideakin/advisor/internal/catalog"
)

// newPlanner builds a planner configured from the global options.
func newPlanner(opts *RootOptions) *catalog.Planner {
	return catalog.NewPlanner(
		catalog.WithDelimiter(opts.Config().Catalog.DelimiterRune()),
		catalog.WithLogger(opts.Logger()),
	)
}

// catalogPath resolves the catalog file for a one-shot command: the first
// positional argument when given, otherwise catalog.path from the config.
func catalogPath(opts *RootOptions, formatter *OutputFormatter, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if path := opts.Config().Catalog.Path; path != "" {
		return path, nil
	}
	return "", fail(formatter, ExitCommandError, ErrCodeGeneric,
		"no catalog file given (pass a file argument or set catalog.path in the config)")
}

// loadCatalog loads the catalog at path into a fresh planner, mapping load
// failures to coded CLI errors: an unreadable source is a command error, a
// source with no valid records is a domain failure.
func loadCatalog(opts *RootOptions, formatter *OutputFormatter, path string) (*catalog.Planner, *catalog.LoadReport, error) {
	planner := newPlanner(opts)
	report, err := planner.Load(path)
	switch {
	case err == nil:
	case catalog.IsEmptyLoad(err):
		return nil, nil, fail(formatter, ExitFailure, ErrCodeEmptyLoad, err.Error())
	default:
		return nil, nil, fail(formatter, ExitCommandError, ErrCodeOpenFailed, err.Error())
	}

	formatter.VerboseLog("Loaded %d course(s) from %s (%d skipped)",
		report.Accepted, path, report.Skipped)
	return planner, report, nil
}
