package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mideakin/advisor/internal/catalog"
)

// NewShellCommand creates the interactive shell command.
func NewShellCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive advising menu",
		Long: `Run the menu-driven advising session: load a catalog file, print the
sorted course list, and look up individual courses. All state lives in
memory for the duration of the session; each load fully replaces the
previous one.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := newShellSession(rootOpts, cmd.InOrStdin(), cmd.OutOrStdout())
			return session.run()
		},
	}

	return cmd
}

// shellSession holds the state of one interactive run: a single planner and
// the input/output streams. The menu loop itself is a thin driver; all
// catalog behavior lives in the planner.
type shellSession struct {
	planner *catalog.Planner
	scanner *bufio.Scanner
	out     io.Writer
}

func newShellSession(opts *RootOptions, in io.Reader, out io.Writer) *shellSession {
	return &shellSession{
		planner: newPlanner(opts),
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (s *shellSession) run() error {
	for {
		s.printMenu()

		choice, ok := s.readLine()
		if !ok {
			fmt.Fprintln(s.out, "\nInput stream closed. Exiting.")
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.handleLoad()
		case "2":
			s.handleList()
		case "3":
			s.handleLookup()
		case "9":
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		default:
			fmt.Fprint(s.out, "Invalid selection. Please enter 1, 2, 3, or 9.\n\n")
		}
	}
}

func (s *shellSession) printMenu() {
	fmt.Fprintln(s.out, "================= ABCU Advising Assistance =================")
	fmt.Fprintln(s.out, "1. Load data structure from file")
	fmt.Fprintln(s.out, "2. Print an alphanumeric list of all courses")
	fmt.Fprintln(s.out, "3. Print course information (title and prerequisites)")
	fmt.Fprintln(s.out, "9. Exit")
	fmt.Fprintln(s.out, "=============================================================")
	fmt.Fprint(s.out, "Enter your choice (1, 2, 3, or 9): ")
}

// readLine returns the next input line, or ok false once the stream is
// closed.
func (s *shellSession) readLine() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *shellSession) handleLoad() {
	fmt.Fprint(s.out, "Enter the course data filename (e.g., courses.csv): ")
	// A closed stream reads as blank here; the menu loop exits on its next
	// read.
	filename, _ := s.readLine()
	filename = strings.TrimSpace(filename)
	if filename == "" {
		fmt.Fprint(s.out, "Error: filename cannot be empty.\n\n")
		return
	}

	report, err := s.planner.Load(filename)
	switch {
	case err == nil:
	case catalog.IsEmptyLoad(err):
		fmt.Fprint(s.out, "Error: No valid course records were loaded from the file.\n\n")
		return
	default:
		fmt.Fprintf(s.out, "Error: Could not open file %q.\n\n", filename)
		return
	}

	renderLoadReport(s.out, report)
	fmt.Fprintf(s.out, "File %q loaded successfully.\n\n", filename)
}

func (s *shellSession) handleList() {
	courses, err := s.planner.List()
	if err != nil {
		fmt.Fprintln(s.out, "Please load data first (Option 1).")
		return
	}
	renderCourseList(s.out, courses)
}

func (s *shellSession) handleLookup() {
	fmt.Fprint(s.out, "Enter a course number to look up (e.g., CSCI200): ")
	number, _ := s.readLine()

	detail, err := s.planner.Lookup(number)
	switch {
	case err == nil:
	case errors.Is(err, catalog.ErrNotLoaded):
		fmt.Fprintln(s.out, "Please load data first (Option 1).")
		return
	case errors.Is(err, catalog.ErrEmptyCourseNumber):
		fmt.Fprintln(s.out, "Error: course number cannot be empty.")
		return
	case catalog.IsNotFound(err):
		var nf *catalog.NotFoundError
		errors.As(err, &nf)
		fmt.Fprintf(s.out, "Course %q was not found. Be sure you typed the correct course number (e.g., CSCI200).\n", nf.Number)
		return
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	renderCourseDetail(s.out, detail)
}
