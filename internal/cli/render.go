package cli

import (
	"fmt"
	"io"

	"github.com/mideakin/advisor/internal/catalog"
)

const listRule = "-----------------------------------------"

// renderLoadReport prints the load summary, e.g.
// "Loaded 4 course(s) (1 line(s) skipped for format issues)."
func renderLoadReport(w io.Writer, report *catalog.LoadReport) {
	fmt.Fprintf(w, "Loaded %d course(s)", report.Accepted)
	if report.Skipped > 0 {
		fmt.Fprintf(w, " (%d line(s) skipped for format issues)", report.Skipped)
	}
	fmt.Fprintln(w, ".")
}

// renderCourseList prints the sorted course list with a trailing total.
func renderCourseList(w io.Writer, courses []catalog.CourseSummary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "ABCU Computer Science Course List (sorted)")
	fmt.Fprintln(w, listRule)
	for _, c := range courses {
		fmt.Fprintf(w, "%s, %s\n", c.Number, c.Title)
	}
	fmt.Fprintln(w, listRule)
	fmt.Fprintf(w, "Total: %d course(s)\n\n", len(courses))
}

// renderCourseDetail prints one course with its prerequisites. Prerequisites
// without a matching record in the loaded catalog are marked rather than
// dropped.
func renderCourseDetail(w io.Writer, detail *catalog.CourseDetail) {
	fmt.Fprintf(w, "\n%s: %s\n", detail.Number, detail.Title)

	if len(detail.Prerequisites) == 0 {
		fmt.Fprint(w, "Prerequisites: None\n\n")
		return
	}

	fmt.Fprintln(w, "Prerequisites:")
	for _, p := range detail.Prerequisites {
		if p.Resolved {
			fmt.Fprintf(w, "  - %s: %s\n", p.Number, p.Title)
		} else {
			fmt.Fprintf(w, "  - %s (title not found in file)\n", p.Number)
		}
	}
	fmt.Fprintln(w)
}
