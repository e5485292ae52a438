package catalog

import (
	"fmt"
	"strings"
)

// DefaultDelimiter separates fields in catalog source files.
const DefaultDelimiter = ','

// ParseError reports a line that could not be parsed as a course record.
// Line numbers are 1-based. Parse errors are recoverable: the loader logs
// them and continues with the next line.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ParseLine converts one line of delimited text into a Course.
//
// The line and every field are trimmed of surrounding whitespace. Fields are
// taken literally; there is no quoting or escaping, so field values must not
// contain the delimiter. The returned bool reports whether a record was
// produced: a blank line yields (Course{}, false, nil) and is not an error.
//
// Field 0 is the course number (normalized), field 1 the title (verbatim),
// and any remaining fields are prerequisite numbers (normalized, empties
// dropped). Fewer than two fields, or a number that is empty after
// normalization, is a *ParseError.
func ParseLine(line string, lineNum int, delim rune) (Course, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Course{}, false, nil
	}

	fields := strings.Split(trimmed, string(delim))
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 2 {
		return Course{}, false, &ParseError{
			Line:    lineNum,
			Message: "expected at least course number and title",
		}
	}

	number := NormalizeNumber(fields[0])
	if number == "" {
		return Course{}, false, &ParseError{
			Line:    lineNum,
			Message: "course number is empty",
		}
	}

	course := Course{
		Number: number,
		Title:  fields[1],
	}
	for _, field := range fields[2:] {
		prereq := NormalizeNumber(field)
		if prereq != "" {
			course.Prerequisites = append(course.Prerequisites, prereq)
		}
	}
	return course, true, nil
}
