// Package catalog implements the advising course catalog: a line-oriented
// record parser, a binary-search-tree index keyed by course number, and the
// Planner that loads a catalog file and answers the two advising queries
// (sorted listing and single-course lookup with prerequisite titles).
package catalog

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Planner owns one ordered index plus a course-number-to-title side table
// and orchestrates bulk loading. It is single-session state: one goroutine,
// one owner, no sharing.
type Planner struct {
	tree   Tree
	titles map[string]string
	delim  rune
	loaded bool
	source string
	logger *zap.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithDelimiter overrides the field delimiter used when parsing sources.
func WithDelimiter(delim rune) Option {
	return func(p *Planner) { p.delim = delim }
}

// WithLogger routes load warnings to the given logger.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Planner) { p.logger = logger }
}

// NewPlanner returns an empty, unloaded planner.
func NewPlanner(opts ...Option) *Planner {
	p := &Planner{
		titles: make(map[string]string),
		delim:  DefaultDelimiter,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LoadReport summarizes one completed load.
type LoadReport struct {
	// ID is a UUIDv7 identifying this load, for log correlation.
	ID string `json:"id"`
	// Source is the path or name the catalog was read from.
	Source string `json:"source"`
	// Accepted is the number of records inserted into the index.
	Accepted int `json:"accepted"`
	// Skipped is the number of non-blank lines rejected for format errors.
	Skipped int `json:"skipped"`
}

// Load reads the catalog file at path and replaces the planner's contents
// with its records.
//
// If the file cannot be opened, the planner's prior state is preserved:
// clearing happens only once the source is open and streaming.
func (p *Planner) Load(path string) (*LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()
	return p.LoadFrom(f, path)
}

// LoadFrom replaces the planner's contents with the records read from r.
// source names the origin for reporting only.
//
// Lines are read 1-indexed. Blank lines are skipped silently. A malformed
// line is logged with its line number, counted as skipped, and the load
// continues. A source that yields zero accepted records fails with
// *EmptyLoadError and leaves the planner empty and unloaded. The reset at
// the start is unconditional, so a failed load never leaves a mixture of
// old and new records.
func (p *Planner) LoadFrom(r io.Reader, source string) (*LoadReport, error) {
	p.reset()

	report := &LoadReport{
		ID:     uuid.Must(uuid.NewV7()).String(),
		Source: source,
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		course, ok, err := ParseLine(scanner.Text(), lineNum, p.delim)
		if err != nil {
			p.logger.Warn("skipping malformed catalog line",
				zap.String("load_id", report.ID),
				zap.String("source", source),
				zap.Int("line", lineNum),
				zap.Error(err))
			report.Skipped++
			continue
		}
		if !ok {
			continue
		}
		p.tree.InsertOrUpdate(course)
		p.titles[course.Number] = course.Title
		report.Accepted++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	if report.Accepted == 0 {
		return nil, &EmptyLoadError{Source: source}
	}

	p.loaded = true
	p.source = source
	p.logger.Info("catalog loaded",
		zap.String("load_id", report.ID),
		zap.String("source", source),
		zap.Int("accepted", report.Accepted),
		zap.Int("skipped", report.Skipped))
	return report, nil
}

func (p *Planner) reset() {
	p.tree.Clear()
	p.titles = make(map[string]string)
	p.loaded = false
	p.source = ""
}

// Loaded reports whether a successful load has occurred.
func (p *Planner) Loaded() bool {
	return p.loaded
}

// Source returns the origin of the most recent successful load, or "".
func (p *Planner) Source() string {
	return p.source
}

// Len returns the number of courses currently loaded.
func (p *Planner) Len() int {
	return p.tree.Len()
}

// Courses returns an in-order iterator over the loaded courses. The
// iterator is only meaningful after a successful load.
func (p *Planner) Courses() iter.Seq[Course] {
	return p.tree.All()
}

// CourseSummary is one row of the sorted course listing.
type CourseSummary struct {
	Number string `json:"number"`
	Title  string `json:"title"`
}

// List returns every loaded course in ascending course-number order.
// Returns ErrNotLoaded before the first successful load.
func (p *Planner) List() ([]CourseSummary, error) {
	if !p.loaded {
		return nil, ErrNotLoaded
	}
	out := make([]CourseSummary, 0, p.tree.Len())
	for c := range p.tree.All() {
		out = append(out, CourseSummary{Number: c.Number, Title: c.Title})
	}
	return out, nil
}

// Prerequisite is one prerequisite of a course. Title is resolved through
// the planner's title table; a number with no matching record in the
// current load is reported with Resolved false rather than dropped.
type Prerequisite struct {
	Number   string `json:"number"`
	Title    string `json:"title,omitempty"`
	Resolved bool   `json:"resolved"`
}

// CourseDetail is the full lookup result for one course.
type CourseDetail struct {
	Number        string         `json:"number"`
	Title         string         `json:"title"`
	Prerequisites []Prerequisite `json:"prerequisites,omitempty"`
}

// Lookup finds one course by its (raw, unnormalized) number and resolves
// its prerequisite titles in stored order.
//
// Returns ErrNotLoaded before the first successful load,
// ErrEmptyCourseNumber if raw normalizes to "", and *NotFoundError carrying
// the normalized number on a miss.
func (p *Planner) Lookup(raw string) (*CourseDetail, error) {
	if !p.loaded {
		return nil, ErrNotLoaded
	}
	number := NormalizeNumber(raw)
	if number == "" {
		return nil, ErrEmptyCourseNumber
	}
	course, ok := p.tree.Find(number)
	if !ok {
		return nil, &NotFoundError{Number: number}
	}

	detail := &CourseDetail{
		Number: course.Number,
		Title:  course.Title,
	}
	for _, num := range course.Prerequisites {
		title, resolved := p.titles[num]
		detail.Prerequisites = append(detail.Prerequisites, Prerequisite{
			Number:   num,
			Title:    title,
			Resolved: resolved,
		})
	}
	return detail, nil
}
