package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/mideakin/advisor/internal/catalog"
)

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRenderCourseList(t *testing.T) {
	buf := &bytes.Buffer{}
	renderCourseList(buf, []catalog.CourseSummary{
		{Number: "CSCI100", Title: "Introduction to Computer Science"},
		{Number: "CSCI200", Title: "Data Structures"},
		{Number: "CSCI300", Title: "Advanced Algorithms"},
		{Number: "MATH201", Title: "Discrete Mathematics"},
	})

	newGoldie(t).Assert(t, "course_list", buf.Bytes())
}

func TestRenderCourseDetail(t *testing.T) {
	buf := &bytes.Buffer{}
	renderCourseDetail(buf, &catalog.CourseDetail{
		Number: "MATH201",
		Title:  "Discrete Mathematics",
		Prerequisites: []catalog.Prerequisite{
			{Number: "MATH101", Resolved: false},
			{Number: "CSCI100", Title: "Introduction to Computer Science", Resolved: true},
		},
	})

	newGoldie(t).Assert(t, "course_detail", buf.Bytes())
}

func TestRenderCourseDetailNoPrerequisites(t *testing.T) {
	buf := &bytes.Buffer{}
	renderCourseDetail(buf, &catalog.CourseDetail{
		Number: "CSCI100",
		Title:  "Introduction to Computer Science",
	})

	newGoldie(t).Assert(t, "course_detail_no_prereqs", buf.Bytes())
}

func TestRenderLoadReport(t *testing.T) {
	buf := &bytes.Buffer{}
	renderLoadReport(buf, &catalog.LoadReport{Accepted: 4})
	if got, want := buf.String(), "Loaded 4 course(s).\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	buf.Reset()
	renderLoadReport(buf, &catalog.LoadReport{Accepted: 2, Skipped: 1})
	if got, want := buf.String(), "Loaded 2 course(s) (1 line(s) skipped for format issues).\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
