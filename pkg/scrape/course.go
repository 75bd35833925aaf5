package scrape

import (
	"fmt"
	"strings"
)

type Course struct {
	Name       string `json:"course" csv:"course"`
	Text       string `json:"text" csv:"text"`
	Department string `json:"department" csv:"department"`
	Prereq     string `json:"prereq" csv:"prereq"`
}

// CodeMode selects how a course code is read off the start of a row.
type CodeMode string

const (
	// CodeBeforePeriod takes everything up to the first period:
	// "ANTH 093. Directed Reading." gives "ANTH 093".
	CodeBeforePeriod CodeMode = "period"
	// CodeFirstTokens takes the first two words with periods removed, which
	// also copes with titles that lack the period after the number.
	CodeFirstTokens CodeMode = "tokens"
)

// PrereqMode selects what happens when a row has several prerequisite lines.
type PrereqMode string

const (
	PrereqAppend PrereqMode = "append"
	PrereqLast   PrereqMode = "last"
)

const prereqLabel = "Prerequisite:"

func ParseCodeMode(s string) (CodeMode, error) {
	switch m := CodeMode(s); m {
	case CodeBeforePeriod, CodeFirstTokens:
		return m, nil
	case "":
		return CodeBeforePeriod, nil
	}
	return "", fmt.Errorf("unknown code mode %q (want %q or %q)", s, CodeBeforePeriod, CodeFirstTokens)
}

func ParsePrereqMode(s string) (PrereqMode, error) {
	switch m := PrereqMode(s); m {
	case PrereqAppend, PrereqLast:
		return m, nil
	case "":
		return PrereqAppend, nil
	}
	return "", fmt.Errorf("unknown prereq mode %q (want %q or %q)", s, PrereqAppend, PrereqLast)
}

// Extractor turns normalized row text into a Course. The zero value uses
// CodeBeforePeriod and PrereqAppend.
type Extractor struct {
	CodeMode   CodeMode
	PrereqMode PrereqMode
}

// Extract derives the course code, department and prerequisites of a row.
func (x Extractor) Extract(row string) (Course, error) {
	if strings.TrimSpace(row) == "" {
		return Course{}, &MalformedRowError{Row: row, Reason: "empty text"}
	}
	name := x.code(row)
	if name == "" {
		return Course{}, &MalformedRowError{Row: row, Reason: "no course code"}
	}
	return x.Enrich(name, row), nil
}

// Enrich fills in the fields derived from a course's code and text.
func (x Extractor) Enrich(name, text string) Course {
	course := Course{Name: name, Text: text}
	if fields := strings.Fields(name); len(fields) > 0 {
		course.Department = fields[0]
	}
	course.Prereq = x.prereq(text)
	return course
}

func (x Extractor) code(row string) string {
	if x.CodeMode == CodeFirstTokens {
		fields := strings.Fields(row)
		if len(fields) > 2 {
			fields = fields[:2]
		}
		return strings.TrimSpace(strings.ReplaceAll(strings.Join(fields, " "), ".", ""))
	}

	head := row
	if i := strings.Index(row, "."); i >= 0 {
		head = row[:i]
	}
	// Never reach past the title line
	return strings.TrimSpace(strings.SplitN(head, "\n", 2)[0])
}

func (x Extractor) prereq(text string) string {
	var prereq string
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, prereqLabel) {
			continue
		}
		// The label is followed by a single separator character
		var rest string
		if r := []rune(line); len(r) > len(prereqLabel)+1 {
			rest = strings.TrimSpace(string(r[len(prereqLabel)+1:]))
		}
		if x.PrereqMode == PrereqLast {
			prereq = rest
		} else {
			prereq += " " + rest
		}
	}
	return strings.TrimSpace(prereq)
}
