package schema_check

import (
	"fmt"
	"strings"
)

type FindingKind string

const (
	MissingTable     FindingKind = "missing_table"
	MissingColumn    FindingKind = "missing_column"
	UnexpectedColumn FindingKind = "unexpected_column"
	TypeMismatch     FindingKind = "type_mismatch"
)

type Finding struct {
	Table    string
	Column   string
	Kind     FindingKind
	Expected string
	Actual   string
}

func (f Finding) String() string {
	switch f.Kind {
	case MissingTable:
		return fmt.Sprintf("%s: table is missing", f.Table)
	case TypeMismatch:
		return fmt.Sprintf("%s.%s: %s (expected %s, got %s)", f.Table, f.Column, f.Kind, f.Expected, f.Actual)
	default:
		return fmt.Sprintf("%s.%s: %s", f.Table, f.Column, f.Kind)
	}
}

type Report struct {
	Tables   int
	Findings []Finding
}

func (r Report) OK() bool {
	return len(r.Findings) == 0
}

func (r Report) String() string {
	if r.OK() {
		return fmt.Sprintf("%d tables checked, no drift", r.Tables)
	}
	lines := make([]string, 0, len(r.Findings)+1)
	lines = append(lines, fmt.Sprintf("%d tables checked, %d findings:", r.Tables, len(r.Findings)))
	for _, f := range r.Findings {
		lines = append(lines, "  "+f.String())
	}
	return strings.Join(lines, "\n")
}
