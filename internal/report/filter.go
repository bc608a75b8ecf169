package report

import (
	"context"
	"errors"

	"visionguard-service/internal/model"
)

// TypeOutcome tags how the optional violation-type string resolved
// against the PPE enumeration.
type TypeOutcome int

const (
	// TypeUnspecified means no type string was supplied.
	TypeUnspecified TypeOutcome = iota
	// TypeMatched means the string parsed to exactly one PPE type.
	TypeMatched
	// TypeUnrecognized means a non-empty string matched nothing. Whether
	// that behaves as "no filter" or as a rejection is the caller's
	// policy, not the compiler's.
	TypeUnrecognized
)

// Query is a compiled report filter: the resolved period plus the
// optional zone and type predicates. Zone stays an exact-match string
// against the camera's persisted casing; the asymmetry with the
// case-insensitive type parse is intentional and kept as-is.
type Query struct {
	Period      Period
	Zone        string
	Type        *model.PPEType
	TypeOutcome TypeOutcome
}

// HasZone reports whether a zone predicate applies.
func (q Query) HasZone() bool {
	return q.Zone != ""
}

// Compile validates the filter's period and resolves its optional
// predicates. An unrecognized type string never errors here; it is
// surfaced through TypeOutcome so the caller can pick a policy.
func Compile(filter model.ReportFilter) (Query, error) {
	period, err := ResolvePeriod(filter.Year, filter.Month)
	if err != nil {
		return Query{}, err
	}

	q := Query{Period: period, Zone: filter.CameraZone}
	if filter.ViolationType != "" {
		if parsed, ok := model.ParsePPEType(filter.ViolationType); ok {
			q.Type = &parsed
			q.TypeOutcome = TypeMatched
		} else {
			q.TypeOutcome = TypeUnrecognized
		}
	}
	return q, nil
}

// ErrUnrecognizedType is returned by strict callers when the type string
// matched nothing; see Query.TypeOutcome.
var ErrUnrecognizedType = errors.New("unrecognized violation type")

// Matches evaluates the compiled predicate against a single row. The
// gorm source pushes the same predicate into SQL; this form exists for
// in-memory sources and for the equivalence tests.
func (q Query) Matches(v model.Violation) bool {
	if !q.Period.Contains(v.DetectedAt) {
		return false
	}
	if q.HasZone() {
		if v.Camera == nil || v.Camera.Zone != q.Zone {
			return false
		}
	}
	if q.Type != nil && v.ViolationType != *q.Type {
		return false
	}
	return true
}

// Source is the read-only query surface the core depends on. Rows come
// back with Worker and Camera already joined and ordered by DetectedAt
// descending. Errors are propagated to the caller unchanged.
type Source interface {
	Violations(ctx context.Context, q Query) ([]model.Violation, error)
}
