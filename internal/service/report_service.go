package service

import (
	"context"

	"visionguard-service/internal/model"
	"visionguard-service/internal/report"
)

// ReportService runs the report operations: compile the filter, read the
// matching rows once, then aggregate or render in memory. It holds no
// state between calls; concurrent reports never interact.
type ReportService struct {
	source report.Source

	// strictTypes controls the policy for a non-empty violation-type
	// string that matches nothing. False keeps the historical behavior
	// (treated as no type filter); true rejects the request instead.
	strictTypes bool
}

func NewReportService(source report.Source, strictTypes bool) *ReportService {
	return &ReportService{source: source, strictTypes: strictTypes}
}

func (s *ReportService) compile(filter model.ReportFilter) (report.Query, error) {
	q, err := report.Compile(filter)
	if err != nil {
		return report.Query{}, err
	}
	if q.TypeOutcome == report.TypeUnrecognized && s.strictTypes {
		return report.Query{}, report.ErrUnrecognizedType
	}
	return q, nil
}

// ViolationsByWorker returns per-worker totals with nested per-type
// breakdowns, ordered by total descending.
func (s *ReportService) ViolationsByWorker(ctx context.Context, filter model.ReportFilter) ([]model.WorkerViolationReport, error) {
	q, err := s.compile(filter)
	if err != nil {
		return nil, err
	}
	violations, err := s.source.Violations(ctx, q)
	if err != nil {
		return nil, err
	}
	return report.ByWorker(violations), nil
}

// ViolationsByType returns per-type counts ordered descending. The zone
// predicate applies; a type predicate would collapse the breakdown to a
// single row, so it is left out the way the original report did.
func (s *ReportService) ViolationsByType(ctx context.Context, filter model.ReportFilter) ([]model.ViolationTypeCount, error) {
	filter.ViolationType = ""
	q, err := s.compile(filter)
	if err != nil {
		return nil, err
	}
	violations, err := s.source.Violations(ctx, q)
	if err != nil {
		return nil, err
	}
	return report.ByType(violations), nil
}

// MonthlySummary returns the scalar month view: label, total, breakdown.
// It is scoped by period only.
func (s *ReportService) MonthlySummary(ctx context.Context, year, month int) (*model.MonthlySummary, error) {
	q, err := s.compile(model.ReportFilter{Year: year, Month: month})
	if err != nil {
		return nil, err
	}
	violations, err := s.source.Violations(ctx, q)
	if err != nil {
		return nil, err
	}
	summary := report.Summarize(q.Period, violations)
	return &summary, nil
}

// ExportExcel renders the filtered rows as a spreadsheet.
func (s *ReportService) ExportExcel(ctx context.Context, filter model.ReportFilter) (*report.Export, error) {
	return s.export(ctx, filter, report.RenderExcel)
}

// ExportPDF renders the filtered rows as a paginated document.
func (s *ReportService) ExportPDF(ctx context.Context, filter model.ReportFilter) (*report.Export, error) {
	return s.export(ctx, filter, report.RenderPDF)
}

func (s *ReportService) export(ctx context.Context, filter model.ReportFilter, render func(report.Period, []model.Violation) (report.Export, error)) (*report.Export, error) {
	q, err := s.compile(filter)
	if err != nil {
		return nil, err
	}
	violations, err := s.source.Violations(ctx, q)
	if err != nil {
		return nil, err
	}
	export, err := render(q.Period, violations)
	if err != nil {
		return nil, err
	}
	return &export, nil
}
