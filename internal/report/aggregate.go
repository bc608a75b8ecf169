package report

import (
	"sort"

	"visionguard-service/internal/model"
)

// unknownLabel substitutes for any worker or camera join that failed to
// resolve. Aggregation and export share it so both paths degrade the
// same way instead of one of them crashing on a dangling reference.
const unknownLabel = "Unknown"

func workerName(v model.Violation) string {
	if v.Worker == nil || v.Worker.Name == "" {
		return unknownLabel
	}
	return v.Worker.Name
}

func workerEmployeeID(v model.Violation) string {
	if v.Worker == nil || v.Worker.EmployeeID == "" {
		return unknownLabel
	}
	return v.Worker.EmployeeID
}

func cameraZone(v model.Violation) string {
	if v.Camera == nil || v.Camera.Zone == "" {
		return unknownLabel
	}
	return v.Camera.Zone
}

// typeCounter is an ordered per-type counter: counts keyed by PPE type,
// emission in first-seen order so repeat runs over the same input
// produce identical output.
type typeCounter struct {
	counts map[model.PPEType]int
	order  []model.PPEType
}

func newTypeCounter() *typeCounter {
	return &typeCounter{counts: make(map[model.PPEType]int)}
}

func (c *typeCounter) add(t model.PPEType) {
	if _, seen := c.counts[t]; !seen {
		c.order = append(c.order, t)
	}
	c.counts[t]++
}

// breakdown emits (type, count) pairs sorted descending by count; ties
// keep first-seen order via the stable sort.
func (c *typeCounter) breakdown() []model.ViolationTypeCount {
	result := make([]model.ViolationTypeCount, 0, len(c.order))
	for _, t := range c.order {
		result = append(result, model.ViolationTypeCount{Type: t.String(), Count: c.counts[t]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// ByWorker groups violations by worker and nests a per-type breakdown
// inside each group. The grouping key is the worker id alone; name and
// employee code are carried as associated data so two rows for the same
// worker can never split into separate groups. Output is ordered by
// total descending, ties in first-seen order.
func ByWorker(violations []model.Violation) []model.WorkerViolationReport {
	type group struct {
		report model.WorkerViolationReport
		types  *typeCounter
	}

	groups := make(map[int]*group)
	order := make([]int, 0)

	for _, v := range violations {
		g, ok := groups[v.WorkerID]
		if !ok {
			g = &group{
				report: model.WorkerViolationReport{
					WorkerID:   v.WorkerID,
					WorkerName: workerName(v),
					EmployeeID: workerEmployeeID(v),
				},
				types: newTypeCounter(),
			}
			groups[v.WorkerID] = g
			order = append(order, v.WorkerID)
		} else {
			// A later row may carry the worker join an earlier row
			// was missing; prefer the resolved fields when they show up.
			if g.report.WorkerName == unknownLabel {
				g.report.WorkerName = workerName(v)
			}
			if g.report.EmployeeID == unknownLabel {
				g.report.EmployeeID = workerEmployeeID(v)
			}
		}
		g.report.TotalViolations++
		g.types.add(v.ViolationType)
	}

	result := make([]model.WorkerViolationReport, 0, len(order))
	for _, id := range order {
		g := groups[id]
		g.report.Breakdown = g.types.breakdown()
		result = append(result, g.report)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalViolations > result[j].TotalViolations
	})
	return result
}

// ByType groups the same violation set by PPE type only, ordered by
// count descending.
func ByType(violations []model.Violation) []model.ViolationTypeCount {
	counter := newTypeCounter()
	for _, v := range violations {
		counter.add(v.ViolationType)
	}
	return counter.breakdown()
}

// Summarize produces the monthly scalar summary: the period label, the
// total count and the per-type breakdown. An empty input yields a zero
// total with an empty (non-nil) breakdown, never an error.
func Summarize(period Period, violations []model.Violation) model.MonthlySummary {
	return model.MonthlySummary{
		Month:           period.Label(),
		TotalViolations: len(violations),
		Breakdown:       ByType(violations),
	}
}
