package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visionguard-service/internal/model"
)

func TestByWorkerScenario(t *testing.T) {
	result := ByWorker(marchViolations())
	require.Len(t, result, 2)

	first := result[0]
	assert.Equal(t, 1, first.WorkerID)
	assert.Equal(t, "Aidan Murphy", first.WorkerName)
	assert.Equal(t, "EMP-001", first.EmployeeID)
	assert.Equal(t, 3, first.TotalViolations)
	assert.Equal(t, []model.ViolationTypeCount{
		{Type: "HELMET", Count: 2},
		{Type: "VEST", Count: 1},
	}, first.Breakdown)

	second := result[1]
	assert.Equal(t, 2, second.WorkerID)
	assert.Equal(t, 2, second.TotalViolations)
	assert.Equal(t, []model.ViolationTypeCount{
		{Type: "GOGGLES", Count: 2},
	}, second.Breakdown)
}

func TestByWorkerGroupsByIDNotByDisplayFields(t *testing.T) {
	violations := marchViolations()
	// simulate a row whose preloaded worker copy differs in casing;
	// the id is still the grouping key
	violations[2].Worker = &model.Worker{ID: 1, EmployeeID: "EMP-001", Name: "AIDAN MURPHY"}

	result := ByWorker(violations)
	require.Len(t, result, 2)
	assert.Equal(t, 3, result[0].TotalViolations)
}

func TestByTypeScenario(t *testing.T) {
	result := ByType(marchViolations())
	assert.Equal(t, []model.ViolationTypeCount{
		{Type: "HELMET", Count: 2},
		{Type: "GOGGLES", Count: 2},
		{Type: "VEST", Count: 1},
	}, result)
}

func TestAggregatesReconcile(t *testing.T) {
	violations := marchViolations()
	period, err := ResolvePeriod(2025, 3)
	require.NoError(t, err)

	byWorker := ByWorker(violations)
	byType := ByType(violations)
	summary := Summarize(period, violations)

	workerTotal := 0
	for _, w := range byWorker {
		workerTotal += w.TotalViolations
		nested := 0
		for _, b := range w.Breakdown {
			nested += b.Count
		}
		assert.Equal(t, w.TotalViolations, nested, "worker %d breakdown must sum to its total", w.WorkerID)
	}

	typeTotal := 0
	for _, tc := range byType {
		typeTotal += tc.Count
	}

	assert.Equal(t, 5, workerTotal)
	assert.Equal(t, workerTotal, typeTotal)
	assert.Equal(t, workerTotal, summary.TotalViolations)
	assert.Equal(t, "2025-03", summary.Month)
	assert.Equal(t, byType, summary.Breakdown)
}

func TestAggregatesAreDeterministic(t *testing.T) {
	violations := marchViolations()
	assert.Equal(t, ByWorker(violations), ByWorker(violations))
	assert.Equal(t, ByType(violations), ByType(violations))
}

func TestAggregatesOnEmptyInput(t *testing.T) {
	period, err := ResolvePeriod(2025, 3)
	require.NoError(t, err)

	assert.Empty(t, ByWorker(nil))
	assert.Empty(t, ByType(nil))

	summary := Summarize(period, nil)
	assert.Equal(t, 0, summary.TotalViolations)
	assert.NotNil(t, summary.Breakdown)
	assert.Empty(t, summary.Breakdown)
	assert.Equal(t, "2025-03", summary.Month)
}

func TestByWorkerSubstitutesUnknownForBrokenJoin(t *testing.T) {
	violations := marchViolations()
	violations[0].Worker = nil
	violations[1].Worker = nil
	violations[2].Worker = nil

	result := ByWorker(violations)
	require.Len(t, result, 2)

	// rows 0 through 2 share WorkerID 1, so the group survives intact
	// with the fallback display values
	first := result[0]
	assert.Equal(t, 1, first.WorkerID)
	assert.Equal(t, "Unknown", first.WorkerName)
	assert.Equal(t, "Unknown", first.EmployeeID)
	assert.Equal(t, 3, first.TotalViolations)
}

func TestByWorkerPrefersResolvedWorkerOverFallback(t *testing.T) {
	violations := marchViolations()
	// the first row for worker one lost its join; a later row still
	// carries it, so the group should not stay stuck on the fallback
	violations[0].Worker = nil

	result := ByWorker(violations)
	require.Len(t, result, 2)

	first := result[0]
	assert.Equal(t, 1, first.WorkerID)
	assert.Equal(t, "Aidan Murphy", first.WorkerName)
	assert.Equal(t, "EMP-001", first.EmployeeID)
	assert.Equal(t, 3, first.TotalViolations)
}
