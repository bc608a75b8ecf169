package report

import (
	"time"

	"visionguard-service/internal/model"
)

var (
	testWorkerOne = model.Worker{ID: 1, EmployeeID: "EMP-001", Name: "Aidan Murphy"}
	testWorkerTwo = model.Worker{ID: 2, EmployeeID: "EMP-002", Name: "Bella Ortiz"}

	testCameraGateA   = model.Camera{ID: 10, Name: "Gate A cam", Zone: "Assembly"}
	testCameraWelding = model.Camera{ID: 11, Name: "Welding bay cam", Zone: "Welding"}
)

func testViolation(id int, worker model.Worker, camera model.Camera, t model.PPEType, detectedAt time.Time) model.Violation {
	w := worker
	c := camera
	return model.Violation{
		ID:              id,
		WorkerID:        w.ID,
		Worker:          &w,
		CameraID:        c.ID,
		Camera:          &c,
		ViolationType:   t,
		DetectedAt:      detectedAt,
		ConfidenceScore: 90,
		Status:          model.ViolationPending,
	}
}

// marchViolations is the canonical fixture: worker one with two helmet
// and one vest violation, worker two with two goggles violations, all
// inside March 2025.
func marchViolations() []model.Violation {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	return []model.Violation{
		testViolation(1, testWorkerOne, testCameraGateA, model.PPEHelmet, base),
		testViolation(2, testWorkerOne, testCameraGateA, model.PPEVest, base.Add(time.Hour)),
		testViolation(3, testWorkerOne, testCameraWelding, model.PPEHelmet, base.Add(2*time.Hour)),
		testViolation(4, testWorkerTwo, testCameraWelding, model.PPEGoggles, base.Add(3*time.Hour)),
		testViolation(5, testWorkerTwo, testCameraWelding, model.PPEGoggles, base.Add(4*time.Hour)),
	}
}
