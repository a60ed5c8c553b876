package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetweenInclusive(t *testing.T) {
	d := func(y int, m time.Month, day int) time.Time {
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 1, DaysBetweenInclusive(d(2025, time.March, 10), d(2025, time.March, 10)))
	assert.Equal(t, 3, DaysBetweenInclusive(d(2025, time.March, 10), d(2025, time.March, 12)))
	assert.Equal(t, 0, DaysBetweenInclusive(d(2025, time.March, 12), d(2025, time.March, 10)))

	// Month boundary
	assert.Equal(t, 2, DaysBetweenInclusive(d(2025, time.March, 31), d(2025, time.April, 1)))

	// Time-of-day must not matter
	start := time.Date(2025, time.March, 10, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.March, 11, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysBetweenInclusive(start, end))
}

func TestUpdateStatusRequestValidate(t *testing.T) {
	for _, status := range []string{"approved", "rejected"} {
		req := UpdateStatusRequest{Status: status}
		assert.NoError(t, req.Validate())
	}
	for _, status := range []string{"pending", "cancelled", ""} {
		req := UpdateStatusRequest{Status: status}
		assert.Error(t, req.Validate())
	}
}

func TestApplyLeaveRequestValidate(t *testing.T) {
	req := ApplyLeaveRequest{
		LeavePolicyID: "pol-1",
		StartDate:     "2025-03-10",
		EndDate:       "2025-03-12",
		Reason:        "family trip",
	}
	assert.NoError(t, req.Validate())

	bad := req
	bad.StartDate = "10-03-2025"
	err := bad.Validate()
	assert.Error(t, err)

	bad = req
	bad.Reason = "  "
	assert.Error(t, bad.Validate())
}
