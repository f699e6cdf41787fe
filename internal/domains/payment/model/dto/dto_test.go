package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hostelhub/internal/domains/payment/model/dto"
)

func TestGenerateScheduleRequest_ToModels(t *testing.T) {
	req := dto.GenerateScheduleRequest{
		StudentID:     "student-id",
		HostelID:      "hostel-id",
		MonthlyAmount: 1500,
		Installments:  3,
		StartDate:     "2026-09-01",
	}

	schedules := req.ToModels("test-user")

	assert.Len(t, schedules, 3)

	start, _ := time.Parse("2006-01-02", req.StartDate)

	for i, schedule := range schedules {
		assert.NotEmpty(t, schedule.ID)
		assert.Equal(t, req.StudentID, schedule.StudentID)
		assert.Equal(t, req.HostelID, schedule.HostelID)
		assert.Equal(t, i+1, schedule.InstallmentNo)
		assert.Equal(t, req.MonthlyAmount, schedule.Amount)
		assert.Equal(t, start.AddDate(0, i, 0), schedule.DueDate)
		assert.False(t, schedule.Paid)
		assert.Equal(t, "test-user", schedule.CreatedBy)
	}
}

func TestGenerateScheduleRequest_ToModels_SingleInstallment(t *testing.T) {
	req := dto.GenerateScheduleRequest{
		StudentID:     "student-id",
		HostelID:      "hostel-id",
		MonthlyAmount: 2000,
		Installments:  1,
		StartDate:     "2026-01-31",
	}

	schedules := req.ToModels("test-user")

	assert.Len(t, schedules, 1)
	assert.Equal(t, 1, schedules[0].InstallmentNo)

	start, _ := time.Parse("2006-01-02", req.StartDate)
	assert.Equal(t, start, schedules[0].DueDate)
}
