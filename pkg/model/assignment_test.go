package model

import (
	"testing"
	"time"
)

func TestDeriveAssignmentStatus(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name        string
		dueAt       *time.Time
		submittedAt *time.Time
		gradedAt    *time.Time
		want        AssignmentStatus
	}{
		{"no dates", nil, nil, nil, AssignmentStatusUpcoming},
		{"due in future", &future, nil, nil, AssignmentStatusUpcoming},
		{"past due", &past, nil, nil, AssignmentStatusOverdue},
		{"submitted", &future, &past, nil, AssignmentStatusSubmitted},
		{"submitted after due", &past, &now, nil, AssignmentStatusSubmitted},
		{"graded", &past, &past, &now, AssignmentStatusCompleted},
		{"graded without submission timestamp", &past, nil, &now, AssignmentStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveAssignmentStatus(tt.dueAt, tt.submittedAt, tt.gradedAt, now)
			if got != tt.want {
				t.Errorf("DeriveAssignmentStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}
