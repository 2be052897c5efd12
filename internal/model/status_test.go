package model

import "testing"

func TestJobStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusIdle, false},
		{JobStatusRunning, true},
		{JobStatusCancelling, true},
		{JobStatusInterrupted, false},
		{JobStatusFinished, false},
		{JobStatusError, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("JobStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestJobStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   JobStatus
		expected bool
	}{
		{JobStatusIdle, false},
		{JobStatusRunning, false},
		{JobStatusCancelling, false},
		{JobStatusInterrupted, true},
		{JobStatusFinished, true},
		{JobStatusError, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("JobStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestJobStatus_String(t *testing.T) {
	if JobStatusInterrupted.String() != "Interrupted" {
		t.Errorf("Expected 'Interrupted', got '%s'", JobStatusInterrupted.String())
	}
}
