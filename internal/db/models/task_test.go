package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected TaskStatus
		wantErr  bool
	}{
		{"todo", TaskStatusTodo, false},
		{"doing", TaskStatusDoing, false},
		{"done", TaskStatusDone, false},
		{"DONE", TaskStatusDone, false},
		{" Doing ", TaskStatusDoing, false},
		{"pending", "", true},
		{"Pending", "", true},
		{"", "", true},
		{"finished", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := ParseTaskStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestTaskStatusUnmarshalJSON(t *testing.T) {
	var status TaskStatus
	require.NoError(t, json.Unmarshal([]byte(`"DOING"`), &status))
	assert.Equal(t, TaskStatusDoing, status)

	assert.Error(t, json.Unmarshal([]byte(`"Pending"`), &status))
}

func TestTaskMarshalJSON(t *testing.T) {
	deadline := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	task := Task{
		ID:        7,
		ProjectID: 3,
		Title:     "ship the release",
		Status:    TaskStatusTodo,
		Deadline:  &deadline,
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2025-01-01", decoded["due_date"])
	assert.Equal(t, "todo", decoded["status"])
	assert.EqualValues(t, 3, decoded["project_id"])

	// Without a deadline, due_date is an explicit null
	task.Deadline = nil
	data, err = json.Marshal(task)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &decoded))
	value, present := decoded["due_date"]
	assert.True(t, present)
	assert.Nil(t, value)
}

func TestTaskValidate(t *testing.T) {
	task := Task{ProjectID: 1, Title: "valid"}
	assert.NoError(t, task.Validate())

	assert.Error(t, (&Task{ProjectID: 1}).Validate())
	assert.Error(t, (&Task{Title: "orphan"}).Validate())
}
