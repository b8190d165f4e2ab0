package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestProjectCreateRequestValidate(t *testing.T) {
	valid := ProjectCreateRequest{Name: "My Project", Description: "short"}
	assert.NoError(t, valid.Validate())

	tooShort := ProjectCreateRequest{Name: "ab"}
	assert.Error(t, tooShort.Validate())

	tooLong := ProjectCreateRequest{Name: strings.Repeat("x", 51)}
	assert.Error(t, tooLong.Validate())

	longDescription := ProjectCreateRequest{Name: "ok name", Description: strings.Repeat("x", 201)}
	assert.Error(t, longDescription.Validate())
}

func TestProjectUpdateRequestValidate(t *testing.T) {
	// Absent fields are not validated
	empty := ProjectUpdateRequest{}
	assert.NoError(t, empty.Validate())

	valid := ProjectUpdateRequest{Name: strPtr("New Name")}
	assert.NoError(t, valid.Validate())

	tooShort := ProjectUpdateRequest{Name: strPtr("ab")}
	assert.Error(t, tooShort.Validate())

	longDescription := ProjectUpdateRequest{Description: strPtr(strings.Repeat("x", 201))}
	assert.Error(t, longDescription.Validate())
}

func TestTaskCreateRequestValidate(t *testing.T) {
	valid := TaskCreateRequest{Title: "Do the thing", DueDate: "2025-01-01"}
	assert.NoError(t, valid.Validate())

	tooShort := TaskCreateRequest{Title: "ab"}
	assert.Error(t, tooShort.Validate())

	tooLong := TaskCreateRequest{Title: strings.Repeat("x", 101)}
	assert.Error(t, tooLong.Validate())
}

func TestTaskUpdateRequestValidate(t *testing.T) {
	empty := TaskUpdateRequest{}
	assert.NoError(t, empty.Validate())

	valid := TaskUpdateRequest{Title: strPtr("New title"), DueDate: strPtr("none")}
	assert.NoError(t, valid.Validate())

	tooShort := TaskUpdateRequest{Title: strPtr("ab")}
	assert.Error(t, tooShort.Validate())
}

func TestTaskStatusRequestValidate(t *testing.T) {
	for _, status := range []string{"todo", "doing", "done", "DONE"} {
		req := TaskStatusRequest{Status: status}
		assert.NoError(t, req.Validate(), status)
	}

	// The legacy capitalized Pending value is rejected, the lowercase
	// three-value enum is canonical everywhere.
	for _, status := range []string{"Pending", "pending", "", "finished"} {
		req := TaskStatusRequest{Status: status}
		assert.Error(t, req.Validate(), status)
	}
}
