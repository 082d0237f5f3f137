package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable_AbsentNullAndValue(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValid bool
	}{
		{name: "absent", body: `{}`, wantSet: false, wantValid: false},
		{name: "null", body: `{"fieldId": null}`, wantSet: true, wantValid: false},
		{name: "value", body: `{"fieldId": "` + id.String() + `"}`, wantSet: true, wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateCropCycleRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			assert.Equal(t, tt.wantSet, req.FieldID.Set)
			assert.Equal(t, tt.wantValid, req.FieldID.Valid)
			if tt.wantValid {
				require.NotNil(t, req.FieldID.Ptr())
				assert.Equal(t, id, *req.FieldID.Ptr())
			} else {
				assert.Nil(t, req.FieldID.Ptr())
			}
		})
	}
}

func TestNullable_RejectsMalformedValue(t *testing.T) {
	var req UpdateRegionRequest
	err := json.Unmarshal([]byte(`{"parentRegionId": "not-a-uuid"}`), &req)
	assert.Error(t, err)
}
