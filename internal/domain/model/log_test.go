package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		key    string
		value  interface{}
		verify func(*testing.T, *LogEntry)
	}{
		{
			name:  "add field to entry with nil fields map",
			entry: &LogEntry{},
			key:   "test_key",
			value: "test_value",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "test_value", e.Fields["test_key"])
			},
		},
		{
			name: "add field to entry with existing fields",
			entry: &LogEntry{
				Fields: map[string]interface{}{
					"existing": "value",
				},
			},
			key:   "line_id",
			value: "p03",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "value", e.Fields["existing"])
				assert.Equal(t, "p03", e.Fields["line_id"])
			},
		},
		{
			name: "overwrite existing field",
			entry: &LogEntry{
				Fields: map[string]interface{}{
					"key": "old_value",
				},
			},
			key:   "key",
			value: "new_value",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "new_value", e.Fields["key"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithField(tt.key, tt.value)
			assert.Equal(t, tt.entry, result)
			tt.verify(t, result)
		})
	}
}
