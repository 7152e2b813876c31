package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCheckString(t *testing.T) {
	tests := []struct {
		input         string
		expectedType  string
		expectedParam string
	}{
		{"array_of:string", "array_of", "string"},
		{"uuid", "uuid", ""},
		{"one_of:string,number", "one_of", "string,number"},
		{"type_is:date", "type_is", "date"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			checkType, param := ParseCheckString(tt.input)
			assert.Equal(t, tt.expectedType, checkType)
			assert.Equal(t, tt.expectedParam, param)
		})
	}
}
