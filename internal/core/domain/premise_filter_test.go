package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBuildingUUIDs(t *testing.T) {
	t.Parallel()

	valid1 := "3e3f3c94-7a6d-4e12-9a5e-9f3ee1a9a111"
	valid2 := "94b3c1f0-1111-4e12-9a5e-9f3ee1a9a222"

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "whitespace only", input: "   ", want: nil},
		{name: "single valid", input: valid1, want: []string{valid1}},
		{name: "two valid", input: valid1 + "," + valid2, want: []string{valid1, valid2}},
		{name: "spaces trimmed", input: " " + valid1 + " , " + valid2, want: []string{valid1, valid2}},
		{name: "invalid fragment skipped", input: valid1 + ",not-a-uuid," + valid2, want: []string{valid1, valid2}},
		{name: "all invalid", input: "foo,bar", want: nil},
		{name: "trailing comma", input: valid1 + ",", want: []string{valid1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ParseBuildingUUIDs(tt.input))
		})
	}
}
