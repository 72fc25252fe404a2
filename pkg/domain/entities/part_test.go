package entities

import "testing"

func TestPart_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		part        Part
		expectError bool
	}{
		{"valid", "WIDGET-100", false},
		{"empty", "", true},
		{"max length", Part(make([]byte, MaxPartLength)), false},
		{"too long", Part(make([]byte, MaxPartLength+1)), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.part.Validate()
			if tc.expectError && err == nil {
				t.Fatalf("expected error for %s, got none", tc.name)
			}
			if !tc.expectError && err != nil {
				t.Fatalf("expected no error for %s, got %v", tc.name, err)
			}
		})
	}
}
