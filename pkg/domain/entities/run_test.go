package entities

import "testing"

func TestNewRun_Validation(t *testing.T) {
	cfg := Config{LeewayDays: 2}

	valid, err := NewRun("run-1", cfg)
	if err != nil {
		t.Fatalf("expected valid run to succeed: %v", err)
	}
	if valid.State != RunPending {
		t.Errorf("expected new run to be Pending, got %v", valid.State)
	}

	if _, err := NewRun("", cfg); err == nil {
		t.Fatal("expected error for empty run id")
	}
	if _, err := NewRun("run-2", Config{LeewayDays: -1}); err == nil {
		t.Fatal("expected error for negative leeway days")
	}
}

func TestConfig_LocationsAll(t *testing.T) {
	testCases := []struct {
		name      string
		locations map[string]bool
		want      bool
	}{
		{"nil locations", nil, true},
		{"empty locations", map[string]bool{}, true},
		{"all literal", map[string]bool{"All": true}, true},
		{"specific locations", map[string]bool{"WH1": true}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Locations: tc.locations}
			if got := cfg.LocationsAll(); got != tc.want {
				t.Errorf("LocationsAll() = %v, want %v", got, tc.want)
			}
		})
	}
}
