package midi

import "testing"

func TestDeviceManagerWants(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		port      string
		want      bool
	}{
		{"launchpad midi port", "", "Launchpad X LPX MIDI Out", true},
		{"daw port skipped", "", "Launchpad X LPX DAW Out", false},
		{"other controller", "", "KeyLab mkII 49", false},
		{"case folded", "", "LAUNCHPAD MINI MIDI 1", true},
		{"preferred matches", "mini", "Launchpad Mini MIDI 1", true},
		{"preferred excludes", "mini", "Launchpad X LPX MIDI Out", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dm := NewDeviceManager(tt.preferred)
			if got := dm.wants(tt.port); got != tt.want {
				t.Errorf("wants(%q) = %v, want %v", tt.port, got, tt.want)
			}
		})
	}
}
