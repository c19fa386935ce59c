package installer

import (
	"testing"
)

// TestResolveSelection verifies the default-to-both behavior of the
// selective install flags.
func TestResolveSelection(t *testing.T) {
	tests := []struct {
		name           string
		statusLine     bool
		hooks          bool
		all            bool
		wantStatusLine bool
		wantHooks      bool
	}{
		{
			name:           "no flags installs both",
			wantStatusLine: true,
			wantHooks:      true,
		},
		{
			name:           "all installs both",
			all:            true,
			wantStatusLine: true,
			wantHooks:      true,
		},
		{
			name:           "statusline alone selects only statusline",
			statusLine:     true,
			wantStatusLine: true,
			wantHooks:      false,
		},
		{
			name:           "hooks alone selects only hooks",
			hooks:          true,
			wantStatusLine: false,
			wantHooks:      true,
		},
		{
			name:           "both selective flags select both",
			statusLine:     true,
			hooks:          true,
			wantStatusLine: true,
			wantHooks:      true,
		},
		{
			name:           "all overrides a selective flag",
			statusLine:     true,
			all:            true,
			wantStatusLine: true,
			wantHooks:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := ResolveSelection(tt.statusLine, tt.hooks, tt.all)
			if sel.StatusLine != tt.wantStatusLine || sel.Hooks != tt.wantHooks {
				t.Errorf("ResolveSelection(%v, %v, %v) = %+v, want statusLine=%v hooks=%v",
					tt.statusLine, tt.hooks, tt.all, sel, tt.wantStatusLine, tt.wantHooks)
			}
		})
	}
}
