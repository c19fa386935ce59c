package main

import (
	"testing"
)

func TestSuggestCorrectCommand(t *testing.T) {
	tests := []struct {
		name       string
		unknownCmd string
		args       []string
		want       string
		wantFound  bool
	}{
		{
			name:       "show before skill",
			unknownCmd: "show",
			args:       []string{"show", "skill"},
			want:       "hookline skill show",
			wantFound:  true,
		},
		{
			name:       "export before skill with name",
			unknownCmd: "export",
			args:       []string{"export", "safe-shell", "skill"},
			want:       "hookline skill export safe-shell",
			wantFound:  true,
		},
		{
			name:       "flags before the unknown command are kept",
			unknownCmd: "show",
			args:       []string{"--debug", "show", "skill"},
			want:       "hookline --debug skill show",
			wantFound:  true,
		},
		{
			name:       "unknown command without a mapping",
			unknownCmd: "frobnicate",
			args:       []string{"frobnicate", "skill"},
			wantFound:  false,
		},
		{
			name:       "mapped command without its parent",
			unknownCmd: "show",
			args:       []string{"show", "something"},
			wantFound:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := suggestCorrectCommand(tt.unknownCmd, tt.args, rootCmd)
			if found != tt.wantFound {
				t.Fatalf("suggestCorrectCommand() found = %v, want %v", found, tt.wantFound)
			}
			if found && got != tt.want {
				t.Errorf("suggestCorrectCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}
