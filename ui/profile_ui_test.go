package ui

import (
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"kept", "Ada", "Ada", false},
		{"trimmed", "  Ada \t", "Ada", false},
		{"blank uses fallback", "   ", "Runner", false},
		{"max length", strings.Repeat("x", 32), strings.Repeat("x", 32), false},
		{"too long", strings.Repeat("x", 33), "", true},
		{"runes not bytes", strings.Repeat("é", 32), strings.Repeat("é", 32), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeName(tt.raw, "Runner")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestLevelLabel(t *testing.T) {
	if got := levelLabel(0, LevelEntry{Name: "Warmup"}); got != "1. Warmup" {
		t.Errorf("label = %q", got)
	}
	if got := levelLabel(1, LevelEntry{Name: "Rooftops", Best: "00:41:250"}); got != "2. Rooftops   best 00:41:250" {
		t.Errorf("label = %q", got)
	}
}
