package log

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"trace", Trace, false},
		{"Debug", Debug, false},
		{"", Info, false},
		{" info ", Info, false},
		{"warning", Warn, false},
		{"ERROR", Error, false},
		{"fatal", Fatal, false},
		{"verbose", Info, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevel_StringRoundTripsThroughParse(t *testing.T) {
	for l := Trace; l <= Fatal; l++ {
		got, err := ParseLevel(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v", l.String(), got, err)
		}
	}
	if Level(99).String() != "UNKNOWN" {
		t.Errorf("Level(99).String() = %q, want UNKNOWN", Level(99).String())
	}
}

func TestLevel_Zerolog(t *testing.T) {
	tests := []struct {
		level Level
		want  zerolog.Level
	}{
		{Trace, zerolog.TraceLevel},
		{Info, zerolog.InfoLevel},
		{Fatal, zerolog.FatalLevel},
		{Fatal + 1, zerolog.Disabled},
	}

	for _, tt := range tests {
		if got := tt.level.zerolog(); got != tt.want {
			t.Errorf("%v.zerolog() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLevel_Enables(t *testing.T) {
	if Info.Enables(Debug) {
		t.Error("Info should not enable Debug")
	}
	if !Info.Enables(Warn) {
		t.Error("Info should enable Warn")
	}
}
