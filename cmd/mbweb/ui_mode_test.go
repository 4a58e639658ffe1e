package main

import "testing"

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		input string
		want  uiMode
	}{
		{"", uiModeAuto},
		{"auto", uiModeAuto},
		{"AUTO", uiModeAuto},
		{"on", uiModeOn},
		{" off ", uiModeOff},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.input)
		if err != nil {
			t.Fatalf("readUIMode(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("readUIMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestReadUIModeRejectsGarbage(t *testing.T) {
	if _, err := readUIMode("fancy"); err == nil {
		t.Fatalf("readUIMode should reject unknown values")
	}
}

func TestApplyColorMode(t *testing.T) {
	for _, mode := range []string{"on", "off", "auto", ""} {
		if err := applyColorMode(mode); err != nil {
			t.Fatalf("applyColorMode(%q) error: %v", mode, err)
		}
	}
	if err := applyColorMode("rainbow"); err == nil {
		t.Fatalf("applyColorMode should reject unknown values")
	}
}

func TestShouldUseTUIExplicitModes(t *testing.T) {
	if !shouldUseTUI(uiModeOn) {
		t.Fatalf("uiModeOn must force the TUI")
	}
	if shouldUseTUI(uiModeOff) {
		t.Fatalf("uiModeOff must disable the TUI")
	}
}
