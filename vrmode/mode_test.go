// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrmode

import (
	"errors"
	"testing"
)

func TestMode_EyeCount(t *testing.T) {
	tests := []struct {
		mode Mode
		want int
	}{
		{Mono, 1},
		{GreenMagenta, 2},
		{RedCyan, 2},
		{SideBySideFull, 2},
		{SideBySideSquished, 2},
		{LeftEyeView, 1},
		{RightEyeView, 1},
		{QuadStereo, 2},
		{SideBySideLetterbox, 2},
		{AmberBlue, 2},
		{TopBottom, 2},
		{RowInterleaved, 2},
		{ColumnInterleaved, 2},
		{CheckerInterleaved, 2},
		{HMD, 2},
		{Mode(10), 1},
		{Mode(99), 1},
		{Mode(-1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := tt.mode.EyeCount(); got != tt.want {
				t.Errorf("EyeCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMode_SettingValues(t *testing.T) {
	// Integer settings map directly onto modes.
	tests := []struct {
		value int
		want  Mode
	}{
		{0, Mono},
		{1, GreenMagenta},
		{2, RedCyan},
		{3, SideBySideFull},
		{4, SideBySideSquished},
		{5, LeftEyeView},
		{6, RightEyeView},
		{7, QuadStereo},
		{8, SideBySideLetterbox},
		{9, AmberBlue},
		{11, TopBottom},
		{12, RowInterleaved},
		{13, ColumnInterleaved},
		{14, CheckerInterleaved},
		{15, HMD},
	}
	for _, tt := range tests {
		if Mode(tt.value) != tt.want {
			t.Errorf("Mode(%d) = %v, want %v", tt.value, Mode(tt.value), tt.want)
		}
	}
}

func TestMode_String(t *testing.T) {
	if got := RedCyan.String(); got != "red-cyan" {
		t.Errorf("RedCyan.String() = %q", got)
	}
	if got := Mode(10).String(); got != "Mode(10)" {
		t.Errorf("Mode(10).String() = %q", got)
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 15 {
		t.Fatalf("len(All()) = %d, want 15", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Errorf("All() not ascending at %d: %v", i, all)
		}
	}
	for _, m := range all {
		if m == Mode(10) {
			t.Error("All() contains unused value 10")
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"mono", Mono, false},
		{"Red-Cyan", RedCyan, false},
		{" top-bottom ", TopBottom, false},
		{"checker-interleaved", CheckerInterleaved, false},
		{"12", RowInterleaved, false},
		{"0", Mono, false},
		{"10", Mode(10), true},
		{"anaglyph", Mono, true},
		{"", Mono, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownMode) {
					t.Fatalf("Parse(%q) error = %v, want ErrUnknownMode", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, m := range All() {
		got, err := Parse(m.String())
		if err != nil || got != m {
			t.Errorf("Parse(%q) = %v, %v", m.String(), got, err)
		}
	}
}
