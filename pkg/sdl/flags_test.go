package sdl

import "testing"

func TestInitFlagsMask(t *testing.T) {
	if got := (InitFlags{}).Mask(); got != 0 {
		t.Errorf("empty InitFlags mask = %#x, want 0", got)
	}
	tests := []struct {
		flags InitFlags
		want  uint32
	}{
		{InitFlags{Timer: true}, 0x00000001},
		{InitFlags{Audio: true}, 0x00000010},
		{InitFlags{Video: true}, 0x00000020},
		{InitFlags{Joystick: true}, 0x00000200},
		{InitFlags{Haptic: true}, 0x00001000},
		{InitFlags{GameController: true}, 0x00002000},
		{InitFlags{Events: true}, 0x00004000},
		{InitFlags{Sensor: true}, 0x00008000},
		{InitFlags{Video: true, Audio: true}, 0x00000030},
	}
	for _, tt := range tests {
		if got := tt.flags.Mask(); got != tt.want {
			t.Errorf("%+v mask = %#x, want %#x", tt.flags, got, tt.want)
		}
	}
}

// Each flag contributes one bit regardless of what else is set.
func TestFlagsCompose(t *testing.T) {
	a := InitFlags{Video: true}.Mask()
	b := InitFlags{Joystick: true}.Mask()
	ab := InitFlags{Video: true, Joystick: true}.Mask()
	if a|b != ab {
		t.Errorf("composed mask %#x != %#x | %#x", ab, a, b)
	}
}

func TestWindowFlagsMask(t *testing.T) {
	if got := (WindowFlags{}).Mask(); got != 0 {
		t.Errorf("empty WindowFlags mask = %#x, want 0", got)
	}
	got := WindowFlags{Shown: true, Resizable: true, AllowHighDPI: true}.Mask()
	want := uint32(0x00000004 | 0x00000020 | 0x00002000)
	if got != want {
		t.Errorf("mask = %#x, want %#x", got, want)
	}
}

func TestRendererFlagsMask(t *testing.T) {
	if got := (RendererFlags{}).Mask(); got != 0 {
		t.Errorf("empty RendererFlags mask = %#x, want 0", got)
	}
	got := RendererFlags{Accelerated: true, PresentVSync: true}.Mask()
	if got != 0x00000006 {
		t.Errorf("mask = %#x, want 0x6", got)
	}
}
