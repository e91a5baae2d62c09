package flags

import (
	"reflect"
	"strings"
	"testing"
)

func TestFloatAssignments_Set(t *testing.T) {
	var f FloatAssignments
	for _, v := range []string{"x=1", " y = -0.5", "x=3"} {
		if err := f.Set(v); err != nil {
			t.Fatalf("Set(%q) error = %v", v, err)
		}
	}

	want := FloatAssignments{"x": 3, "y": -0.5}
	if !reflect.DeepEqual(f, want) {
		t.Errorf("FloatAssignments = %v, want %v", f, want)
	}
	if got := f.String(); got != "x=3,y=-0.5" {
		t.Errorf("String() = %q", got)
	}
}

func TestFloatAssignments_SetRejectsMalformed(t *testing.T) {
	tests := []struct {
		in      string
		wantErr string
	}{
		{"x", "expected FIELD=VALUE"},
		{"=1", "expected FIELD=VALUE"},
		{"scaleX=big", `invalid value for scaleX: "big" is not a number`},
		{"scaleX=", "invalid value for scaleX"},
	}
	for _, tt := range tests {
		var f FloatAssignments
		err := f.Set(tt.in)
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("Set(%q) error = %v, want containing %q", tt.in, err, tt.wantErr)
		}
		if len(f) != 0 {
			t.Errorf("Set(%q) stored %v", tt.in, f)
		}
	}
}

func TestFloatAssignments_Empty(t *testing.T) {
	var f FloatAssignments
	if f.String() != "" {
		t.Errorf("String() = %q, want empty", f.String())
	}
	if f.Type() != "FIELD=VALUE" {
		t.Errorf("Type() = %q", f.Type())
	}
}
