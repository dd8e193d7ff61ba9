// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package settings

import "testing"

func TestSetterName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"zoomFactor", "setZoomFactor"},
		{"webGLEnabled", "setWebGLEnabled"},
		{"cssGridLayoutEnabled", "setCSSGridLayoutEnabled"},
		{"xssAuditorEnabled", "setXSSAuditorEnabled"},
		{"ftpDirectoryTemplatePath", "setFTPDirectoryTemplatePath"},
		{"domTimersThrottlingEnabled", "setDOMTimersThrottlingEnabled"},
		{"rtcMediaEnabled", "setRTCMediaEnabled"},
		{"x", "setX"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SetterName(Descriptor{Name: tt.name}); got != tt.want {
				t.Errorf("SetterName(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestIDLType(t *testing.T) {
	tests := []struct {
		typ    string
		want   string
		wantOK bool
	}{
		{TypeBool, "boolean", true},
		{TypeInt, "long", true},
		{TypeUnsigned, "unsigned long", true},
		{TypeDouble, "double", true},
		{TypeFloat, "float", true},
		{TypeString, "DOMString", true},
		{"Seconds", "", false},
		{"size_t", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			got, ok := IDLType(Descriptor{Type: tt.typ})
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("IDLType(%q) = (%q, %v), want (%q, %v)", tt.typ, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParamType(t *testing.T) {
	if got := ParamType(Descriptor{Type: TypeString}); got != "const String&" {
		t.Errorf("ParamType(String) = %q", got)
	}
	if got := ParamType(Descriptor{Type: TypeDouble}); got != "double" {
		t.Errorf("ParamType(double) = %q", got)
	}
}

func TestConditionalExpr(t *testing.T) {
	tests := []struct {
		guard string
		want  string
	}{
		{"", ""},
		{"WEBGL", "ENABLE(WEBGL)"},
		{"VIDEO&FULLSCREEN_API", "ENABLE(VIDEO) && ENABLE(FULLSCREEN_API)"},
		{" VIDEO & FULLSCREEN_API ", "ENABLE(VIDEO) && ENABLE(FULLSCREEN_API)"},
		{"ENABLE(WEBGL)", "ENABLE(WEBGL)"},
		{"PLATFORM(IOS) || ENABLE(TOUCH_EVENTS)", "PLATFORM(IOS) || ENABLE(TOUCH_EVENTS)"},
	}
	for _, tt := range tests {
		t.Run(tt.guard, func(t *testing.T) {
			if got := ConditionalExpr(Descriptor{Conditional: tt.guard}); got != tt.want {
				t.Errorf("ConditionalExpr(%q) = %q, want %q", tt.guard, got, tt.want)
			}
		})
	}
}
