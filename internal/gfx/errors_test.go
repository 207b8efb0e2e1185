package gfx

import "testing"

func TestErrorCodeString(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want string
	}{
		{NoError, "NoError"},
		{InvalidEnum, "InvalidEnum"},
		{InvalidFramebufferOperation, "InvalidFramebufferOperation"},
		{TableTooLarge, "TableTooLarge"},
		{ErrorCode(0x1234), "ErrorCode(0x1234)"},
	}
	for _, tc := range cases {
		if got := tc.code.String(); got != tc.want {
			t.Fatalf("%d.String() = %q, want %q", uint32(tc.code), got, tc.want)
		}
	}
}

func TestParseErrorCodeRoundTrip(t *testing.T) {
	for _, code := range append([]ErrorCode{NoError}, Codes()...) {
		got, err := ParseErrorCode(code.String())
		if err != nil {
			t.Fatalf("ParseErrorCode(%q) error: %v", code.String(), err)
		}
		if got != code {
			t.Fatalf("ParseErrorCode(%q) = %v, want %v", code.String(), got, code)
		}
		if !code.Known() {
			t.Fatalf("%v should be known", code)
		}
	}
}

func TestParseErrorCodeForms(t *testing.T) {
	cases := []struct {
		input string
		want  ErrorCode
	}{
		{"GL_INVALID_ENUM", InvalidEnum},
		{"invalid_value", InvalidValue},
		{"gl_out_of_memory", OutOfMemory},
		{"0x0502", InvalidOperation},
		{"1285", OutOfMemory},
		{"0x8031", TableTooLarge},
		{"0xBEEF", ErrorCode(0xBEEF)},
	}
	for _, tc := range cases {
		got, err := ParseErrorCode(tc.input)
		if err != nil {
			t.Fatalf("ParseErrorCode(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseErrorCode(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
	for _, bad := range []string{"", "explode", "0x1FFFFFFFF", "-3"} {
		if _, err := ParseErrorCode(bad); err == nil {
			t.Fatalf("ParseErrorCode(%q) expected error", bad)
		}
	}
}
