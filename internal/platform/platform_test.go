// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Context
		wantErr bool
	}{
		{"linux amd64", "x86_64-linux", Context{Arch: "x86_64", OS: "linux"}, false},
		{"darwin arm64", "aarch64-darwin", Context{Arch: "aarch64", OS: "darwin"}, false},
		{"missing os", "x86_64", Context{}, true},
		{"empty", "", Context{}, true},
		{"empty arch", "-linux", Context{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx, err := Parse("aarch64-linux")
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
	if got := ctx.String(); got != "aarch64-linux" {
		t.Errorf("String() = %q, want %q", got, "aarch64-linux")
	}
}

func TestSupported(t *testing.T) {
	t.Parallel()

	systems := []string{"x86_64-linux", "aarch64-darwin"}

	if !(Context{Arch: "x86_64", OS: "linux"}).Supported(systems) {
		t.Error("x86_64-linux should be supported")
	}
	if (Context{Arch: "riscv64", OS: "linux"}).Supported(systems) {
		t.Error("riscv64-linux should not be supported")
	}
	if (Context{}).Supported(systems) {
		t.Error("zero context should not be supported")
	}
}

// TestCurrent verifies host detection produces a well-formed triple.
func TestCurrent(t *testing.T) {
	t.Parallel()

	ctx := Current()
	if ctx.IsZero() {
		t.Fatal("Current() returned zero context")
	}
	if _, err := Parse(ctx.String()); err != nil {
		t.Errorf("Current().String() = %q is not a valid triple: %v", ctx.String(), err)
	}
}
