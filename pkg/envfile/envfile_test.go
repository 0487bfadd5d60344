// SPDX-License-Identifier: MPL-2.0

package envfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestDefault_Parses verifies the embedded manifest is valid and has
// the fixed toolchain shape.
func TestDefault_Parses(t *testing.T) {
	t.Parallel()

	env, err := Default()
	if err != nil {
		t.Fatalf("Default() unexpected error: %v", err)
	}

	if env.FilePath != "<embedded>" {
		t.Errorf("FilePath = %q, want %q", env.FilePath, "<embedded>")
	}
	if len(env.Toolchain) != 8 {
		t.Errorf("len(Toolchain) = %d, want 8", len(env.Toolchain))
	}
	if len(env.Banner.Tips) != TipCount {
		t.Errorf("len(Tips) = %d, want %d", len(env.Banner.Tips), TipCount)
	}
	if env.Project.Product != "Chocofi" {
		t.Errorf("Project.Product = %q, want %q", env.Project.Product, "Chocofi")
	}
}

// TestDefault_CrossToolchain verifies exactly one cross bundle exists
// and it is the ARM toolchain.
func TestDefault_CrossToolchain(t *testing.T) {
	t.Parallel()

	env, err := Default()
	if err != nil {
		t.Fatalf("Default() unexpected error: %v", err)
	}

	cross, ok := env.CrossToolchain()
	if !ok {
		t.Fatal("CrossToolchain() found no cross bundle")
	}
	if cross.Name != "gcc-arm-embedded" {
		t.Errorf("cross bundle = %q, want gcc-arm-embedded", cross.Name)
	}
}

// TestDefault_NoExecutableCollisions verifies no two inputs expose the
// same executable name.
func TestDefault_NoExecutableCollisions(t *testing.T) {
	t.Parallel()

	env, err := Default()
	if err != nil {
		t.Fatalf("Default() unexpected error: %v", err)
	}

	seen := make(map[string]string)
	for _, tool := range env.AllInputs() {
		for _, exe := range tool.Provides {
			if owner, dup := seen[exe]; dup {
				t.Errorf("executable %q exposed by both %q and %q", exe, owner, tool.Name)
			}
			seen[exe] = tool.Name
		}
	}
}

// TestDefault_TipLiterals verifies the tip lines are byte-identical to
// the declared literals, embedded double quotes included.
func TestDefault_TipLiterals(t *testing.T) {
	t.Parallel()

	env, err := Default()
	if err != nil {
		t.Fatalf("Default() unexpected error: %v", err)
	}

	want := []string{
		`west init -l config`,
		`west update`,
		`west build -s zmk/app -d build/left -b nice_nano_v2 -- -DSHIELD=chocofi_left -DZMK_CONFIG="${ZMK_HOME}/config"`,
		`west build -s zmk/app -d build/right -b nice_nano_v2 -- -DSHIELD=chocofi_right -DZMK_CONFIG="${ZMK_HOME}/config"`,
		`cp build/left/zephyr/zmk.uf2 "/run/media/$USER/NICENANO"`,
	}

	if len(env.Banner.Tips) != len(want) {
		t.Fatalf("len(Tips) = %d, want %d", len(env.Banner.Tips), len(want))
	}
	for i, tip := range env.Banner.Tips {
		if tip != want[i] {
			t.Errorf("tip[%d] = %q, want %q", i, tip, want[i])
		}
	}
}

const validManifest = `
project: {
	owner:   "u"
	logo:    "*"
	product: "Board"
	part:    "mcu"
	code:    "example.com/board"
}
systems: ["x86_64-linux"]
toolchain: [
	{name: "cmake", source: "src#cmake", version: "3.29.2", provides: ["cmake"]},
	{name: "arm", source: "src#arm", version: "13.2.1", provides: ["arm-gcc"], cross: true},
]
banner: {
	tool: {name: "kbanner", source: "src#kbanner", version: "0.3.0", provides: ["kbanner"]}
	tips: ["a", "b", "c", "d", "e"]
}
`

// TestParseBytes_Valid exercises a minimal well-formed manifest.
func TestParseBytes_Valid(t *testing.T) {
	t.Parallel()

	env, err := ParseBytes([]byte(validManifest), "zmkenv.cue")
	if err != nil {
		t.Fatalf("ParseBytes() unexpected error: %v", err)
	}
	if len(env.Toolchain) != 2 {
		t.Errorf("len(Toolchain) = %d, want 2", len(env.Toolchain))
	}
	if tool, ok := env.ToolByName("cmake"); !ok || tool.Version != "3.29.2" {
		t.Errorf("ToolByName(cmake) = %+v, %v", tool, ok)
	}
	// Omitted provides defaults to empty, omitted cross to false.
	if env.Banner.Tool.Cross {
		t.Error("banner tool should not default to cross")
	}
}

func TestParseBytes_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(string) string
		wantSub string
	}{
		{
			name:    "duplicate input names",
			mutate:  func(m string) string { return strings.Replace(m, `name: "arm"`, `name: "cmake"`, 1) },
			wantSub: "duplicate",
		},
		{
			name:    "duplicate executables",
			mutate:  func(m string) string { return strings.Replace(m, `provides: ["arm-gcc"]`, `provides: ["cmake"]`, 1) },
			wantSub: "declared by both",
		},
		{
			name:    "no cross toolchain",
			mutate:  func(m string) string { return strings.Replace(m, ", cross: true", "", 1) },
			wantSub: "cross",
		},
		{
			name:    "bad version pin",
			mutate:  func(m string) string { return strings.Replace(m, `version: "3.29.2"`, `version: "not a version"`, 1) },
			wantSub: "version pin",
		},
		{
			name:    "six tips rejected by schema",
			mutate:  func(m string) string { return strings.Replace(m, `"e"]`, `"e", "f"]`, 1) },
			wantSub: "",
		},
		{
			name:    "empty owner",
			mutate:  func(m string) string { return strings.Replace(m, `owner:   "u"`, `owner:   ""`, 1) },
			wantSub: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseBytes([]byte(tt.mutate(validManifest)), "zmkenv.cue")
			if err == nil {
				t.Fatal("ParseBytes() expected error")
			}
			if tt.wantSub != "" && !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should contain %q", err, tt.wantSub)
			}
		})
	}
}

// TestLoad prefers a project manifest and falls back to the default.
func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("falls back to embedded default", func(t *testing.T) {
		t.Parallel()
		env, err := Load(t.TempDir())
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if env.FilePath != "<embedded>" {
			t.Errorf("FilePath = %q, want embedded default", env.FilePath)
		}
	})

	t.Run("prefers project manifest", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, FileName)
		if err := os.WriteFile(path, []byte(validManifest), 0o644); err != nil {
			t.Fatal(err)
		}

		env, err := Load(dir)
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}
		if env.FilePath != path {
			t.Errorf("FilePath = %q, want %q", env.FilePath, path)
		}
		if env.Project.Owner != "u" {
			t.Errorf("Owner = %q, want %q from project manifest", env.Project.Owner, "u")
		}
	})
}
