package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkarray/mkarray/internal/archive"
	"github.com/mkarray/mkarray/internal/packer"
	"github.com/mkarray/mkarray/internal/ui"
)

// chdirTemp moves the test into a fresh directory and captures ui output.
func chdirTemp(t *testing.T) (string, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	var buf bytes.Buffer
	prevOut, prevColor := ui.Out, ui.Color
	ui.Out, ui.Color = &buf, false
	t.Cleanup(func() { ui.Out, ui.Color = prevOut, prevColor })
	return dir, &buf
}

func TestRunPack_Usage(t *testing.T) {
	dir, _ := chdirTemp(t)

	tests := []struct {
		name  string
		flags packFlags
		args  []string
	}{
		{name: "no arguments"},
		{name: "three positionals", args: []string{"dest", "label", ".data"}},
		{name: "deflate with three positionals", flags: packFlags{deflate: true}, args: []string{"dest", "label", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runPack(tt.flags, tt.args)
			if !errors.Is(err, packer.ErrUsage) {
				t.Fatalf("runPack() error = %v, want ErrUsage", err)
			}
		})
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("usage errors wrote files: %v", entries)
	}
}

func TestRootCmd_PrintsUsage(t *testing.T) {
	dir, _ := chdirTemp(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--deflate", "dest", "label", ".data"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		rootFlags = packFlags{}
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), "[--deflate] <DESTINATION> <LABEL> <AS_PROLOG> <SECTION> [SOURCE ...]") {
		t.Errorf("usage not printed:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "dest.zip")); !os.IsNotExist(err) {
		t.Error("usage path wrote an archive")
	}
}

func TestRootCmd_Pack(t *testing.T) {
	_, progress := chdirTemp(t)
	if err := os.WriteFile("x.bin", make([]byte, 10000), 0644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"--deflate", "--log-level", "error", "dest", "blob", "", "-section-like", "x.bin"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootFlags = packFlags{}
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := progress.String(); got != "x.bin -> x_bin\n" {
		t.Errorf("progress = %q", got)
	}

	asm, err := archive.ReadMember("dest.zip", "dest.s")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(asm), "-section-like\n\n.globl x_bin\n") {
		t.Errorf("section not taken verbatim:\n%s", asm)
	}
	if !strings.Contains(string(asm), "\t.incbin \"x.bin.deflate\"\n") {
		t.Errorf("compressed member not referenced:\n%s", asm)
	}
}

func TestRunPack_Manifest(t *testing.T) {
	chdirTemp(t)
	for name, data := range map[string][]byte{"a.bin": {1, 2, 3}, "b.bin": {4, 5}} {
		if err := os.WriteFile(name, data, 0644); err != nil {
			t.Fatal(err)
		}
	}
	manifest := `destination: images
label: image
section: .section .rodata
sources: [a.bin]
logging:
  level: warn
`
	if err := os.WriteFile("mkarray.yaml", []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runPack(packFlags{manifest: "mkarray.yaml"}, []string{"b.bin"}); err != nil {
		t.Fatalf("runPack() error = %v", err)
	}

	header, err := archive.ReadMember("images.zip", "images.h")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"#define IMAGES  2\n", "extern uint8_t a_bin[];\n", "extern uint8_t b_bin[];\n"} {
		if !strings.Contains(string(header), want) {
			t.Errorf("header missing %q:\n%s", want, header)
		}
	}
}

func TestResolveOptions(t *testing.T) {
	chdirTemp(t)
	manifest := "destination: d\nlabel: l\nlogging:\n  level: warn\n  path: from-manifest.log\n"
	if err := os.WriteFile("m.yaml", []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	opts, logging, err := resolveOptions(packFlags{manifest: "m.yaml", deflate: true, logLevel: "debug"}, nil)
	if err != nil {
		t.Fatalf("resolveOptions() error = %v", err)
	}
	if !opts.Deflate {
		t.Error("--deflate did not override the manifest")
	}
	if logging.Level != "debug" || logging.Path != "from-manifest.log" {
		t.Errorf("logging = %+v", logging)
	}

	if _, _, err := resolveOptions(packFlags{logLevel: "loud"}, []string{"d", "l", "", ""}); err == nil {
		t.Error("invalid --log-level expected error, got nil")
	}

	if err := os.WriteFile("bad.yaml", []byte("label: 1abc\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, _, err = resolveOptions(packFlags{manifest: "bad.yaml"}, nil)
	if err == nil {
		t.Fatal("invalid manifest expected error, got nil")
	}
	for _, want := range []string{"destination cannot be empty", "must be a C identifier"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error = %v, want substring %q", err, want)
		}
	}
}

func TestRunPack_MissingSource(t *testing.T) {
	chdirTemp(t)
	err := runPack(packFlags{}, []string{"dest", "blob", "", ".data", "nope.bin"})
	if err == nil {
		t.Fatal("runPack() expected error, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
	if _, err := os.Stat("dest.zip"); !os.IsNotExist(err) {
		t.Error("failed run left an archive behind")
	}
}
