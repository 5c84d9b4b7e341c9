package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExecuteArgs_Help(t *testing.T) {
	var out bytes.Buffer
	if err := ExecuteArgs(nil, &out); err != nil {
		t.Fatalf("ExecuteArgs: %v", err)
	}
	for _, name := range []string{"run", "render"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help does not list %q:\n%s", name, out.String())
		}
	}
}

func TestExecuteArgs_Version(t *testing.T) {
	var out bytes.Buffer
	if err := ExecuteArgs([]string{"--version"}, &out); err != nil {
		t.Fatalf("ExecuteArgs: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("version output = %q", out.String())
	}
}

func TestExecuteArgs_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := ExecuteArgs([]string{"paint"}, &out)
	if err == nil || !strings.Contains(err.Error(), "paint") {
		t.Fatalf("err = %v, want unknown command", err)
	}
}

func TestExecuteArgs_CommandHelp(t *testing.T) {
	var out bytes.Buffer
	if err := ExecuteArgs([]string{"render", "--help"}, &out); err != nil {
		t.Fatalf("ExecuteArgs: %v", err)
	}
	if !strings.Contains(out.String(), "--script") {
		t.Errorf("render help = %q", out.String())
	}
}

func TestParseRenderArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    renderOptions
		wantErr bool
	}{
		{name: "empty", args: nil},
		{
			name: "separate values",
			args: []string{"--out", "a.png", "--dir", "/tmp/x"},
			want: renderOptions{out: "a.png", dir: "/tmp/x"},
		},
		{
			name: "inline values",
			args: []string{"--script=down:1,2", "--out=b.png"},
			want: renderOptions{script: "down:1,2", out: "b.png"},
		},
		{name: "missing value", args: []string{"--out"}, wantErr: true},
		{name: "unknown flag", args: []string{"--size", "3"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRenderArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseRunArgs(t *testing.T) {
	got, err := parseRunArgs([]string{"--log", "x.log", "--dir=proj"})
	if err != nil {
		t.Fatalf("parseRunArgs: %v", err)
	}
	if got.logFile != "x.log" || got.dir != "proj" {
		t.Errorf("got %+v", got)
	}
	if _, err := parseRunArgs([]string{"extra"}); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestRender_WritesPNG(t *testing.T) {
	dir := t.TempDir()
	cfg := "window:\n  width: 320\n  height: 240\n"
	if err := os.WriteFile(filepath.Join(dir, "xiform.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "form.png")

	var out bytes.Buffer
	err := ExecuteArgs([]string{
		"render", "--dir", dir, "--out", outPath,
		"--script", "down:140,110 up:140,110 text:hi",
	}, &out)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out.String(), "3 events") || !strings.Contains(out.String(), "frame avg") {
		t.Errorf("summary = %q", out.String())
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("image size = %v, want 320x240", b)
	}
}

func TestRender_BadScript(t *testing.T) {
	var out bytes.Buffer
	err := ExecuteArgs([]string{"render", "--dir", t.TempDir(), "--script", "wiggle"}, &out)
	if err == nil {
		t.Fatal("expected script error")
	}
}
