package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWritesFrame(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "scene.yaml")
	cfg := "width: 64\nheight: 48\nsprites: 30\nseed: 3\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "frame.png")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", cfgPath, "-backend", "software", "-frames", "3", "-out", outPath}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() = %v\nstderr:\n%s", err, stderr.String())
	}
	if !strings.Contains(stdout.String(), "3 frames, 30 sprites") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "benchmark complete") {
		t.Errorf("stderr missing summary: %q", stderr.String())
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("frame bounds = %v, want 64x48", b)
	}
}

func TestRunNullBackendOverrides(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-backend", "null", "-frames", "2", "-sprites", "5", "-sort", "back-to-front"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() = %v", err)
	}
	if !strings.Contains(stderr.String(), "sort=back-to-front") {
		t.Errorf("stderr = %q, want sort=back-to-front", stderr.String())
	}
	if !strings.Contains(stdout.String(), "5 sprites") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-list"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() = %v", err)
	}
	if !strings.Contains(stdout.String(), "software\n") {
		t.Errorf("stdout = %q, want software listed", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown backend", []string{"-backend", "vulkan9"}},
		{"bad sort", []string{"-sort", "random"}},
		{"zero frames", []string{"-frames", "0"}},
		{"missing config", []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(tt.args, &stdout, &stderr); err == nil {
				t.Errorf("run(%v) returned no error", tt.args)
			}
		})
	}
}
