package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"jsmin/internal/buildpipeline"
	"jsmin/internal/compress"
	"jsmin/internal/driver"
	"jsmin/internal/project"
	"jsmin/internal/version"
)

func newMinifyTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "minify"}
	addMinifyFlags(cmd.Flags())
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags %v: %v", args, err)
	}
	return cmd
}

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		input   string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"auto", uiModeAuto, false},
		{" ON ", uiModeOn, false},
		{"off", uiModeOff, false},
		{"sometimes", "", true},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.input)
		if (err != nil) != tc.wantErr {
			t.Fatalf("readUIMode(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("readUIMode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
	if !shouldUseTUI(uiModeOn, 1) || shouldUseTUI(uiModeOff, 10) {
		t.Fatalf("explicit ui modes must win over auto detection")
	}
	if shouldUseTUI(uiModeAuto, 1) {
		t.Fatalf("auto mode must not start the UI for a single file")
	}
}

func TestReadMinifyFlags(t *testing.T) {
	mf, err := readMinifyFlags(newMinifyTestCmd(t, "-o", "out", "--passes", "3", "--ui", "off"))
	if err != nil {
		t.Fatalf("readMinifyFlags: %v", err)
	}
	if mf.out != "out" || !mf.outSet || mf.passes != 3 || mf.ui != uiModeOff {
		t.Fatalf("unexpected flags: %+v", mf)
	}

	if _, err := readMinifyFlags(newMinifyTestCmd(t, "--passes", "0")); err == nil {
		t.Fatalf("expected --passes 0 to be rejected")
	}
	if _, err := readMinifyFlags(newMinifyTestCmd(t, "--ui", "maybe")); err == nil {
		t.Fatalf("expected invalid --ui to be rejected")
	}
}

func TestApplyFlags(t *testing.T) {
	base := project.DefaultConfig()
	base.Compress.Passes = 4
	base.Output.Pretty = true

	cmd := newMinifyTestCmd(t, "--no-unused", "--preserve-arg-positions", "--no-cache")
	mf, err := readMinifyFlags(cmd)
	if err != nil {
		t.Fatalf("readMinifyFlags: %v", err)
	}
	cfg := applyFlags(cmd, base, mf)
	if cfg.Compress.Unused || !cfg.Compress.PreserveArgPositions || cfg.Cache.Enabled {
		t.Fatalf("flags were not applied: %+v", cfg)
	}
	// не заданные флаги не трогают манифест
	if cfg.Compress.Passes != 4 || !cfg.Output.Pretty {
		t.Fatalf("manifest values were overwritten: %+v", cfg)
	}

	cmd = newMinifyTestCmd(t, "--pretty=false", "--passes", "1")
	mf, err = readMinifyFlags(cmd)
	if err != nil {
		t.Fatalf("readMinifyFlags: %v", err)
	}
	cfg = applyFlags(cmd, base, mf)
	if cfg.Output.Pretty || cfg.Compress.Passes != 1 {
		t.Fatalf("explicit overrides lost: %+v", cfg)
	}
}

func TestResolveLayout(t *testing.T) {
	dir := t.TempDir()
	withOutDir := &project.Manifest{Root: "/proj", Config: project.DefaultConfig()}
	suffixOnly := &project.Manifest{Config: project.DefaultConfig()}
	suffixOnly.Config.Output.OutDir = ""

	cases := []struct {
		name       string
		args       []string
		flags      []string
		manifest   *project.Manifest
		wantLayout driver.Layout
		wantSingle string
		wantStdout bool
	}{
		{"single file prints", []string{"a.js"}, nil, withOutDir, driver.Layout{}, "", true},
		{"dash prints", []string{"a.js"}, []string{"-o", "-"}, withOutDir, driver.Layout{}, "", true},
		{"single file to file", []string{"a.js"}, []string{"-o", "a.min.js"}, withOutDir, driver.Layout{}, "a.min.js", false},
		{"explicit out dir", []string{dir}, []string{"-o", "build"}, withOutDir, driver.Layout{OutDir: "build"}, "", false},
		{"manifest out dir", []string{dir}, nil, withOutDir, driver.Layout{OutDir: filepath.Join("/proj", "dist")}, "", false},
		{"suffix fallback", []string{"a.js", "b.js"}, nil, suffixOnly, driver.Layout{Suffix: ".min.js"}, "", false},
	}
	for _, tc := range cases {
		mf, err := readMinifyFlags(newMinifyTestCmd(t, tc.flags...))
		if err != nil {
			t.Fatalf("%s: readMinifyFlags: %v", tc.name, err)
		}
		layout, single, stdout := resolveLayout(tc.args, mf, tc.manifest)
		if layout != tc.wantLayout || single != tc.wantSingle || stdout != tc.wantStdout {
			t.Errorf("%s: got (%+v, %q, %v), want (%+v, %q, %v)",
				tc.name, layout, single, stdout, tc.wantLayout, tc.wantSingle, tc.wantStdout)
		}
	}
}

func TestCacheDir(t *testing.T) {
	cfg := project.DefaultConfig()
	cfg.Cache.Dir = ".cache"
	if got := cacheDir("/proj", cfg); got != filepath.Join("/proj", ".cache") {
		t.Fatalf("relative cache dir = %q", got)
	}
	if got := cacheDir("", cfg); got != ".cache" {
		t.Fatalf("cache dir without manifest = %q", got)
	}
	cfg.Cache.Dir = ""
	if got := cacheDir("/proj", cfg); got != "" {
		t.Fatalf("empty cache dir must stay empty, got %q", got)
	}
}

func TestFormatPathForOutput(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work")
	if got := formatPathForOutput(base, filepath.Join(base, "app", "jsmin.toml")); got != filepath.Join("app", "jsmin.toml") {
		t.Fatalf("nested path = %q", got)
	}
	outside := filepath.Join(string(filepath.Separator), "other", "x")
	if got := formatPathForOutput(base, outside); got != outside {
		t.Fatalf("outside path = %q", got)
	}
}

func TestResolveInitTarget(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	got, err := resolveInitTarget(nil)
	if err != nil || got != wd {
		t.Fatalf("resolveInitTarget(nil) = %q, %v", got, err)
	}
	got, err = resolveInitTarget([]string{"app"})
	if err != nil || got != filepath.Join(wd, "app") {
		t.Fatalf("resolveInitTarget(app) = %q, %v", got, err)
	}
}

func TestRenderVersion(t *testing.T) {
	info := collectVersionInfo()
	var buf bytes.Buffer
	if err := renderVersionJSON(&buf, info, versionOptions{format: "json", showHash: true}); err != nil {
		t.Fatalf("renderVersionJSON: %v", err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}
	if payload.Tool != "jsmin" || payload.Version != version.Plain() {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if strings.Contains(payload.Version, "\x1b[") {
		t.Fatalf("json version carries escape codes: %q", payload.Version)
	}
	if payload.GitCommit == "" || payload.BuildDate != "" {
		t.Fatalf("field selection ignored: %+v", payload)
	}

	buf.Reset()
	renderVersionPretty(&buf, info, versionOptions{format: "pretty"})
	if !strings.HasPrefix(buf.String(), "jsmin ") || !strings.Contains(buf.String(), "--full") {
		t.Fatalf("unexpected pretty output:\n%s", buf.String())
	}
}

func TestRenderParams(t *testing.T) {
	params := []compress.ParamReport{
		{Func: "f", Param: "a", Slot: 0, Verdict: "consistent", Value: "1", Calls: 2, Reason: compress.ReasonInlined},
		{Func: "f", Param: "b", Slot: 1, Verdict: "inconsistent", Calls: 2, Reason: compress.ReasonInconsistent},
	}
	var buf bytes.Buffer
	if err := renderParamsPretty(&buf, params); err != nil {
		t.Fatalf("renderParamsPretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"FUNCTION", "inline", "keep: calls pass different values"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output misses %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := renderParamsJSON(&buf, params); err != nil {
		t.Fatalf("renderParamsJSON: %v", err)
	}
	var decoded []paramJSON
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(decoded) != 2 || !decoded[0].Inline || decoded[1].Inline || decoded[1].Reason != "calls pass different values" {
		t.Fatalf("unexpected json: %+v", decoded)
	}

	buf.Reset()
	if err := renderParamsPretty(&buf, nil); err != nil || !strings.Contains(buf.String(), "no named functions") {
		t.Fatalf("empty report: %q, %v", buf.String(), err)
	}
}

func TestPrintTimings(t *testing.T) {
	results := make([]driver.Result, 2)
	results[0].Timings.Set(buildpipeline.StageParse, 2*time.Millisecond)
	results[1].Timings.Set(buildpipeline.StageParse, 3*time.Millisecond)
	results[1].Timings.Set(buildpipeline.StageEmit, time.Millisecond)

	var buf bytes.Buffer
	printTimings(&buf, nil, results)
	out := buf.String()
	if !strings.Contains(out, "parse") || !strings.Contains(out, "5.0 ms") {
		t.Fatalf("parse total missing:\n%s", out)
	}
	if strings.Contains(out, "compress") {
		t.Fatalf("stage without samples printed:\n%s", out)
	}
}
