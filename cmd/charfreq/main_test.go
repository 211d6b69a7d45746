package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCommandWritesChartAndCSV(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "characters", "harry\nron\n")
	writeFixture(t, dir, "n1.txt", "Harry ran. Harry's wand glowed.")
	writeFixture(t, dir, "n2.txt", "Ron and Harry talked.")
	cfgPath := writeFixture(t, dir, "charfreq.yaml", `
vocabulary: `+filepath.Join(dir, "characters")+`
novels:
  - {path: `+filepath.Join(dir, "n1.txt")+`, title: novel1}
  - {path: `+filepath.Join(dir, "n2.txt")+`, title: novel2}
  - {path: `+filepath.Join(dir, "missing.txt")+`, title: novel3}
output:
  dpi: 50
  width_inches: 4
  height_inches: 3
logging:
  level: error
`)
	chartPath := filepath.Join(dir, "out", "chart.png")
	csvPath := filepath.Join(dir, "out", "table.csv")

	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"run", "--config", cfgPath, "--output", chartPath, "--csv", csvPath})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if info, err := os.Stat(chartPath); err != nil || info.Size() == 0 {
		t.Fatalf("expected chart at %s: %v", chartPath, err)
	}
	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	want := "Novel,Character,Frequency\n" +
		"novel1,Harry,2\nnovel2,Harry,1\nnovel3,Harry,\n" +
		"novel1,Ron,\nnovel2,Ron,1\nnovel3,Ron,\n"
	if string(data) != want {
		t.Fatalf("unexpected csv:\n%s", data)
	}
	if !strings.Contains(stdout.String(), "Harry") {
		t.Fatalf("expected summary table on stdout, got %q", stdout.String())
	}
}

func TestRunCommandFailsWithoutVocabulary(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFixture(t, dir, "charfreq.yaml", "vocabulary: "+filepath.Join(dir, "nope")+"\n")

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "--quiet"})
	err := cmd.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "load vocabulary") {
		t.Fatalf("expected vocabulary error, got %v", err)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charfreq.yaml")

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"config", "init", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	cmd = newRootCommand()
	cmd.SetArgs([]string{"config", "init", path})
	cmd.SetOut(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when config exists")
	}

	cmd = newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "show", "--config", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out.String(), "top_n: 10") || !strings.Contains(out.String(), path) {
		t.Fatalf("unexpected config show output:\n%s", out.String())
	}
}

func TestQuietLoggerKeepsErrors(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFixture(t, dir, "charfreq.yaml", "logging:\n  level: debug\n  format: console\n")
	var logs bytes.Buffer
	ctx := newCommandContext(&cfgPath)
	ctx.logWriter = &logs

	logger, err := ctx.logger(true)
	if err != nil {
		t.Fatalf("logger returned error: %v", err)
	}
	logger.Info("vocabulary loaded", "words", 2)
	logger.Error("novel unreadable, treating its frequencies as absent", "path", "missing.txt")

	out := logs.String()
	if strings.Contains(out, "vocabulary loaded") {
		t.Fatalf("quiet logger should drop info lines: %q", out)
	}
	if !strings.Contains(out, "novel unreadable") || !strings.Contains(out, "path=missing.txt") {
		t.Fatalf("quiet logger should keep read failures: %q", out)
	}
}
