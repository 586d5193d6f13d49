package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	DataPath  string `env:"CMD_TEST_DATA_PATH" envDefault:"data/sessions.json"`
	Transport string `env:"CMD_TEST_TRANSPORT" envDefault:"stdio"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("SESSIONSEARCH_CMD_TEST_DATA_PATH", "env.msgpack")
	t.Setenv("SESSIONSEARCH_CMD_TEST_TRANSPORT", "http")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.DataPath, "data", cfgRef.DataPath, "dataset path")
	fs.StringVar(&cfgRef.Transport, "transport", cfgRef.Transport, "transport")

	if err := ParseArgs(fs, []string{"-data", "flag.json"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.DataPath != "flag.json" {
		t.Fatalf("expected flag value for data path, got %q", cfgRef.DataPath)
	}
	if cfgRef.Transport != "http" {
		t.Fatalf("expected env transport, got %q", cfgRef.Transport)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceMCP, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("SESSIONSEARCH_OTEL_ENDPOINT", "")
	want := errors.New("dataset missing")
	err := RunWithTelemetry(context.Background(), ServiceQuery, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}
