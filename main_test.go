package main

import (
	"testing"

	"github.com/atomicstack/linepicker/internal/app"
	"github.com/atomicstack/linepicker/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Title:       "Scripts",
			MultiSelect: true,
			VisibleRows: 12,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"title": "Scripts",
			"multi": "true",
			"rows":  "12",
		},
		Args: []string{"--title", "Scripts"},
	}

	payload := startupTracePayload(cfg, 7)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["title"] != "Scripts" {
		t.Fatalf("expected title flag %q, got %v", "Scripts", flagsValue["title"])
	}
	if flagsValue["multi"] != "true" {
		t.Fatalf("expected multi flag true, got %v", flagsValue["multi"])
	}
	if flagsValue["rows"] != "12" {
		t.Fatalf("expected rows 12, got %v", flagsValue["rows"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}

	if payload["entries"] != 7 {
		t.Fatalf("expected entry count 7, got %v", payload["entries"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
