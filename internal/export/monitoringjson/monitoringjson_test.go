package monitoringjson

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/bayneri/boxoffice/internal/evaluate"
	"github.com/bayneri/boxoffice/internal/monitoring"
	"github.com/bayneri/boxoffice/internal/planner"
	"github.com/bayneri/boxoffice/internal/scenario"
)

func TestWriteMonitoringJSON(t *testing.T) {
	doc := scenario.Single("adhoc", scenario.Event{})
	result, err := evaluate.Run(planner.Build(doc, planner.Options{}), evaluate.Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	dir := t.TempDir()
	path, err := Write("demo", "", result, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), dir)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var payload struct {
		Project           string                   `json:"project"`
		MetricDescriptors []map[string]interface{} `json:"metricDescriptors"`
		TimeSeries        []map[string]interface{} `json:"timeSeries"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if payload.Project != "demo" {
		t.Fatalf("expected project demo, got %q", payload.Project)
	}
	if len(payload.MetricDescriptors) != len(monitoring.Figures()) {
		t.Fatalf("expected %d descriptors, got %d", len(monitoring.Figures()), len(payload.MetricDescriptors))
	}
	if len(payload.TimeSeries) != len(monitoring.Figures()) {
		t.Fatalf("expected %d series, got %d", len(monitoring.Figures()), len(payload.TimeSeries))
	}
	if payload.TimeSeries[0]["metricKind"] != "GAUGE" {
		t.Fatalf("expected GAUGE metric kind, got %v", payload.TimeSeries[0]["metricKind"])
	}
}
