package monitoringjson

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/bayneri/boxoffice/internal/evaluate"
	"github.com/bayneri/boxoffice/internal/monitoring"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const outputFile = "monitoring.json"

// Write renders the descriptors and time series that publish would send.
func Write(project, prefix string, result evaluate.Result, at time.Time, outDir string) (string, error) {
	if outDir == "" {
		outDir = filepath.Join("out", "monitoring-json")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}

	var descriptors []interface{}
	for _, desc := range monitoring.BuildDescriptors(project, prefix) {
		item, err := protoToInterface(desc)
		if err != nil {
			return "", err
		}
		descriptors = append(descriptors, item)
	}

	var series []interface{}
	for _, ts := range monitoring.BuildTimeSeries(project, prefix, result, at) {
		item, err := protoToInterface(ts)
		if err != nil {
			return "", err
		}
		series = append(series, item)
	}

	payload := map[string]interface{}{
		"project":           project,
		"metricDescriptors": descriptors,
		"timeSeries":        series,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')
	path := filepath.Join(outDir, outputFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

func protoToInterface(msg proto.Message) (interface{}, error) {
	data, err := protojson.Marshal(msg)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
