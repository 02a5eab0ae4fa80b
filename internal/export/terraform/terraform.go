package terraform

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bayneri/boxoffice/internal/monitoring"
)

const outputFile = "main.tf.json"

var dashboardFigures = []string{"profit", "total_revenue", "total_costs", "tickets_sold"}

func Write(project, prefix, outDir string) (string, error) {
	if strings.TrimSpace(project) == "" {
		return "", fmt.Errorf("project is required")
	}
	if outDir == "" {
		outDir = filepath.Join("out", "terraform")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}
	dashboardJSON, err := buildDashboardJSON(prefix)
	if err != nil {
		return "", err
	}

	cfg := map[string]interface{}{
		"terraform": map[string]interface{}{
			"required_providers": map[string]interface{}{
				"google": map[string]interface{}{
					"source":  "hashicorp/google",
					"version": ">= 5.0",
				},
			},
		},
		"provider": map[string]interface{}{
			"google": map[string]interface{}{
				"project": project,
			},
		},
		"resource": buildResources(project, prefix, dashboardJSON),
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
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

func buildResources(project, prefix, dashboardJSON string) map[string]map[string]interface{} {
	resources := map[string]map[string]interface{}{}

	descriptors := map[string]interface{}{}
	for _, desc := range monitoring.BuildDescriptors(project, prefix) {
		var labels []map[string]interface{}
		for _, l := range desc.GetLabels() {
			labels = append(labels, map[string]interface{}{
				"key":         l.GetKey(),
				"value_type":  l.GetValueType().String(),
				"description": l.GetDescription(),
			})
		}
		descriptors[tfName("metric", lastSegment(desc.GetType()))] = map[string]interface{}{
			"project":      project,
			"type":         desc.GetType(),
			"metric_kind":  desc.GetMetricKind().String(),
			"value_type":   desc.GetValueType().String(),
			"unit":         desc.GetUnit(),
			"display_name": desc.GetDisplayName(),
			"description":  desc.GetDescription(),
			"labels":       labels,
		}
	}
	resources["google_monitoring_metric_descriptor"] = descriptors

	resources["google_monitoring_dashboard"] = map[string]interface{}{
		"boxoffice_estimates": map[string]interface{}{
			"project":        project,
			"dashboard_json": dashboardJSON,
		},
	}
	return resources
}

func buildDashboardJSON(prefix string) (string, error) {
	var tiles []map[string]interface{}
	byName := map[string]monitoring.Figure{}
	for _, f := range monitoring.Figures() {
		byName[f.Name] = f
	}
	for i, name := range dashboardFigures {
		f := byName[name]
		tiles = append(tiles, map[string]interface{}{
			"xPos":   (i % 2) * 6,
			"yPos":   (i / 2) * 4,
			"width":  6,
			"height": 4,
			"widget": map[string]interface{}{
				"title": f.DisplayName,
				"xyChart": map[string]interface{}{
					"dataSets": []map[string]interface{}{{
						"plotType": "STACKED_BAR",
						"timeSeriesQuery": map[string]interface{}{
							"timeSeriesFilter": map[string]interface{}{
								"filter": fmt.Sprintf("metric.type=%q resource.type=\"global\"", monitoring.MetricType(prefix, f.Name)),
								"aggregation": map[string]interface{}{
									"perSeriesAligner":   "ALIGN_MEAN",
									"crossSeriesReducer": "REDUCE_SUM",
									"groupByFields":      []string{"metric.label.event"},
								},
							},
						},
					}},
				},
			},
		})
	}
	dashboard := map[string]interface{}{
		"displayName": "boxoffice estimates",
		"mosaicLayout": map[string]interface{}{
			"columns": 12,
			"tiles":   tiles,
		},
	}
	data, err := json.Marshal(dashboard)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func tfName(prefix, id string) string {
	name := strings.ToLower(fmt.Sprintf("%s_%s", prefix, id))
	var out []rune
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			out = append(out, r)
		} else {
			out = append(out, '_')
		}
	}
	return string(out)
}

func lastSegment(value string) string {
	parts := strings.Split(value, "/")
	return parts[len(parts)-1]
}
