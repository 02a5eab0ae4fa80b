package planner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bayneri/boxoffice/internal/estimate"
	"github.com/bayneri/boxoffice/internal/scenario"
)

const ManagedByLabel = scenario.LabelManagedBy
const ManagedByValue = "boxoffice"

type Plan struct {
	Scenario   string
	ScenarioID string
	Labels     map[string]string
	Events     []EventPlan
}

type EventPlan struct {
	ID          string
	DisplayName string
	Name        string
	Commentator string
	Cameras     int
	Params      estimate.EventParameters
	Labels      map[string]string
}

type Options struct {
	Labels map[string]string
}

func Build(doc scenario.Scenario, opts Options) Plan {
	labels := scenario.MergeLabels(doc.Metadata.Labels, opts.Labels)
	labels[scenario.LabelManagedBy] = ManagedByValue
	labels[scenario.LabelScenario] = doc.Metadata.Name

	var events []EventPlan
	for _, ev := range doc.Events {
		id := scenario.EventID(doc.Metadata.Name, ev.Name)
		params := ev.Parameters()
		events = append(events, EventPlan{
			ID:          id,
			DisplayName: fmt.Sprintf("%s / %s", doc.Metadata.Name, ev.Name),
			Name:        ev.Name,
			Commentator: commentatorLabel(ev, params),
			Cameras:     int(params.CameraCost / estimate.CameraUnitCost),
			Params:      params,
			Labels:      labels,
		})
	}

	return Plan{
		Scenario:   doc.Metadata.Name,
		ScenarioID: scenario.SanitizeID(doc.Metadata.Name),
		Labels:     labels,
		Events:     events,
	}
}

func commentatorLabel(ev scenario.Event, params estimate.EventParameters) string {
	if ev.Commentator != "" {
		return strings.ToLower(strings.TrimSpace(ev.Commentator))
	}
	for _, tier := range scenario.Tiers() {
		if tier.Cost == params.CommentatorCost {
			return tier.Name
		}
	}
	return "custom"
}

func SortedLabels(labels map[string]string) []string {
	var out []string
	for k, v := range labels {
		out = append(out, fmt.Sprintf("%s=%s", k, v))
	}
	sort.Strings(out)
	return out
}
