package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bayneri/boxoffice/internal/evaluate"
)

type AggregateResult struct {
	SchemaVersion string              `json:"schemaVersion"`
	Inputs        []string            `json:"inputs"`
	Status        string              `json:"status"`
	Scenarios     []ScenarioAggregate `json:"scenarios"`
	Totals        Totals              `json:"totals"`
	Errors        []string            `json:"errors"`
}

type ScenarioAggregate struct {
	Scenario string                 `json:"scenario"`
	Status   string                 `json:"status"`
	Events   []evaluate.EventResult `json:"events"`
	Totals   Totals                 `json:"totals"`
	Notes    []string               `json:"notes"`
}

type Totals struct {
	Events       int     `json:"events"`
	TicketsSold  float64 `json:"ticketsSold"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalCosts   float64 `json:"totalCosts"`
	Profit       float64 `json:"profit"`
}

func (t *Totals) add(ev evaluate.EventResult) {
	t.Events++
	t.TicketsSold += ev.Estimate.TicketsSold
	t.TotalRevenue += ev.Estimate.TotalRevenue
	t.TotalCosts += ev.Estimate.TotalCosts
	t.Profit += ev.Estimate.Profit
}

func ReadResults(paths []string) ([]evaluate.Result, error) {
	var results []evaluate.Result
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var result evaluate.Result
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if result.SchemaVersion == "" {
			return nil, fmt.Errorf("missing schemaVersion in %s", path)
		}
		results = append(results, result)
	}
	return results, nil
}

func Aggregate(results []evaluate.Result, inputs []string) (AggregateResult, error) {
	if len(results) == 0 {
		return AggregateResult{}, errors.New("no results to aggregate")
	}
	byScenario := map[string]*ScenarioAggregate{}
	seen := map[string]evaluate.EventResult{}
	var errorsList []string
	status := evaluate.StatusProfit
	for i, result := range results {
		source := fmt.Sprintf("input %d", i+1)
		if len(inputs) > i {
			source = inputs[i]
		}
		if result.SchemaVersion != evaluate.SchemaVersion {
			errorsList = append(errorsList, fmt.Sprintf("%s: schemaVersion %s differs from %s", source, result.SchemaVersion, evaluate.SchemaVersion))
		}
		item, ok := byScenario[result.Scenario]
		if !ok {
			item = &ScenarioAggregate{Scenario: result.Scenario, Status: evaluate.StatusProfit}
			byScenario[result.Scenario] = item
		}
		for _, ev := range result.Events {
			if prev, dup := seen[ev.ID]; dup {
				if prev.Estimate != ev.Estimate {
					errorsList = append(errorsList, fmt.Sprintf("%s: event %s differs from an earlier input", source, ev.ID))
				}
				continue
			}
			seen[ev.ID] = ev
			item.Events = append(item.Events, ev)
			item.Totals.add(ev)
			item.Status = mergeStatus(item.Status, ev.Status)
		}
		item.Notes = append(item.Notes, result.Notes...)
		status = mergeStatus(status, item.Status)
	}

	var scenarios []ScenarioAggregate
	var totals Totals
	for _, item := range byScenario {
		sort.Slice(item.Events, func(i, j int) bool {
			return item.Events[i].ID < item.Events[j].ID
		})
		totals.Events += item.Totals.Events
		totals.TicketsSold += item.Totals.TicketsSold
		totals.TotalRevenue += item.Totals.TotalRevenue
		totals.TotalCosts += item.Totals.TotalCosts
		totals.Profit += item.Totals.Profit
		scenarios = append(scenarios, *item)
	}
	sort.Slice(scenarios, func(i, j int) bool {
		return scenarios[i].Scenario < scenarios[j].Scenario
	})

	return AggregateResult{
		SchemaVersion: evaluate.SchemaVersion,
		Inputs:        inputs,
		Status:        status,
		Scenarios:     scenarios,
		Totals:        totals,
		Errors:        errorsList,
	}, nil
}

func mergeStatus(a, b string) string {
	if a == evaluate.StatusLoss || b == evaluate.StatusLoss {
		return evaluate.StatusLoss
	}
	return evaluate.StatusProfit
}

func WriteAggregateJSON(path string, result AggregateResult) error {
	return WriteJSON(path, result)
}

func WriteAggregateMarkdown(path string, result AggregateResult) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# boxoffice report\n\n")
	fmt.Fprintf(&b, "Inputs: %d\n\n", len(result.Inputs))
	for _, sc := range result.Scenarios {
		fmt.Fprintf(&b, "## %s\n\n", sc.Scenario)
		fmt.Fprintf(&b, "- Status: %s\n", sc.Status)
		fmt.Fprintf(&b, "- Profit: %s across %d event(s)\n\n", Money(sc.Totals.Profit), sc.Totals.Events)

		fmt.Fprintf(&b, "| Event | Tickets sold | Total revenue | Total costs | Profit | Status |\n")
		fmt.Fprintf(&b, "| --- | --- | --- | --- | --- | --- |\n")
		for _, ev := range sc.Events {
			est := ev.Estimate
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				ev.Name, Count(est.TicketsSold), Money(est.TotalRevenue), Money(est.TotalCosts), Money(est.Profit), ev.Status)
		}
		if len(sc.Notes) > 0 {
			fmt.Fprintf(&b, "\nNotes:\n")
			for _, note := range sc.Notes {
				fmt.Fprintf(&b, "- %s\n", note)
			}
		}
		fmt.Fprintf(&b, "\n")
	}
	fmt.Fprintf(&b, "Overall profit: %s (%s)\n", Money(result.Totals.Profit), result.Status)
	if len(result.Errors) > 0 {
		fmt.Fprintf(&b, "\n## Warnings\n")
		for _, err := range result.Errors {
			fmt.Fprintf(&b, "- %s\n", err)
		}
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}
