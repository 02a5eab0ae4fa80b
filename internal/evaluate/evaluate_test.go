package evaluate

import (
	"reflect"
	"strings"
	"testing"

	"github.com/bayneri/boxoffice/internal/estimate"
	"github.com/bayneri/boxoffice/internal/planner"
	"github.com/bayneri/boxoffice/internal/scenario"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int { return &v }

func buildPlan(events ...scenario.Event) planner.Plan {
	return planner.Build(scenario.Scenario{
		APIVersion: scenario.APIVersionV1,
		Kind:       scenario.KindEventScenario,
		Metadata:   scenario.Metadata{Name: "tour"},
		Events:     events,
	}, planner.Options{})
}

func TestRunStatus(t *testing.T) {
	plan := buildPlan(
		scenario.Event{Name: "headline"},
		scenario.Event{Name: "empty-house", Rating: floatPtr(0), ArenaSize: intPtr(100000), PPVLengthHours: intPtr(0)},
	)
	result, err := Run(plan, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Events[0].Status != StatusProfit {
		t.Fatalf("expected headline to profit, got %s", result.Events[0].Status)
	}
	if result.Events[1].Status != StatusLoss {
		t.Fatalf("expected empty house to lose, got %s", result.Events[1].Status)
	}
	if result.Status != StatusLoss {
		t.Fatalf("expected overall loss, got %s", result.Status)
	}
	if result.SchemaVersion != SchemaVersion {
		t.Fatalf("missing schema version")
	}
}

func TestRunMatchesEngine(t *testing.T) {
	plan := buildPlan(scenario.Event{Name: "one"})
	result, err := Run(plan, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := estimate.Compute(plan.Events[0].Params)
	if result.Events[0].Estimate != want {
		t.Fatalf("estimate mismatch: got %+v want %+v", result.Events[0].Estimate, want)
	}
	if result.Events[0].Explain != nil {
		t.Fatalf("explain should be omitted by default")
	}
}

func TestRunIdempotent(t *testing.T) {
	plan := buildPlan(scenario.Event{Name: "one", AdBudget: floatPtr(5)}, scenario.Event{Name: "two", PPVLengthHours: intPtr(1)})
	first, err := Run(plan, Options{Explain: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	second, err := Run(plan, Options{Explain: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ between runs")
	}
}

func TestRunReservedInputNotes(t *testing.T) {
	plan := buildPlan(scenario.Event{Name: "one", AdBudget: floatPtr(1000), ProdBudget: floatPtr(2000)})
	result, err := Run(plan, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Notes) != 2 {
		t.Fatalf("expected 2 notes, got %v", result.Notes)
	}
	if !strings.Contains(result.Notes[0], "adBudget 1000.00 is reserved") {
		t.Fatalf("unexpected note %q", result.Notes[0])
	}
}

func TestRunExplain(t *testing.T) {
	plan := buildPlan(scenario.Event{Name: "dark", PPVLengthHours: intPtr(0)})
	result, err := Run(plan, Options{Explain: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	explain := result.Events[0].Explain
	if explain == nil || len(explain.Formulas) == 0 {
		t.Fatalf("expected formulas")
	}
	if len(explain.Notes) != 1 || !strings.Contains(explain.Notes[0], "PPV length is 0") {
		t.Fatalf("unexpected notes %v", explain.Notes)
	}
}

func TestRunCustomPolicy(t *testing.T) {
	plan := buildPlan(scenario.Event{Name: "one"})
	policy := estimate.DefaultPolicy()
	policy.TicketPrice = 100
	result, err := Run(plan, Options{Policy: &policy})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	est := result.Events[0].Estimate
	if est.TicketRevenue != est.TicketsSold*100 {
		t.Fatalf("expected custom ticket price to apply")
	}
}

func TestRunEmptyPlan(t *testing.T) {
	if _, err := Run(planner.Plan{}, Options{}); err == nil {
		t.Fatalf("expected error for empty plan")
	}
}
