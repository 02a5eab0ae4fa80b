package scenario

import (
	"strings"
	"testing"

	"github.com/bayneri/boxoffice/internal/estimate"
)

func ptr[T any](v T) *T { return &v }

func TestLoadExample(t *testing.T) {
	doc, err := Load("testdata/arena-tour.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(doc.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(doc.Events))
	}
	finale := doc.Events[1].Parameters()
	if finale.CommentatorCost != 100000 {
		t.Fatalf("expected commentator cost 100000, got %v", finale.CommentatorCost)
	}
	if finale.CameraCost != 60000 {
		t.Fatalf("expected camera cost 60000, got %v", finale.CameraCost)
	}
	if finale.AdBudget == nil || *finale.AdBudget != 250000 {
		t.Fatalf("expected adBudget to be carried through")
	}
}

func TestEventDefaults(t *testing.T) {
	p := Event{Name: "default"}.Parameters()
	want := estimate.EventParameters{
		EventRating:     DefaultRating,
		ArenaSize:       DefaultArenaSize,
		PPVLengthHours:  DefaultPPVLength,
		CommentatorCost: 10000,
		CameraCost:      10000,
	}
	if p != want {
		t.Fatalf("defaults mismatch: got %+v want %+v", p, want)
	}
}

func TestZeroValuesAreExplicit(t *testing.T) {
	p := Event{Name: "dark", Rating: ptr(0.0), ArenaSize: ptr(0), PPVLengthHours: ptr(0)}.Parameters()
	if p.EventRating != 0 || p.ArenaSize != 0 || p.PPVLengthHours != 0 {
		t.Fatalf("explicit zero values overwritten: %+v", p)
	}
}

func TestValidateEvent(t *testing.T) {
	cases := []struct {
		name   string
		event  Event
		wantOK bool
	}{
		{"empty", Event{}, true},
		{"rating-high", Event{Rating: ptr(1000.5)}, false},
		{"rating-negative", Event{Rating: ptr(-1.0)}, false},
		{"rating-max", Event{Rating: ptr(1000.0)}, true},
		{"arena-negative", Event{ArenaSize: ptr(-1)}, false},
		{"ppv-4", Event{PPVLengthHours: ptr(4)}, false},
		{"ppv-0", Event{PPVLengthHours: ptr(0)}, true},
		{"cameras-0", Event{Cameras: ptr(0)}, false},
		{"cameras-11", Event{Cameras: ptr(11)}, false},
		{"cameras-10", Event{Cameras: ptr(10)}, true},
		{"tier-unknown", Event{Commentator: "celebrity"}, false},
		{"tier-case", Event{Commentator: "National"}, true},
		{"cost-ok", Event{CommentatorCost: ptr(50000.0)}, true},
		{"cost-bad", Event{CommentatorCost: ptr(20000.0)}, false},
		{"both", Event{Commentator: "local", CommentatorCost: ptr(10000.0)}, false},
		{"budget-negative", Event{AdBudget: ptr(-5.0)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEvent(tc.event)
			if tc.wantOK && err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
			if !tc.wantOK && err == nil {
				t.Fatalf("expected error, got ok")
			}
		})
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	doc := Scenario{
		APIVersion: "v0",
		Kind:       KindEventScenario,
		Metadata:   Metadata{Name: "tour"},
		Events: []Event{
			{Name: "a", Rating: ptr(2000.0)},
			{Name: "a", Cameras: ptr(0)},
		},
	}
	err := doc.Validate()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{
		`apiVersion must be "boxoffice.dev/v1"`,
		"events[0].rating must be between 0 and 1000",
		`events[1].name "a" is duplicated`,
		"events[1].cameras must be between 1 and 10",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
}

func TestValidateRejectsIDCollisions(t *testing.T) {
	doc := Single("tour", Event{Name: "x y"})
	doc.Events = append(doc.Events, Event{Name: "x-y"}, Event{Name: "X.Y"}, Event{Name: "xy"})
	err := doc.Validate()
	if err == nil {
		t.Fatalf("expected collision error")
	}
	for _, want := range []string{
		`events[1].name "x-y" collides with "x y"`,
		`events[2].name "X.Y" collides with "x y"`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
	if strings.Contains(err.Error(), "events[3]") {
		t.Fatalf("expected xy to get its own id, got %q", err.Error())
	}
}

func TestSanitizeID(t *testing.T) {
	cases := map[string]string{
		"Arena Tour":    "arena-tour",
		"--opener__2--": "opener-2",
		"x y":           "x-y",
		"!!!":           "event",
	}
	for in, want := range cases {
		if got := SanitizeID(in); got != want {
			t.Fatalf("SanitizeID(%q) = %q, want %q", in, got, want)
		}
	}
	if got := EventID("tour", "x y"); got != "tour-x-y" {
		t.Fatalf("unexpected event id %q", got)
	}
}

func TestSingle(t *testing.T) {
	doc := Single("adhoc", Event{})
	if err := doc.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if doc.Events[0].Name != "adhoc" {
		t.Fatalf("expected event name to default to scenario name, got %q", doc.Events[0].Name)
	}
}

func TestParseLabels(t *testing.T) {
	labels, err := ParseLabels("team=booking, region=emea")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if labels["team"] != "booking" || labels["region"] != "emea" {
		t.Fatalf("unexpected labels %v", labels)
	}
	for _, bad := range []string{"team", "=x", "Team=x", "scenario=other", "managed-by=me", "team=" + strings.Repeat("x", 64)} {
		if _, err := ParseLabels(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestTiersOrdered(t *testing.T) {
	tiers := Tiers()
	if len(tiers) != len(estimate.CommentatorCosts) {
		t.Fatalf("expected %d tiers, got %d", len(estimate.CommentatorCosts), len(tiers))
	}
	for i, tier := range tiers {
		if tier.Cost != estimate.CommentatorCosts[i] {
			t.Fatalf("tier %s cost %v, want %v", tier.Name, tier.Cost, estimate.CommentatorCosts[i])
		}
	}
}

func TestMergeLabels(t *testing.T) {
	base := map[string]string{"promotion": "summer", "team": "live"}
	merged := MergeLabels(base, map[string]string{"team": "ops"})
	if merged["team"] != "ops" || merged["promotion"] != "summer" {
		t.Fatalf("unexpected merge %v", merged)
	}
	merged["extra"] = "x"
	if _, ok := base["extra"]; ok || base["team"] != "live" {
		t.Fatalf("expected base labels to be left alone, got %v", base)
	}
}

func TestValidateRejectsReservedLabels(t *testing.T) {
	doc := Single("tour", Event{})
	doc.Metadata.Labels = map[string]string{"scenario": "other"}
	err := doc.Validate()
	if err == nil || !strings.Contains(err.Error(), `label key "scenario" is reserved`) {
		t.Fatalf("expected reserved label error, got %v", err)
	}
}
