package scenario

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/bayneri/boxoffice/internal/estimate"
)

const (
	APIVersionV1       = "boxoffice.dev/v1"
	KindEventScenario  = "EventScenario"
	DefaultRating      = 500
	DefaultArenaSize   = 20000
	DefaultPPVLength   = 3
	DefaultCameras     = 1
	DefaultCommentator = "local"
)

type Scenario struct {
	APIVersion string   `yaml:"apiVersion" json:"apiVersion"`
	Kind       string   `yaml:"kind" json:"kind"`
	Metadata   Metadata `yaml:"metadata" json:"metadata"`
	Events     []Event  `yaml:"events" json:"events"`
}

type Metadata struct {
	Name   string            `yaml:"name" json:"name"`
	Labels map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

type Event struct {
	Name            string   `yaml:"name" json:"name"`
	Rating          *float64 `yaml:"rating,omitempty" json:"rating,omitempty"`
	ArenaSize       *int     `yaml:"arenaSize,omitempty" json:"arenaSize,omitempty"`
	PPVLengthHours  *int     `yaml:"ppvLengthHours,omitempty" json:"ppvLengthHours,omitempty"`
	Commentator     string   `yaml:"commentator,omitempty" json:"commentator,omitempty"`
	CommentatorCost *float64 `yaml:"commentatorCost,omitempty" json:"commentatorCost,omitempty"`
	Cameras         *int     `yaml:"cameras,omitempty" json:"cameras,omitempty"`
	AdBudget        *float64 `yaml:"adBudget,omitempty" json:"adBudget,omitempty"`
	ProdBudget      *float64 `yaml:"prodBudget,omitempty" json:"prodBudget,omitempty"`
}

var nameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 _.-]*$`)

func Single(name string, ev Event) Scenario {
	if strings.TrimSpace(ev.Name) == "" {
		ev.Name = name
	}
	return Scenario{
		APIVersion: APIVersionV1,
		Kind:       KindEventScenario,
		Metadata:   Metadata{Name: name},
		Events:     []Event{ev},
	}
}

func (s Scenario) Validate() error {
	var errs []string
	if s.APIVersion != APIVersionV1 {
		errs = append(errs, fmt.Sprintf("apiVersion must be %q", APIVersionV1))
	}
	if s.Kind != KindEventScenario {
		errs = append(errs, fmt.Sprintf("kind must be %q", KindEventScenario))
	}
	if strings.TrimSpace(s.Metadata.Name) == "" {
		errs = append(errs, "metadata.name is required")
	} else if !nameRe.MatchString(s.Metadata.Name) {
		errs = append(errs, "metadata.name must start with a letter or digit")
	}
	for k, v := range s.Metadata.Labels {
		if err := checkLabel(k, v); err != nil {
			errs = append(errs, fmt.Sprintf("metadata.labels: %v", err))
		}
	}
	if len(s.Events) == 0 {
		errs = append(errs, "at least one event is required")
	}

	seen := map[string]string{}
	for i, ev := range s.Events {
		prefix := fmt.Sprintf("events[%d]", i)
		if strings.TrimSpace(ev.Name) == "" {
			errs = append(errs, fmt.Sprintf("%s.name is required", prefix))
		} else {
			id := EventID(s.Metadata.Name, ev.Name)
			switch prev, dup := seen[id]; {
			case dup && prev == ev.Name:
				errs = append(errs, fmt.Sprintf("%s.name %q is duplicated", prefix, ev.Name))
			case dup:
				errs = append(errs, fmt.Sprintf("%s.name %q collides with %q", prefix, ev.Name, prev))
			default:
				seen[id] = ev.Name
			}
		}
		for _, err := range ev.validate() {
			errs = append(errs, fmt.Sprintf("%s.%s", prefix, err))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func ValidateEvent(ev Event) error {
	errs := ev.validate()
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (e Event) validate() []string {
	var errs []string
	if e.Rating != nil {
		r := *e.Rating
		if math.IsNaN(r) || r < 0 || r > estimate.MaxEventRating {
			errs = append(errs, fmt.Sprintf("rating must be between 0 and %d", estimate.MaxEventRating))
		}
	}
	if e.ArenaSize != nil && *e.ArenaSize < 0 {
		errs = append(errs, "arenaSize must not be negative")
	}
	if e.PPVLengthHours != nil && (*e.PPVLengthHours < 0 || *e.PPVLengthHours > estimate.MaxPPVLength) {
		errs = append(errs, fmt.Sprintf("ppvLengthHours must be one of 0, 1, 2, %d", estimate.MaxPPVLength))
	}
	if e.Cameras != nil && (*e.Cameras < estimate.MinCameras || *e.Cameras > estimate.MaxCameras) {
		errs = append(errs, fmt.Sprintf("cameras must be between %d and %d", estimate.MinCameras, estimate.MaxCameras))
	}
	if e.Commentator != "" && e.CommentatorCost != nil {
		errs = append(errs, "set commentator or commentatorCost, not both")
	}
	if e.Commentator != "" {
		if _, err := TierFor(e.Commentator); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if e.CommentatorCost != nil && !allowedCommentatorCost(*e.CommentatorCost) {
		errs = append(errs, fmt.Sprintf("commentatorCost must be one of %v", estimate.CommentatorCosts))
	}
	if e.AdBudget != nil && *e.AdBudget < 0 {
		errs = append(errs, "adBudget must not be negative")
	}
	if e.ProdBudget != nil && *e.ProdBudget < 0 {
		errs = append(errs, "prodBudget must not be negative")
	}
	return errs
}

func allowedCommentatorCost(cost float64) bool {
	for _, allowed := range estimate.CommentatorCosts {
		if cost == allowed {
			return true
		}
	}
	return false
}

func (e Event) Parameters() estimate.EventParameters {
	p := estimate.EventParameters{
		EventRating:    DefaultRating,
		ArenaSize:      DefaultArenaSize,
		PPVLengthHours: DefaultPPVLength,
		CameraCost:     estimate.CameraCostFor(DefaultCameras),
		AdBudget:       e.AdBudget,
		ProdBudget:     e.ProdBudget,
	}
	if e.Rating != nil {
		p.EventRating = *e.Rating
	}
	if e.ArenaSize != nil {
		p.ArenaSize = *e.ArenaSize
	}
	if e.PPVLengthHours != nil {
		p.PPVLengthHours = *e.PPVLengthHours
	}
	if e.Cameras != nil {
		p.CameraCost = estimate.CameraCostFor(*e.Cameras)
	}
	switch {
	case e.CommentatorCost != nil:
		p.CommentatorCost = *e.CommentatorCost
	case e.Commentator != "":
		tier, _ := TierFor(e.Commentator)
		p.CommentatorCost = tier.Cost
	default:
		tier, _ := TierFor(DefaultCommentator)
		p.CommentatorCost = tier.Cost
	}
	return p
}
