package evaluate

import "github.com/bayneri/boxoffice/internal/estimate"

const SchemaVersion = "1.0"

const (
	StatusProfit = "profit"
	StatusLoss   = "loss"
)

type Result struct {
	SchemaVersion string            `json:"schemaVersion"`
	Scenario      string            `json:"scenario"`
	ScenarioID    string            `json:"scenarioId"`
	Labels        map[string]string `json:"labels,omitempty"`
	Status        string            `json:"status"`
	Events        []EventResult     `json:"events"`
	Notes         []string          `json:"notes"`
}

type EventResult struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	DisplayName string                   `json:"displayName"`
	Commentator string                   `json:"commentator"`
	Cameras     int                      `json:"cameras"`
	Inputs      estimate.EventParameters `json:"inputs"`
	Estimate    estimate.Result          `json:"estimate"`
	Chart       []estimate.Component     `json:"chart"`
	Status      string                   `json:"status"`
	Explain     *Explain                 `json:"explain,omitempty"`
}

type Explain struct {
	Formulas []string `json:"formulas"`
	Notes    []string `json:"notes"`
}
