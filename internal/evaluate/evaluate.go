package evaluate

import (
	"errors"
	"fmt"

	"github.com/bayneri/boxoffice/internal/estimate"
	"github.com/bayneri/boxoffice/internal/planner"
)

type Options struct {
	Explain bool
	Policy  *estimate.Policy
}

func Run(plan planner.Plan, opts Options) (Result, error) {
	if len(plan.Events) == 0 {
		return Result{}, errors.New("plan has no events")
	}
	policy := estimate.DefaultPolicy()
	if opts.Policy != nil {
		policy = *opts.Policy
	}

	result := Result{
		SchemaVersion: SchemaVersion,
		Scenario:      plan.Scenario,
		ScenarioID:    plan.ScenarioID,
		Labels:        plan.Labels,
	}

	var notes []string
	for _, ev := range plan.Events {
		item := Evaluate(ev, policy, opts.Explain)
		notes = append(notes, reservedInputNotes(ev)...)
		result.Events = append(result.Events, item)
	}

	result.Notes = notes
	result.Status = overallStatus(result.Events)
	return result, nil
}

func Evaluate(ev planner.EventPlan, policy estimate.Policy, explain bool) EventResult {
	est := estimate.ComputeWithPolicy(ev.Params, policy)
	item := EventResult{
		ID:          ev.ID,
		Name:        ev.Name,
		DisplayName: ev.DisplayName,
		Commentator: ev.Commentator,
		Cameras:     ev.Cameras,
		Inputs:      ev.Params,
		Estimate:    est,
		Chart:       estimate.Breakdown(ev.Params, est),
		Status:      statusFor(est),
	}
	if explain {
		item.Explain = &Explain{
			Formulas: estimate.Formulas(),
			Notes:    estimate.NotesWithPolicy(ev.Params, policy),
		}
	}
	return item
}

func statusFor(est estimate.Result) string {
	if est.Profit < 0 {
		return StatusLoss
	}
	return StatusProfit
}

func overallStatus(events []EventResult) string {
	for _, ev := range events {
		if ev.Status == StatusLoss {
			return StatusLoss
		}
	}
	return StatusProfit
}

func reservedInputNotes(ev planner.EventPlan) []string {
	var notes []string
	if ev.Params.AdBudget != nil {
		notes = append(notes, fmt.Sprintf("%s: adBudget %.2f is reserved and not used by the model", ev.Name, *ev.Params.AdBudget))
	}
	if ev.Params.ProdBudget != nil {
		notes = append(notes, fmt.Sprintf("%s: prodBudget %.2f is reserved and not used by the model", ev.Name, *ev.Params.ProdBudget))
	}
	return notes
}
