package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/bayneri/boxoffice/internal/evaluate"
	"github.com/bayneri/boxoffice/internal/planner"
	"github.com/bayneri/boxoffice/internal/scenario"
)

const (
	adhocScenario = "adhoc"
	maxBodyBytes  = 1 << 20
)

// EstimateRecorder is the minimal interface needed to count estimates.
type EstimateRecorder interface {
	RecordEstimate(status, commentator string, profit float64)
	RecordRejected(code string)
}

type estimateResponse struct {
	Status string               `json:"status"`
	Event  evaluate.EventResult `json:"event"`
	Notes  []string             `json:"notes"`
}

// HandleEstimate returns an HTTP handler that estimates one event. The body
// uses the same fields as a scenario event; missing fields take the defaults.
func HandleEstimate(recorder EstimateRecorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var ev scenario.Event
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ev); err != nil {
			reject(w, recorder, http.StatusBadRequest, codeInvalidRequestBody, decodeMessage(err))
			return
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			reject(w, recorder, http.StatusBadRequest, codeInvalidRequestBody, "request body must contain a single JSON object")
			return
		}
		if err := scenario.ValidateEvent(ev); err != nil {
			reject(w, recorder, http.StatusUnprocessableEntity, codeInvalidParameters, err.Error())
			return
		}

		explain, _ := strconv.ParseBool(r.URL.Query().Get("explain"))
		plan := planner.Build(scenario.Single(adhocScenario, ev), planner.Options{})
		result, err := evaluate.Run(plan, evaluate.Options{Explain: explain})
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		item := result.Events[0]
		if recorder != nil {
			recorder.RecordEstimate(item.Status, item.Commentator, item.Estimate.Profit)
		}
		notes := result.Notes
		if notes == nil {
			notes = []string{}
		}
		writeJSON(w, http.StatusOK, estimateResponse{
			Status: result.Status,
			Event:  item,
			Notes:  notes,
		})
	}
}

func reject(w http.ResponseWriter, recorder EstimateRecorder, status int, code, msg string) {
	if recorder != nil {
		recorder.RecordRejected(code)
	}
	writeError(w, status, code, msg)
}

func decodeMessage(err error) string {
	if errors.Is(err, io.EOF) {
		return "request body is required"
	}
	return "invalid request body: " + err.Error()
}
