package monitoring

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bayneri/boxoffice/internal/evaluate"
)

// MaxSeriesPerRequest is the CreateTimeSeries limit.
const MaxSeriesPerRequest = 200

type PublishRequest struct {
	Project string
	Prefix  string
	Result  evaluate.Result
	At      time.Time
}

type PublishSummary struct {
	Descriptors int
	Series      int
	Requests    int
}

func Publish(ctx context.Context, client Client, req PublishRequest) (PublishSummary, error) {
	if strings.TrimSpace(req.Project) == "" {
		return PublishSummary{}, errors.New("project is required")
	}
	if len(req.Result.Events) == 0 {
		return PublishSummary{}, errors.New("result has no events to publish")
	}
	if req.At.IsZero() {
		req.At = time.Now().UTC()
	}

	var summary PublishSummary
	for _, desc := range BuildDescriptors(req.Project, req.Prefix) {
		if err := client.EnsureDescriptor(ctx, req.Project, desc); err != nil {
			return summary, fmt.Errorf("ensure descriptor %s: %w", desc.GetType(), err)
		}
		summary.Descriptors++
	}

	series := BuildTimeSeries(req.Project, req.Prefix, req.Result, req.At)
	for start := 0; start < len(series); start += MaxSeriesPerRequest {
		end := start + MaxSeriesPerRequest
		if end > len(series) {
			end = len(series)
		}
		if err := client.WriteTimeSeries(ctx, req.Project, series[start:end]); err != nil {
			return summary, fmt.Errorf("write time series batch %d: %w", summary.Requests+1, err)
		}
		summary.Series += end - start
		summary.Requests++
	}
	return summary, nil
}
