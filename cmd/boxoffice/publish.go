package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bayneri/boxoffice/internal/evaluate"
	"github.com/bayneri/boxoffice/internal/monitoring"
	"github.com/bayneri/boxoffice/internal/planner"
)

func runPublish(args []string) error {
	fs, opts := baseFlags("publish")
	mon := monitoringFlags(fs)
	dryRun := fs.Bool("dry-run", false, "show what would be published without calling the API")
	timeout := fs.Duration("timeout", 30*time.Second, "API timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := mon.validate(); err != nil {
		return err
	}
	plan, _, err := buildPlan(fs, opts)
	if err != nil {
		return err
	}
	result, err := evaluate.Run(plan, evaluate.Options{})
	if err != nil {
		return err
	}

	if *dryRun {
		planner.Render(os.Stdout, plan)
		series := monitoring.BuildTimeSeries(mon.project, mon.prefix, result, time.Now().UTC())
		fmt.Fprintf(os.Stdout, "Publish would write %d metric descriptors and %d time series to project %s.\n",
			len(monitoring.Figures()), len(series), mon.project)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := monitoring.NewGCPClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	summary, err := monitoring.Publish(ctx, client, monitoring.PublishRequest{
		Project: mon.project,
		Prefix:  mon.prefix,
		Result:  result,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Published %d time series (%d descriptors, %d requests) to project %s.\n",
		summary.Series, summary.Descriptors, summary.Requests, mon.project)
	fmt.Fprintf(os.Stdout, "Cloud Console: https://console.cloud.google.com/monitoring/metrics-explorer?project=%s\n", mon.project)
	return nil
}
