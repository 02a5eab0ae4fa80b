package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bayneri/boxoffice/internal/evaluate"
	"github.com/bayneri/boxoffice/internal/export/monitoringjson"
	"github.com/bayneri/boxoffice/internal/export/terraform"
	"github.com/bayneri/boxoffice/internal/monitoring"
)

const (
	envProject      = "GOOGLE_CLOUD_PROJECT"
	envMetricPrefix = "BOXOFFICE_METRIC_PREFIX"
)

type monitoringOptions struct {
	project string
	prefix  string
}

func monitoringFlags(fs *flag.FlagSet) *monitoringOptions {
	opts := &monitoringOptions{}
	fs.StringVar(&opts.project, "project", os.Getenv(envProject), "GCP project ID (default $"+envProject+")")
	fs.StringVar(&opts.prefix, "prefix", envOr(envMetricPrefix, monitoring.DefaultPrefix), "custom metric type prefix")
	return opts
}

func (o *monitoringOptions) validate() error {
	if strings.TrimSpace(o.project) == "" {
		return fmt.Errorf("project is required via --project or $%s", envProject)
	}
	if !strings.HasPrefix(o.prefix, "custom.googleapis.com/") {
		return errors.New("--prefix must start with custom.googleapis.com/")
	}
	return nil
}

func runExport(args []string) error {
	if len(args) == 0 {
		return errors.New("export requires a format: monitoring-json, terraform")
	}
	switch args[0] {
	case "terraform":
		return runExportTerraform(args[1:])
	case "monitoring-json":
		return runExportMonitoringJSON(args[1:])
	default:
		return fmt.Errorf("unknown export format %q", args[0])
	}
}

func runExportTerraform(args []string) error {
	fs := flag.NewFlagSet("export terraform", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	mon := monitoringFlags(fs)
	outDir := fs.String("out", "out/terraform", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := mon.validate(); err != nil {
		return err
	}
	path, err := terraform.Write(mon.project, mon.prefix, *outDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote Terraform export to %s\n", path)
	return nil
}

func runExportMonitoringJSON(args []string) error {
	fs, opts := baseFlags("export monitoring-json")
	mon := monitoringFlags(fs)
	outDir := fs.String("out", "out/monitoring-json", "output directory")
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
	path, err := monitoringjson.Write(mon.project, mon.prefix, result, time.Now().UTC(), *outDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote Monitoring JSON export to %s\n", path)
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
