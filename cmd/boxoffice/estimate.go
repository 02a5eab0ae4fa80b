package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bayneri/boxoffice/internal/evaluate"
	"github.com/bayneri/boxoffice/internal/report"
)

func runEstimate(args []string) error {
	fs, opts := baseFlags("estimate")
	out := fs.String("out", "", "output directory (prints to stdout when empty)")
	format := fs.String("format", "md,json,csv", "comma-separated output formats: md, json, csv")
	explainFlag := fs.Bool("explain", false, "include formulas and clamp notes")
	failOnLoss := fs.Bool("fail-on-loss", false, "exit 2 if any event loses money")
	if err := fs.Parse(args); err != nil {
		return err
	}

	formats := parseFormat(*format)
	for _, f := range formats {
		if f != "md" && f != "json" && f != "csv" {
			return fmt.Errorf("unknown format %q (want md, json or csv)", f)
		}
	}

	plan, _, err := buildPlan(fs, opts)
	if err != nil {
		return err
	}
	result, err := evaluate.Run(plan, evaluate.Options{Explain: *explainFlag})
	if err != nil {
		return err
	}

	if strings.TrimSpace(*out) == "" {
		if err := printResult(result, formats, *explainFlag); err != nil {
			return err
		}
	} else {
		if err := writeResult(*out, result, formats, *explainFlag); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote estimate to %s\n", *out)
	}

	if result.Status == evaluate.StatusLoss && *failOnLoss {
		return partialError(errors.New("estimate shows a loss"))
	}
	return nil
}

func printResult(result evaluate.Result, formats []string, explain bool) error {
	switch formats[0] {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "csv":
		return report.RenderChartCSV(os.Stdout, result)
	default:
		report.RenderMarkdown(os.Stdout, result, report.Options{Explain: explain})
		return nil
	}
}

func writeResult(outDir string, result evaluate.Result, formats []string, explain bool) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if includesFormat(formats, "md") {
		if err := report.WriteMarkdownSummary(filepath.Join(outDir, "summary.md"), result, report.Options{Explain: explain}); err != nil {
			return err
		}
	}
	if includesFormat(formats, "json") {
		if err := report.WriteSummaryJSON(filepath.Join(outDir, "summary.json"), result); err != nil {
			return err
		}
	}
	if includesFormat(formats, "csv") {
		if err := report.WriteChartCSV(filepath.Join(outDir, "chart.csv"), result); err != nil {
			return err
		}
	}
	if len(result.Notes) > 0 {
		if err := report.WriteNotesMarkdown(filepath.Join(outDir, "notes.md"), result.Notes); err != nil {
			return err
		}
	}
	return nil
}

func parseFormat(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{"md", "json", "csv"}
	}
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return []string{"md", "json", "csv"}
	}
	return out
}

func includesFormat(formats []string, value string) bool {
	for _, format := range formats {
		if format == value {
			return true
		}
	}
	return false
}
