package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bayneri/boxoffice/internal/scenario"
)

func runInit(args []string) error {
	fs, opts := baseFlags("init")
	outPath := fs.String("out", "", "output path for the scenario file")
	force := fs.Bool("force", false, "overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(opts.file) != "" {
		return errors.New("init does not read -f; use the event flags")
	}
	labels, err := scenario.ParseLabels(opts.labels)
	if err != nil {
		return err
	}

	doc, err := loadScenario(fs, opts)
	if err != nil {
		return err
	}
	if len(labels) > 0 {
		doc.Metadata.Labels = labels
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	path := *outPath
	if strings.TrimSpace(path) == "" {
		path = filepath.Join("out", "scenarios", fmt.Sprintf("%s.yaml", doc.Metadata.Name))
	}
	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote scenario to %s\n", path)
	return nil
}
