package scenario

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	LabelManagedBy = "managed-by"
	LabelScenario  = "scenario"
	maxLabelValue  = 63
)

var labelKeyRe = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,62}$`)

// ParseLabels reads CLI labels in key=value,key=value form.
func ParseLabels(input string) (map[string]string, error) {
	labels := map[string]string{}
	if strings.TrimSpace(input) == "" {
		return labels, nil
	}
	for _, pair := range strings.Split(input, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("invalid label %q", pair)
		}
		if err := checkLabel(key, value); err != nil {
			return nil, err
		}
		labels[key] = value
	}
	return labels, nil
}

// MergeLabels layers overrides on base; neither input is modified.
func MergeLabels(base, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

func checkLabel(key, value string) error {
	switch {
	case !labelKeyRe.MatchString(key):
		return fmt.Errorf("invalid label key %q", key)
	case key == LabelManagedBy || key == LabelScenario:
		return fmt.Errorf("label key %q is reserved", key)
	case len(value) > maxLabelValue:
		return fmt.Errorf("label %q value must be at most %d characters", key, maxLabelValue)
	}
	return nil
}
