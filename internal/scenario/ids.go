package scenario

import "strings"

// EventID is the planned ID of an event; it must be unique within a scenario.
func EventID(scenarioName, eventName string) string {
	return SanitizeID(scenarioName + "-" + eventName)
}

func SanitizeID(input string) string {
	normalized := strings.ToLower(input)
	var out []rune
	lastDash := false
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			out = append(out, r)
			lastDash = false
			continue
		}
		if !lastDash {
			out = append(out, '-')
			lastDash = true
		}
	}
	result := strings.Trim(string(out), "-")
	if result == "" {
		return "event"
	}
	return result
}
