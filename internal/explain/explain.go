package explain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bayneri/boxoffice/internal/estimate"
	"github.com/bayneri/boxoffice/internal/scenario"
)

var topics = map[string]func() string{
	"model": Model,
	"ppv":   PPV,
	"tiers": Tiers,
}

func Topic(name string) (string, error) {
	fn, ok := topics[name]
	if !ok {
		return "", fmt.Errorf("unknown explain topic %q (want one of %s)", name, strings.Join(Topics(), ", "))
	}
	return fn(), nil
}

func Topics() []string {
	var out []string
	for k := range topics {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func Model() string {
	var b strings.Builder
	b.WriteString(`The estimate is a chain of closed-form formulas. Each stage reads only the inputs and earlier stages:

`)
	for _, formula := range estimate.Formulas() {
		fmt.Fprintf(&b, "  %s\n", formula)
	}
	b.WriteString(`
Recommended spending comes from the rating (ads) and the arena size (production, at a capped per-seat rate).
Tickets sold never leave [0, arena size]. The optional ad and production budgets are accepted but do not change any figure.`)
	return b.String()
}

func PPV() string {
	return fmt.Sprintf(`PPV purchases start from the rating, net of recommended ad spending, and are scaled by broadcast length.

The length multiplier is 1 + 0.2h - 0.05h^2: %.2f at 1h, %.2f at 2h, %.2f at 3h. A 0h PPV is not broadcast, so all PPV figures are zero.

Total revenue counts gross PPV revenue. Profit counts only half of it, the share retained after broadcast costs, so profit is not total revenue minus total costs whenever a PPV airs.`,
		estimate.PPVLengthMultiplier(1), estimate.PPVLengthMultiplier(2), estimate.PPVLengthMultiplier(3))
}

func Tiers() string {
	var b strings.Builder
	b.WriteString("Commentator tiers:\n")
	for _, tier := range scenario.Tiers() {
		fmt.Fprintf(&b, "  %-9s $%.0f  %s\n", tier.Name, tier.Cost, tier.Description)
	}
	fmt.Fprintf(&b, "\nCameras cost $%d each, %d to %d per event.", estimate.CameraUnitCost, estimate.MinCameras, estimate.MaxCameras)
	return b.String()
}
