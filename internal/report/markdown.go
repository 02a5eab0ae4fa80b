package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bayneri/boxoffice/internal/evaluate"
	"github.com/bayneri/boxoffice/internal/planner"
)

type Options struct {
	Explain bool
}

func WriteMarkdownSummary(path string, result evaluate.Result, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	var b strings.Builder
	RenderMarkdown(&b, result, opts)
	return os.WriteFile(path, []byte(b.String()), 0644)
}

func RenderMarkdown(w io.Writer, result evaluate.Result, opts Options) {
	fmt.Fprintf(w, "# Event estimate\n\n")
	fmt.Fprintf(w, "- Scenario: %s\n", result.Scenario)
	fmt.Fprintf(w, "- Status: %s\n", result.Status)
	if len(result.Labels) > 0 {
		fmt.Fprintf(w, "- Labels: %s\n", strings.Join(planner.SortedLabels(result.Labels), ", "))
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "| Event | Tickets sold | Total revenue | Total costs | Profit | Status |\n")
	fmt.Fprintf(w, "| --- | --- | --- | --- | --- | --- |\n")
	for _, ev := range result.Events {
		est := ev.Estimate
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
			ev.Name, Count(est.TicketsSold), Money(est.TotalRevenue), Money(est.TotalCosts), Money(est.Profit), ev.Status)
	}

	for _, ev := range result.Events {
		renderEvent(w, ev, opts)
	}

	if len(result.Notes) > 0 {
		fmt.Fprintf(w, "\n## Notes & assumptions\n")
		for _, note := range result.Notes {
			fmt.Fprintf(w, "- %s\n", note)
		}
	}
}

func renderEvent(w io.Writer, ev evaluate.EventResult, opts Options) {
	in := ev.Inputs
	est := ev.Estimate
	fmt.Fprintf(w, "\n## %s\n\n", ev.DisplayName)
	fmt.Fprintf(w, "Rating %.0f, arena %s seats, PPV %dh, %s commentators (%s), %d camera(s) (%s)\n",
		in.EventRating, Count(float64(in.ArenaSize)), in.PPVLengthHours, ev.Commentator, Money(in.CommentatorCost), ev.Cameras, Money(in.CameraCost))

	fmt.Fprintf(w, "\n### Recommended spending\n\n")
	fmt.Fprintf(w, "- Recommended ad spending: %s\n", Money(est.RecommendedAdSpending))
	fmt.Fprintf(w, "- Recommended production spending: %s\n", Money(est.RecommendedProductionSpending))

	fmt.Fprintf(w, "\n### Revenue breakdown\n\n")
	fmt.Fprintf(w, "- Tickets sold: %s\n", Count(est.TicketsSold))
	fmt.Fprintf(w, "- Ticket revenue: %s\n", Money(est.TicketRevenue))
	fmt.Fprintf(w, "- Merchandising revenue: %s\n", Money(est.MerchandisingRevenue))
	fmt.Fprintf(w, "- Food & drink revenue: %s\n", Money(est.FoodDrinkRevenue))
	fmt.Fprintf(w, "- PPV purchases: %s\n", Count(est.PPVPurchases))
	fmt.Fprintf(w, "- PPV revenue: %s\n", Money(est.PPVRevenue))
	fmt.Fprintf(w, "- Total revenue: %s\n", Money(est.TotalRevenue))

	fmt.Fprintf(w, "\n### Profit calculation\n\n")
	fmt.Fprintf(w, "- Total costs: %s\n", Money(est.TotalCosts))
	fmt.Fprintf(w, "- PPV profit contribution: %s\n", Money(est.PPVProfitContribution))
	fmt.Fprintf(w, "- Profit: %s\n", Money(est.Profit))

	if opts.Explain && ev.Explain != nil {
		fmt.Fprintf(w, "\n### How computed\n\n")
		for _, formula := range ev.Explain.Formulas {
			fmt.Fprintf(w, "- `%s`\n", formula)
		}
		for _, note := range ev.Explain.Notes {
			fmt.Fprintf(w, "- %s\n", note)
		}
	}
}
