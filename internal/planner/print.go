package planner

import (
	"fmt"
	"io"
	"strings"
)

func Render(w io.Writer, plan Plan) {
	fmt.Fprintf(w, "Scenario: %s\n", plan.Scenario)
	fmt.Fprintf(w, "Labels: %s\n", strings.Join(SortedLabels(plan.Labels), ", "))
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Events:")
	for _, ev := range plan.Events {
		p := ev.Params
		fmt.Fprintf(w, "- %s (rating %.0f, arena %d, PPV %dh, commentator %s, %d camera(s))\n",
			ev.ID, p.EventRating, p.ArenaSize, p.PPVLengthHours, ev.Commentator, ev.Cameras)
	}
}
