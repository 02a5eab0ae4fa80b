package estimate

import "fmt"

func Compute(p EventParameters) Result {
	return ComputeWithPolicy(p, DefaultPolicy())
}

func ComputeWithPolicy(p EventParameters, policy Policy) Result {
	ad := AdSpending(p.EventRating)
	prod := ProductionSpending(policy.PerSeatRate, policy.PerSeatCap, p.ArenaSize)

	tickets := TicketsSold(p.EventRating, prod, p.ArenaSize)
	ticketRevenue := PerTicketRevenue(tickets, policy.TicketPrice)
	merch := PerTicketRevenue(tickets, policy.MerchPerTicket)
	food := PerTicketRevenue(tickets, policy.FoodPerTicket)

	purchases := PPVPurchases(p.EventRating, ad, p.PPVLengthHours)
	ppvRevenue := PPVRevenue(purchases, policy.PPVPrice)
	ppvContribution := PPVProfitContribution(ppvRevenue, policy.PPVProfitFraction)

	totalCosts := ad + prod + p.CommentatorCost + p.CameraCost

	return Result{
		RecommendedAdSpending:         ad,
		RecommendedProductionSpending: prod,
		TicketsSold:                   tickets,
		TicketRevenue:                 ticketRevenue,
		MerchandisingRevenue:          merch,
		FoodDrinkRevenue:              food,
		PPVPurchases:                  purchases,
		PPVRevenue:                    ppvRevenue,
		PPVProfitContribution:         ppvContribution,
		TotalRevenue:                  ticketRevenue + merch + food + ppvRevenue,
		TotalCosts:                    totalCosts,
		Profit:                        ticketRevenue + merch + food + ppvContribution - totalCosts,
	}
}

func Breakdown(p EventParameters, r Result) []Component {
	return []Component{
		{Group: GroupRevenue, Label: "Tickets", Value: r.TicketRevenue},
		{Group: GroupRevenue, Label: "Merch", Value: r.MerchandisingRevenue},
		{Group: GroupRevenue, Label: "Food & Drink", Value: r.FoodDrinkRevenue},
		{Group: GroupRevenue, Label: "PPV", Value: r.PPVRevenue},
		{Group: GroupCost, Label: "Ad Spending", Value: r.RecommendedAdSpending},
		{Group: GroupCost, Label: "Production Spending", Value: r.RecommendedProductionSpending},
		{Group: GroupCost, Label: "Commentators", Value: p.CommentatorCost},
		{Group: GroupCost, Label: "Cameras", Value: p.CameraCost},
	}
}

func Notes(p EventParameters) []string {
	return NotesWithPolicy(p, DefaultPolicy())
}

func NotesWithPolicy(p EventParameters, policy Policy) []string {
	var notes []string
	if policy.PerSeatRate > policy.PerSeatCap {
		notes = append(notes, fmt.Sprintf("per-seat production rate capped at %.2f", policy.PerSeatCap))
	}
	prod := ProductionSpending(policy.PerSeatRate, policy.PerSeatCap, p.ArenaSize)
	raw := ticketsLinear(p.EventRating, prod, p.ArenaSize)
	switch {
	case raw < 0:
		notes = append(notes, "tickets sold clamped to 0")
	case raw > float64(p.ArenaSize):
		notes = append(notes, fmt.Sprintf("tickets sold clamped to arena size %d", p.ArenaSize))
	}
	if p.PPVLengthHours == 0 {
		notes = append(notes, "PPV length is 0; no PPV is broadcast")
		return notes
	}
	if ppvBaseLinear(p.EventRating, AdSpending(p.EventRating)) < 0 {
		notes = append(notes, "PPV base purchases floored at 0")
	}
	if PPVLengthMultiplier(p.PPVLengthHours) == 0 {
		notes = append(notes, "PPV length multiplier floored at 0")
	}
	return notes
}

func Formulas() []string {
	return []string{
		"adSpending = 1745787.68 * ln(0.00125 * rating + 1) + 2452.16",
		"productionSpending = min(perSeatRate, 4.37) * arenaSize",
		"ticketsSold = clamp(22.31 * rating - 0.00014 * productionSpending - 0.04 * arenaSize + 1216.66, 0, arenaSize)",
		"ticketRevenue = ticketsSold * 75; merch = ticketsSold * 15; foodDrink = ticketsSold * 20",
		"ppvPurchases = max(0, 1420.70 * rating - 0.90 * adSpending + 157501.78) * max(0, 1 + 0.2h - 0.05h^2); 0 when h = 0",
		"ppvRevenue = ppvPurchases * 35; ppvProfitContribution = ppvRevenue * 0.5",
		"totalRevenue = tickets + merch + foodDrink + ppvRevenue",
		"totalCosts = adSpending + productionSpending + commentatorCost + cameraCost",
		"profit = tickets + merch + foodDrink + ppvProfitContribution - totalCosts",
	}
}
