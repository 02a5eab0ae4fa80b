package estimate

import "math"

const (
	adScale     = 1745787.68
	adRateCoef  = 0.00125
	adIntercept = 2452.16

	ticketRatingCoef = 22.31
	ticketProdCoef   = -0.00014
	ticketArenaCoef  = -0.04
	ticketIntercept  = 1216.66

	ppvRatingCoef = 1420.70
	ppvAdCoef     = -0.90
	ppvIntercept  = 157501.78

	ppvLengthLinear    = 0.2
	ppvLengthQuadratic = -0.05
)

func AdSpending(rating float64) float64 {
	return adScale*math.Log(adRateCoef*rating+1) + adIntercept
}

func ProductionSpending(perSeatRate, perSeatCap float64, arenaSize int) float64 {
	return math.Min(perSeatRate, perSeatCap) * float64(arenaSize)
}

func TicketsSold(rating, productionSpending float64, arenaSize int) float64 {
	return clampTickets(ticketsLinear(rating, productionSpending, arenaSize), arenaSize)
}

func ticketsLinear(rating, productionSpending float64, arenaSize int) float64 {
	return ticketRatingCoef*rating + ticketProdCoef*productionSpending + ticketArenaCoef*float64(arenaSize) + ticketIntercept
}

func clampTickets(value float64, arenaSize int) float64 {
	upper := math.Max(0, float64(arenaSize))
	return math.Max(0, math.Min(upper, value))
}

func PerTicketRevenue(ticketsSold, rate float64) float64 {
	return ticketsSold * rate
}

func PPVLengthMultiplier(hours int) float64 {
	h := float64(hours)
	return math.Max(0, 1+ppvLengthLinear*h+ppvLengthQuadratic*h*h)
}

// PPVPurchases is zero for a zero-length broadcast; the formula is not.
func PPVPurchases(rating, adSpending float64, hours int) float64 {
	if hours == 0 {
		return 0
	}
	return math.Max(0, ppvBaseLinear(rating, adSpending)) * PPVLengthMultiplier(hours)
}

func ppvBaseLinear(rating, adSpending float64) float64 {
	return ppvRatingCoef*rating + ppvAdCoef*adSpending + ppvIntercept
}

func PPVRevenue(purchases, price float64) float64 {
	return purchases * price
}

func PPVProfitContribution(revenue, fraction float64) float64 {
	return revenue * fraction
}
