package estimate

type Policy struct {
	PerSeatRate       float64
	PerSeatCap        float64
	TicketPrice       float64
	MerchPerTicket    float64
	FoodPerTicket     float64
	PPVPrice          float64
	PPVProfitFraction float64
}

func DefaultPolicy() Policy {
	return Policy{
		PerSeatRate:       4.37,
		PerSeatCap:        4.37,
		TicketPrice:       75,
		MerchPerTicket:    15,
		FoodPerTicket:     20,
		PPVPrice:          35,
		PPVProfitFraction: 0.5,
	}
}
