// Package estimate holds the closed-form event finance model.
package estimate

type EventParameters struct {
	EventRating     float64 `json:"eventRating"`
	ArenaSize       int     `json:"arenaSize"`
	PPVLengthHours  int     `json:"ppvLengthHours"`
	CommentatorCost float64 `json:"commentatorCost"`
	CameraCost      float64 `json:"cameraCost"`

	AdBudget   *float64 `json:"adBudget,omitempty"`
	ProdBudget *float64 `json:"prodBudget,omitempty"`
}

type Result struct {
	RecommendedAdSpending         float64 `json:"recommendedAdSpending"`
	RecommendedProductionSpending float64 `json:"recommendedProductionSpending"`
	TicketsSold                   float64 `json:"ticketsSold"`
	TicketRevenue                 float64 `json:"ticketRevenue"`
	MerchandisingRevenue          float64 `json:"merchandisingRevenue"`
	FoodDrinkRevenue              float64 `json:"foodDrinkRevenue"`
	PPVPurchases                  float64 `json:"ppvPurchases"`
	PPVRevenue                    float64 `json:"ppvRevenue"`
	PPVProfitContribution         float64 `json:"ppvProfitContribution"`
	TotalRevenue                  float64 `json:"totalRevenue"`
	TotalCosts                    float64 `json:"totalCosts"`
	Profit                        float64 `json:"profit"`
}

type Component struct {
	Group string  `json:"group"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

const (
	GroupRevenue = "revenue"
	GroupCost    = "cost"
)

const (
	CameraUnitCost = 10000
	MinCameras     = 1
	MaxCameras     = 10
	MaxEventRating = 1000
	MaxPPVLength   = 3
)

var CommentatorCosts = []float64{10000, 50000, 100000}

func CameraCostFor(cameras int) float64 {
	return float64(cameras) * CameraUnitCost
}
