package monitoring

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"github.com/bayneri/boxoffice/internal/estimate"
	"github.com/bayneri/boxoffice/internal/evaluate"
	"google.golang.org/genproto/googleapis/api/label"
	metricpb "google.golang.org/genproto/googleapis/api/metric"
	monitoredres "google.golang.org/genproto/googleapis/api/monitoredres"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const DefaultPrefix = "custom.googleapis.com/boxoffice"

const (
	unitMoney = "{USD}"
	unitCount = "1"
)

type Figure struct {
	Name        string
	DisplayName string
	Unit        string
	Value       func(estimate.Result) float64
}

var figures = []Figure{
	{"recommended_ad_spending", "Recommended ad spending", unitMoney, func(r estimate.Result) float64 { return r.RecommendedAdSpending }},
	{"recommended_production_spending", "Recommended production spending", unitMoney, func(r estimate.Result) float64 { return r.RecommendedProductionSpending }},
	{"tickets_sold", "Tickets sold", unitCount, func(r estimate.Result) float64 { return r.TicketsSold }},
	{"ticket_revenue", "Ticket revenue", unitMoney, func(r estimate.Result) float64 { return r.TicketRevenue }},
	{"merchandising_revenue", "Merchandising revenue", unitMoney, func(r estimate.Result) float64 { return r.MerchandisingRevenue }},
	{"food_drink_revenue", "Food & drink revenue", unitMoney, func(r estimate.Result) float64 { return r.FoodDrinkRevenue }},
	{"ppv_purchases", "PPV purchases", unitCount, func(r estimate.Result) float64 { return r.PPVPurchases }},
	{"ppv_revenue", "PPV revenue (gross)", unitMoney, func(r estimate.Result) float64 { return r.PPVRevenue }},
	{"ppv_profit_contribution", "PPV profit contribution", unitMoney, func(r estimate.Result) float64 { return r.PPVProfitContribution }},
	{"total_revenue", "Total revenue", unitMoney, func(r estimate.Result) float64 { return r.TotalRevenue }},
	{"total_costs", "Total costs", unitMoney, func(r estimate.Result) float64 { return r.TotalCosts }},
	{"profit", "Profit", unitMoney, func(r estimate.Result) float64 { return r.Profit }},
}

func Figures() []Figure {
	return append([]Figure(nil), figures...)
}

var seriesLabels = []*label.LabelDescriptor{
	{Key: "scenario", ValueType: label.LabelDescriptor_STRING, Description: "Scenario ID"},
	{Key: "event", ValueType: label.LabelDescriptor_STRING, Description: "Event ID"},
	{Key: "status", ValueType: label.LabelDescriptor_STRING, Description: "profit or loss"},
}

func MetricType(prefix, name string) string {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(prefix, "/"), name)
}

func BuildDescriptors(project, prefix string) []*metricpb.MetricDescriptor {
	var out []*metricpb.MetricDescriptor
	for _, f := range figures {
		metricType := MetricType(prefix, f.Name)
		out = append(out, &metricpb.MetricDescriptor{
			Name:        fmt.Sprintf("projects/%s/metricDescriptors/%s", project, metricType),
			Type:        metricType,
			MetricKind:  metricpb.MetricDescriptor_GAUGE,
			ValueType:   metricpb.MetricDescriptor_DOUBLE,
			Unit:        f.Unit,
			DisplayName: f.DisplayName,
			Description: fmt.Sprintf("boxoffice estimate: %s", strings.ToLower(f.DisplayName)),
			Labels:      seriesLabels,
		})
	}
	return out
}

func BuildTimeSeries(project, prefix string, result evaluate.Result, at time.Time) []*monitoringpb.TimeSeries {
	var out []*monitoringpb.TimeSeries
	for _, ev := range result.Events {
		for _, f := range figures {
			out = append(out, &monitoringpb.TimeSeries{
				Metric: &metricpb.Metric{
					Type: MetricType(prefix, f.Name),
					Labels: map[string]string{
						"scenario": result.ScenarioID,
						"event":    ev.ID,
						"status":   ev.Status,
					},
				},
				Resource: &monitoredres.MonitoredResource{
					Type:   "global",
					Labels: map[string]string{"project_id": project},
				},
				MetricKind: metricpb.MetricDescriptor_GAUGE,
				ValueType:  metricpb.MetricDescriptor_DOUBLE,
				Points: []*monitoringpb.Point{{
					Interval: &monitoringpb.TimeInterval{EndTime: timestamppb.New(at)},
					Value: &monitoringpb.TypedValue{
						Value: &monitoringpb.TypedValue_DoubleValue{DoubleValue: f.Value(ev.Estimate)},
					},
				}},
			})
		}
	}
	return out
}
