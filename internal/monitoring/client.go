package monitoring

import (
	"context"

	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	metricpb "google.golang.org/genproto/googleapis/api/metric"
)

type Client interface {
	EnsureDescriptor(ctx context.Context, project string, desc *metricpb.MetricDescriptor) error
	WriteTimeSeries(ctx context.Context, project string, series []*monitoringpb.TimeSeries) error
}
