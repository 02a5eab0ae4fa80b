package monitoring

import (
	"context"
	"fmt"

	monitoring "cloud.google.com/go/monitoring/apiv3/v2"
	"cloud.google.com/go/monitoring/apiv3/v2/monitoringpb"
	"google.golang.org/api/option"
	metricpb "google.golang.org/genproto/googleapis/api/metric"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type GCPClient struct {
	metricClient *monitoring.MetricClient
}

func NewGCPClient(ctx context.Context, opts ...option.ClientOption) (*GCPClient, error) {
	metricClient, err := monitoring.NewMetricClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create metric client: %w", err)
	}
	return &GCPClient{metricClient: metricClient}, nil
}

func (c *GCPClient) Close() error {
	if err := c.metricClient.Close(); err != nil {
		return fmt.Errorf("close metric client: %w", err)
	}
	return nil
}

func (c *GCPClient) EnsureDescriptor(ctx context.Context, project string, desc *metricpb.MetricDescriptor) error {
	_, err := c.metricClient.CreateMetricDescriptor(ctx, &monitoringpb.CreateMetricDescriptorRequest{
		Name:             fmt.Sprintf("projects/%s", project),
		MetricDescriptor: desc,
	})
	return ignoreAlreadyExists(err)
}

func (c *GCPClient) WriteTimeSeries(ctx context.Context, project string, series []*monitoringpb.TimeSeries) error {
	return c.metricClient.CreateTimeSeries(ctx, &monitoringpb.CreateTimeSeriesRequest{
		Name:       fmt.Sprintf("projects/%s", project),
		TimeSeries: series,
	})
}

func ignoreAlreadyExists(err error) error {
	if err == nil || status.Code(err) == codes.AlreadyExists {
		return nil
	}
	return err
}
