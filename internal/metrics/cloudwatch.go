package metrics

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// CloudWatchAPI is the part of the CloudWatch client the emitter calls.
type CloudWatchAPI interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// CloudWatchEmitter publishes each event as one PutMetricData call.
type CloudWatchEmitter struct {
	client    CloudWatchAPI
	namespace string
	logger    *zap.Logger
	now       func() time.Time
}

var _ Emitter = (*CloudWatchEmitter)(nil)

func NewCloudWatchEmitter(client CloudWatchAPI, namespace string, logger *zap.Logger) *CloudWatchEmitter {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CloudWatchEmitter{
		client:    client,
		namespace: namespace,
		logger:    logger,
		now:       time.Now,
	}
}

func (e *CloudWatchEmitter) Emit(ctx context.Context, event Event) {
	namespace := event.Namespace
	if namespace == "" {
		namespace = e.namespace
	}
	unit := event.Unit
	if unit == "" {
		unit = DefaultUnit
	}

	datum := types.MetricDatum{
		MetricName: aws.String(event.Name),
		Value:      aws.Float64(event.Value),
		Unit:       types.StandardUnit(unit),
		Timestamp:  aws.Time(e.now()),
	}
	for _, d := range event.Dimensions {
		datum.Dimensions = append(datum.Dimensions, types.Dimension{
			Name:  aws.String(d.Name),
			Value: aws.String(d.Value),
		})
	}

	_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(namespace),
		MetricData: []types.MetricDatum{datum},
	})
	if err != nil {
		e.logger.Warn("Failed to emit metric",
			zap.String("namespace", namespace),
			zap.String("metric", event.Name),
			zap.Error(err),
		)
		return
	}
	e.logger.Debug("Metric emitted", zap.String("namespace", namespace), zap.String("metric", event.Name))
}
