package mocks

import (
	"context"

	"userapp/internal/metrics"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/stretchr/testify/mock"
)

// MockCloudWatchAPI is a mock type for the metrics.CloudWatchAPI type
type MockCloudWatchAPI struct {
	mock.Mock
}

// PutMetricData provides a mock function with given fields: ctx, params
func (_m *MockCloudWatchAPI) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	ret := _m.Called(ctx, params)

	var r0 *cloudwatch.PutMetricDataOutput
	if rf, ok := ret.Get(0).(func(context.Context, *cloudwatch.PutMetricDataInput) *cloudwatch.PutMetricDataOutput); ok {
		r0 = rf(ctx, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*cloudwatch.PutMetricDataOutput)
	}

	return r0, ret.Error(1)
}

// NewMockCloudWatchAPI creates a new instance of MockCloudWatchAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCloudWatchAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCloudWatchAPI {
	m := &MockCloudWatchAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ metrics.CloudWatchAPI = (*MockCloudWatchAPI)(nil)
