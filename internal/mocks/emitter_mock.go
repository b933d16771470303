package mocks

import (
	"context"

	"userapp/internal/metrics"

	"github.com/stretchr/testify/mock"
)

// MockEmitter is a mock type for the metrics.Emitter type
type MockEmitter struct {
	mock.Mock
}

// Emit provides a mock function with given fields: ctx, event
func (_m *MockEmitter) Emit(ctx context.Context, event metrics.Event) {
	_m.Called(ctx, event)
}

// NewMockEmitter creates a new instance of MockEmitter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockEmitter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEmitter {
	m := &MockEmitter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ metrics.Emitter = (*MockEmitter)(nil)
