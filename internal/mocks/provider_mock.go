package mocks

import (
	"context"

	"userapp/internal/identity"

	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock type for the identity.Provider type
type MockProvider struct {
	mock.Mock
}

// SignUp provides a mock function with given fields: ctx, creds
func (_m *MockProvider) SignUp(ctx context.Context, creds identity.Credentials) error {
	ret := _m.Called(ctx, creds)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, identity.Credentials) error); ok {
		r0 = rf(ctx, creds)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Authenticate provides a mock function with given fields: ctx, creds
func (_m *MockProvider) Authenticate(ctx context.Context, creds identity.Credentials) (*identity.Tokens, error) {
	ret := _m.Called(ctx, creds)

	var r0 *identity.Tokens
	if rf, ok := ret.Get(0).(func(context.Context, identity.Credentials) *identity.Tokens); ok {
		r0 = rf(ctx, creds)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*identity.Tokens)
	}

	return r0, ret.Error(1)
}

// NewMockProvider creates a new instance of MockProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProvider {
	m := &MockProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ identity.Provider = (*MockProvider)(nil)
