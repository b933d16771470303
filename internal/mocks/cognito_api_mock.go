package mocks

import (
	"context"

	"userapp/internal/identity"

	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/stretchr/testify/mock"
)

// MockCognitoAPI is a mock type for the identity.CognitoAPI type.
// Option functions are not recorded.
type MockCognitoAPI struct {
	mock.Mock
}

// SignUp provides a mock function with given fields: ctx, params
func (_m *MockCognitoAPI) SignUp(ctx context.Context, params *cip.SignUpInput, optFns ...func(*cip.Options)) (*cip.SignUpOutput, error) {
	ret := _m.Called(ctx, params)

	var r0 *cip.SignUpOutput
	if rf, ok := ret.Get(0).(func(context.Context, *cip.SignUpInput) *cip.SignUpOutput); ok {
		r0 = rf(ctx, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*cip.SignUpOutput)
	}

	return r0, ret.Error(1)
}

// InitiateAuth provides a mock function with given fields: ctx, params
func (_m *MockCognitoAPI) InitiateAuth(ctx context.Context, params *cip.InitiateAuthInput, optFns ...func(*cip.Options)) (*cip.InitiateAuthOutput, error) {
	ret := _m.Called(ctx, params)

	var r0 *cip.InitiateAuthOutput
	if rf, ok := ret.Get(0).(func(context.Context, *cip.InitiateAuthInput) *cip.InitiateAuthOutput); ok {
		r0 = rf(ctx, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*cip.InitiateAuthOutput)
	}

	return r0, ret.Error(1)
}

// AdminInitiateAuth provides a mock function with given fields: ctx, params
func (_m *MockCognitoAPI) AdminInitiateAuth(ctx context.Context, params *cip.AdminInitiateAuthInput, optFns ...func(*cip.Options)) (*cip.AdminInitiateAuthOutput, error) {
	ret := _m.Called(ctx, params)

	var r0 *cip.AdminInitiateAuthOutput
	if rf, ok := ret.Get(0).(func(context.Context, *cip.AdminInitiateAuthInput) *cip.AdminInitiateAuthOutput); ok {
		r0 = rf(ctx, params)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*cip.AdminInitiateAuthOutput)
	}

	return r0, ret.Error(1)
}

// NewMockCognitoAPI creates a new instance of MockCognitoAPI. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCognitoAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCognitoAPI {
	m := &MockCognitoAPI{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ identity.CognitoAPI = (*MockCognitoAPI)(nil)
