// Package mocks provides a go.uber.org/mock double for the four
// fallible resource decision callbacks (delete_resource, process_post,
// create_path, process_put), so decision-graph tests can assert exact call
// sequences without standing up a real resource. The double is written by
// hand in the shape of mockgen output.
package mocks

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	webmachine "github.com/gofrack/webmachine/webmachine"
)

// DecisionCallbacks is the interface boundary mocked below; a Resource
// wires its four fallible fields to a value satisfying this interface
// during tests.
type DecisionCallbacks interface {
	DeleteResource(ctx *webmachine.Context) (bool, error)
	ProcessPost(ctx *webmachine.Context) (bool, error)
	ProcessPut(ctx *webmachine.Context) (bool, error)
	CreatePath(ctx *webmachine.Context) (string, error)
}

// MockDecisionCallbacks is a mock of DecisionCallbacks.
type MockDecisionCallbacks struct {
	ctrl     *gomock.Controller
	recorder *MockDecisionCallbacksMockRecorder
}

// MockDecisionCallbacksMockRecorder is the mock recorder for MockDecisionCallbacks.
type MockDecisionCallbacksMockRecorder struct {
	mock *MockDecisionCallbacks
}

// NewMockDecisionCallbacks creates a new mock instance.
func NewMockDecisionCallbacks(ctrl *gomock.Controller) *MockDecisionCallbacks {
	mock := &MockDecisionCallbacks{ctrl: ctrl}
	mock.recorder = &MockDecisionCallbacksMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockDecisionCallbacks) EXPECT() *MockDecisionCallbacksMockRecorder {
	return m.recorder
}

// DeleteResource mocks base method.
func (m *MockDecisionCallbacks) DeleteResource(ctx *webmachine.Context) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteResource", ctx)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteResource indicates an expected call of DeleteResource.
func (mr *MockDecisionCallbacksMockRecorder) DeleteResource(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteResource", reflect.TypeOf((*MockDecisionCallbacks)(nil).DeleteResource), ctx)
}

// ProcessPost mocks base method.
func (m *MockDecisionCallbacks) ProcessPost(ctx *webmachine.Context) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProcessPost", ctx)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProcessPost indicates an expected call of ProcessPost.
func (mr *MockDecisionCallbacksMockRecorder) ProcessPost(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProcessPost", reflect.TypeOf((*MockDecisionCallbacks)(nil).ProcessPost), ctx)
}

// ProcessPut mocks base method.
func (m *MockDecisionCallbacks) ProcessPut(ctx *webmachine.Context) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProcessPut", ctx)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ProcessPut indicates an expected call of ProcessPut.
func (mr *MockDecisionCallbacksMockRecorder) ProcessPut(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProcessPut", reflect.TypeOf((*MockDecisionCallbacks)(nil).ProcessPut), ctx)
}

// CreatePath mocks base method.
func (m *MockDecisionCallbacks) CreatePath(ctx *webmachine.Context) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreatePath", ctx)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreatePath indicates an expected call of CreatePath.
func (mr *MockDecisionCallbacksMockRecorder) CreatePath(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreatePath", reflect.TypeOf((*MockDecisionCallbacks)(nil).CreatePath), ctx)
}
