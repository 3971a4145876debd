// Package mocks provides test doubles for the sheets client.
package mocks

import (
	"context"
	"testing"

	mock "github.com/stretchr/testify/mock"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// NewMockClient creates a new MockClient wired to the test's cleanup and
// assertion hooks.
func NewMockClient(t *testing.T) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// SheetTitles provides a mock function with given fields: ctx
func (_m *MockClient) SheetTitles(ctx context.Context) ([]string, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for SheetTitles")
	}

	var r0 []string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]string, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []string); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// AddSheet provides a mock function with given fields: ctx, title, rows, cols
func (_m *MockClient) AddSheet(ctx context.Context, title string, rows int64, cols int64) error {
	ret := _m.Called(ctx, title, rows, cols)

	if len(ret) == 0 {
		panic("no return value specified for AddSheet")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int64, int64) error); ok {
		r0 = rf(ctx, title, rows, cols)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ReadRange provides a mock function with given fields: ctx, rangeA1
func (_m *MockClient) ReadRange(ctx context.Context, rangeA1 string) ([][]string, error) {
	ret := _m.Called(ctx, rangeA1)

	if len(ret) == 0 {
		panic("no return value specified for ReadRange")
	}

	var r0 [][]string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([][]string, error)); ok {
		return rf(ctx, rangeA1)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) [][]string); ok {
		r0 = rf(ctx, rangeA1)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([][]string)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, rangeA1)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// AppendRow provides a mock function with given fields: ctx, rangeA1, row
func (_m *MockClient) AppendRow(ctx context.Context, rangeA1 string, row []string) error {
	ret := _m.Called(ctx, rangeA1, row)

	if len(ret) == 0 {
		panic("no return value specified for AppendRow")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []string) error); ok {
		r0 = rf(ctx, rangeA1, row)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
