package cond

import "github.com/stretchr/testify/mock"

// mockExecutor is a mock implementation of 'Executor'.
type mockExecutor struct {
	mock.Mock
}

func (m *mockExecutor) Cond(pred Tensor, trueFn, falseFn Func, name string) (any, error) {
	args := m.Called(pred, trueFn, falseFn, name)
	return args.Get(0), args.Error(1)
}

// fakeTensor is a tensor with a configurable static value.
type fakeTensor struct {
	name  string
	value bool
	known bool
}

func (f *fakeTensor) Name() string { return f.name }

func (f *fakeTensor) ConstantValue() (bool, bool) { return f.value, f.known }

// branches returns a pair of branch functions which count how many times they've been called.
func branches() (Func, Func, *int, *int) {
	var trueCalls, falseCalls int

	trueFn := func() (any, error) {
		trueCalls++
		return "true", nil
	}

	falseFn := func() (any, error) {
		falseCalls++
		return "false", nil
	}

	return trueFn, falseFn, &trueCalls, &falseCalls
}
