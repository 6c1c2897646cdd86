// Package cond dispatches between two branches depending on whether a predicate is known statically or only when the
// computation graph executes.
package cond

import (
	"fmt"

	"github.com/xilinx/vai-q-common/log"
)

// Func is a branch of a conditional.
type Func func() (any, error)

// Executor is the graph-conditional primitive of the host framework. Both branches become part of the graph and the
// run time value of the predicate selects which output is used.
type Executor interface {
	Cond(pred Tensor, trueFn, falseFn Func, name string) (any, error)
}

// Dispatcher resolves predicates, calling a branch immediately where possible and deferring to its executor otherwise.
type Dispatcher struct {
	executor Executor
	logger   *log.Logger
}

// NewDispatcher returns a Dispatcher which defers dynamic predicates to the given executor.
//
// NOTE: A <nil> logger means the default logger is used.
func NewDispatcher(executor Executor, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}

	return &Dispatcher{executor: executor, logger: logger}
}

// SmartCond returns the result of 'trueFn' if the predicate is true, otherwise the result of 'falseFn'.
//
// A 'Variable' predicate is always deferred to the executor. 'Bool' predicates, and 'Static' predicates whose value is
// known, result in exactly one of the branches being called immediately; a 'Static' predicate whose value is not known
// is deferred to the executor. The name is passed to the executor as a prefix for the ops it creates.
func (d *Dispatcher) SmartCond(pred Predicate, trueFn, falseFn Func, name string) (any, error) {
	if trueFn == nil {
		return nil, fmt.Errorf("trueFn: %w", ErrNotCallable)
	}

	if falseFn == nil {
		return nil, fmt.Errorf("falseFn: %w", ErrNotCallable)
	}

	switch p := pred.(type) {
	case Bool:
		return choose(bool(p), trueFn, falseFn)
	case Static:
		if p.Tensor == nil {
			return nil, ErrInvalidPredicate
		}

		if value, ok := p.Tensor.ConstantValue(); ok {
			return choose(value, trueFn, falseFn)
		}

		return d.cond(p.Tensor, trueFn, falseFn, name)
	case Variable:
		if p.Tensor == nil {
			return nil, ErrInvalidPredicate
		}

		return d.cond(p.Tensor, trueFn, falseFn, name)
	}

	return nil, ErrInvalidPredicate
}

// cond defers to the executor building a graph-level conditional. An unresolvable log level is returned before the
// executor is called.
func (d *Dispatcher) cond(pred Tensor, trueFn, falseFn Func, name string) (any, error) {
	if d.executor == nil {
		return nil, fmt.Errorf("predicate '%s': %w", pred.Name(), ErrNoExecutor)
	}

	err := d.logger.Debugf("Deferring conditional on '%s' to the graph", pred.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to resolve log level: %w", err)
	}

	return d.executor.Cond(pred, trueFn, falseFn, name)
}

// choose calls the branch selected by the statically known value.
func choose(value bool, trueFn, falseFn Func) (any, error) {
	if value {
		return trueFn()
	}

	return falseFn()
}

// SmartCond is a convenience wrapper which dispatches using a Dispatcher backed by the default logger.
func SmartCond(executor Executor, pred Predicate, trueFn, falseFn Func, name string) (any, error) {
	return NewDispatcher(executor, nil).SmartCond(pred, trueFn, falseFn, name)
}
