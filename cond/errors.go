package cond

import "github.com/xilinx/vai-q-common/log"

var (
	// ErrNotCallable is returned by 'SmartCond' when either branch is <nil>.
	ErrNotCallable = &log.TaggedError{Kind: log.ErrType, Msg: "branch must be callable"}

	// ErrInvalidPredicate is returned by 'SmartCond' when the predicate is <nil> or has no tensor.
	ErrInvalidPredicate = &log.TaggedError{Kind: log.ErrType, Msg: "pred must be a Bool, Static or Variable with a tensor"}

	// ErrNoExecutor is returned when a predicate must be resolved at run time but no executor was provided.
	ErrNoExecutor = &log.TaggedError{Kind: log.ErrRuntime, Msg: "no executor available for dynamic conditional"}
)
