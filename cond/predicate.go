package cond

// Tensor is a framework-managed value participating in a computation graph, only the parts needed to dispatch a
// conditional are required.
type Tensor interface {
	// Name returns the graph name of the tensor, it's only used for diagnostics.
	Name() string

	// ConstantValue returns the boolean value of the tensor if it's known without executing the graph; the second
	// return value is false when the value is only known at run time.
	ConstantValue() (bool, bool)
}

// Predicate is the condition passed to 'SmartCond'. The set of predicates is closed, it's one of 'Bool', 'Static' or
// 'Variable'.
type Predicate interface {
	isPredicate()
}

// Bool is a literal predicate, it's always statically known.
type Bool bool

// Static is a predicate backed by a tensor whose value may be resolvable before the graph executes e.g. the output of
// a constant op.
type Static struct {
	Tensor Tensor
}

// Variable is a predicate backed by a mutable framework-managed scalar; its value may change between executions so
// it's never resolved statically.
type Variable struct {
	Tensor Tensor
}

func (Bool) isPredicate()     {}
func (Static) isPredicate()   {}
func (Variable) isPredicate() {}
