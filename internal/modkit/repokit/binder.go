package repokit

// Binder attaches a repository to a Queryer, the pool or an open transaction
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc is a Binder from a function
type BindFunc[T any] func(Queryer) T

// Bind calls f
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind binds q, panicking when q is nil
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return b.Bind(q)
}
