package batterm

// Opt holds an optional value. The zero value is absent.
type Opt[T comparable] struct {
	v  T
	ok bool
}

func Some[T comparable](v T) Opt[T] {
	return Opt[T]{v: v, ok: true}
}

func None[T comparable]() Opt[T] {
	return Opt[T]{}
}

func (o Opt[T]) Get() (T, bool) {
	return o.v, o.ok
}

func (o Opt[T]) IsSome() bool {
	return o.ok
}

// Or returns o if it is present, else other.
func (o Opt[T]) Or(other Opt[T]) Opt[T] {
	if o.ok {
		return o
	}
	return other
}

// ValueOr returns the held value or def.
func (o Opt[T]) ValueOr(def T) T {
	if o.ok {
		return o.v
	}
	return def
}
