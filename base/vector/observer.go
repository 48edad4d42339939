package vector

// Observer is notified about storage events of a Vector.
type Observer interface {
	// Grown is called after the vector moved its elements to a new allocation.
	Grown(oldCap, newCap int)
}

// ObserverFunc is a convenience type for implementing Observer.
type ObserverFunc func(oldCap, newCap int)

// Grown implements Observer and calls fn.
func (fn ObserverFunc) Grown(oldCap, newCap int) {
	fn(oldCap, newCap)
}

// SetObserver attaches an observer to the vector. Pass nil to remove it.
// The observer stays with this vector instance; clones and moved-out vectors
// start without one.
func (v *Vector[T]) SetObserver(o Observer) {
	v.observer = o
}
