package data

import "sync"

// MemoizingFactory produces a value for each distinct parameter at most once, and returns the
// same value on every later request. It is safe for concurrent use; concurrent first requests for
// the same parameter may both call the factory, but only the first result is kept.
type MemoizingFactory[ParamT comparable, ResultT any] struct {
	factoryFn func(ParamT) ResultT
	cache     map[ParamT]ResultT
	lock      sync.Mutex
}

func NewMemoizingFactory[ParamT comparable, ResultT any](
	factoryFn func(ParamT) ResultT,
) *MemoizingFactory[ParamT, ResultT] {
	return &MemoizingFactory[ParamT, ResultT]{factoryFn: factoryFn}
}

func (f *MemoizingFactory[P, R]) GetOrCreate(param P) R {
	if item, ok := f.Get(param); ok {
		return item
	}
	item := f.factoryFn(param)
	f.lock.Lock()
	defer f.lock.Unlock()
	if existing, ok := f.cache[param]; ok {
		return existing
	}
	if f.cache == nil {
		f.cache = make(map[P]R)
	}
	f.cache[param] = item
	return item
}

func (f *MemoizingFactory[P, R]) Get(param P) (R, bool) {
	f.lock.Lock()
	defer f.lock.Unlock()
	item, ok := f.cache[param]
	return item, ok
}
