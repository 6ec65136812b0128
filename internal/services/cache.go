package services

// cache memoizes lookups by ID while hydrating a listing.
type cache[T any] struct {
	load  func(id string) (T, error)
	items map[string]T
}

func newCache[T any](load func(id string) (T, error)) *cache[T] {
	return &cache[T]{load: load, items: map[string]T{}}
}

func (c *cache[T]) get(id string) (T, error) {
	if v, ok := c.items[id]; ok {
		return v, nil
	}
	v, err := c.load(id)
	if err != nil {
		return v, err
	}
	c.items[id] = v
	return v, nil
}
