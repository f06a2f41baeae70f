// Package memory implementa los puertos de persistencia en memoria.
// Se usa con STORAGE_DRIVER=memory (desarrollo local) y como doble en los tests.
package memory

import "sync"

// DB almacén en memoria compartido por los repositorios. Seguro para uso concurrente.
type DB struct {
	mu sync.RWMutex

	candy  *collection[candyRecord]
	orders *collection[orderRecord]
	stores *collection[storeRecord]
	users  *collection[userRecord]
}

// NewDB crea un almacén vacío.
func NewDB() *DB {
	return &DB{
		candy:  newCollection[candyRecord](),
		orders: newCollection[orderRecord](),
		stores: newCollection[storeRecord](),
		users:  newCollection[userRecord](),
	}
}

// collection conserva el orden de inserción para que Find sea determinista.
type collection[T any] struct {
	ids   []string
	items map[string]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.items[id]
	return v, ok
}

func (c *collection[T]) insert(id string, v T) {
	if _, ok := c.items[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.items[id] = v
}

func (c *collection[T]) replace(id string, v T) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	c.items[id] = v
	return true
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, v := range c.ids {
		if v == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) each(fn func(T)) {
	for _, id := range c.ids {
		fn(c.items[id])
	}
}
