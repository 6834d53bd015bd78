package ecs

// Commands provides a buffer for deferred ECS operations that are executed at the end of a frame.
// This prevents structural changes to the ECS storage during system execution.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	defers  []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues a function to run after spawns and deletes have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Pending returns the number of queued operations.
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.deletes) + len(c.defers)
}

// Flush applies deletes, then spawns, then deferred functions, and resets the buffer.
// Deferred functions may queue further commands; those run in the same flush.
func (c *Commands) Flush(storage *Storage) {
	for c.Pending() > 0 {
		deletes, spawns, defers := c.deletes, c.spawns, c.defers
		c.deletes, c.spawns, c.defers = nil, nil, nil

		for _, id := range deletes {
			storage.Delete(id)
		}

		for _, components := range spawns {
			storage.Spawn(components...)
		}

		for _, fn := range defers {
			fn()
		}
	}
}
