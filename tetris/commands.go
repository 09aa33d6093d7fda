package tetris

// Commands buffers intents received between updates so they can be applied
// in arrival order at the start of the next frame.
type Commands struct {
	intents []Intent
}

// Push queues an intent.
func (c *Commands) Push(i Intent) {
	c.intents = append(c.intents, i)
}

// Len returns the number of queued intents.
func (c *Commands) Len() int {
	return len(c.intents)
}

// Flush hands every queued intent to apply in order and resets the buffer.
// Intents pushed by apply are handled in the same flush.
func (c *Commands) Flush(apply func(Intent)) {
	for i := 0; i < len(c.intents); i++ {
		apply(c.intents[i])
	}
	c.intents = c.intents[:0]
}
