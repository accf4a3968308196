package input

// BookState is the part of the navigation engine input handling reads
type BookState interface {
	Current() int
	PairCount() int
	InfoVisible() bool
	Inert() bool
}

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Book BookState
}

// CurrentPair returns the index of the pair on display
func (c *ModelContext) CurrentPair() int {
	return c.Book.Current()
}

// PairCount returns the number of pairs in the book
func (c *ModelContext) PairCount() int {
	return c.Book.PairCount()
}

// InfoVisible reports whether the info panel is open
func (c *ModelContext) InfoVisible() bool {
	return c.Book.InfoVisible()
}

// Turning reports whether a page turn is in progress
func (c *ModelContext) Turning() bool {
	return c.Book.Inert()
}
