package domain

// PageID identifies a page by its position in the book, blank filler included
type PageID int

// NoPage marks the absence of a page
const NoPage PageID = -1

// Page represents one renderable surface of the book
type Page struct {
	ID       PageID
	Title    string
	Body     string
	ActionID string // key used to attach an actions hook ("" if none)
	Animated bool   // page carries an animation slot
	Blank    bool   // synthesized filler for an odd page count
}

// PagePair holds the pages shown together, even slot first
type PagePair [2]PageID

// Slot is one of the two fixed display positions
type Slot int

const (
	SlotEven Slot = iota // left in landscape, top in portrait
	SlotOdd              // right in landscape, bottom in portrait
)

// Other returns the opposite slot
func (s Slot) Other() Slot {
	return 1 - s
}

func (s Slot) String() string {
	if s == SlotOdd {
		return "odd"
	}
	return "even"
}
