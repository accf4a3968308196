package source

import "booklike/internal/domain"

// Demo returns the built-in book shown when no manifest is given
func Demo() *Book {
	return &Book{
		Title: "booklike",
		Pages: []domain.Page{
			{Title: "booklike", Body: "A book in your terminal.\n\nTwo pages at a time, side by side when the\nwindow is wide and stacked when it is tall."},
			{Title: "Turning pages", Body: "Enter, l or the right arrow turn forward.\nBackspace, h or the left arrow turn back.\nHome and End jump to the covers."},
			{Title: "Holding a pager", Body: "Click a pager to turn one page.\nHold it for a second and a scrubber appears;\ndrag its thumb to skim through the book."},
			{Title: "A sweep", Body: "This page carries an animation.\nSpace plays or pauses it and the slider\nbelow scrubs through it.", ActionID: "sweep", Animated: true},
			{Title: "Three stages", Body: "An animation made of parts:\nfill, hold and drain.", ActionID: "stages", Animated: true},
			{Title: "Two at once", Body: "When both pages animate, Tab picks the\none Space controls.", ActionID: "sweep2", Animated: true},
			{Title: "Themes", Body: "t cycles the color themes.\nd toggles dark, w toggles high contrast."},
			{Title: "The end", Body: "Going further shows the info panel.\nq quits; your place is remembered."},
			{Title: "Colophon", Body: "Pages come from a TOML manifest:\n\n  [[page]]\n  title = \"...\"\n  body = \"...\""},
		},
	}
}
