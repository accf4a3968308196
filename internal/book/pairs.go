package book

import "booklike/internal/domain"

// Pair numbers the pages in order and groups them two by two. An odd page
// count gets a blank page appended so every pair is complete.
func Pair(pages []domain.Page) ([]domain.Page, []domain.PagePair) {
	out := make([]domain.Page, len(pages), len(pages)+1)
	copy(out, pages)
	if len(out)%2 == 1 {
		out = append(out, domain.Page{Blank: true})
	}
	for i := range out {
		out[i].ID = domain.PageID(i)
	}

	pairs := make([]domain.PagePair, 0, len(out)/2)
	for i := 0; i+1 < len(out); i += 2 {
		pairs = append(pairs, domain.PagePair{out[i].ID, out[i+1].ID})
	}
	return out, pairs
}
