package main

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"

	"booklike/internal/book"
	"booklike/internal/source"
)

// Outline renders the pair and page structure of a book as a tree
func Outline(b *source.Book) string {
	tree := treeprint.NewWithRoot(b.Title)
	pages, pairs := book.Pair(b.Pages)
	for i, pair := range pairs {
		branch := tree.AddBranch(fmt.Sprintf("pair %d", i+1))
		for _, id := range pair {
			p := pages[id]
			if p.Blank {
				branch.AddNode("(blank)")
				continue
			}
			var tags []string
			if p.ActionID != "" {
				tags = append(tags, "action="+p.ActionID)
			}
			if p.Animated {
				tags = append(tags, "animated")
			}
			label := fmt.Sprintf("%d. %s", int(id)+1, p.Title)
			if len(tags) > 0 {
				branch.AddMetaNode(strings.Join(tags, " "), label)
				continue
			}
			branch.AddNode(label)
		}
	}
	return tree.String()
}
