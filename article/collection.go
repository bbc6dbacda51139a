package article

import "sort"

// Collection is a sorted, read-only sequence of articles.
type Collection struct {
	items []Article
	order Order
}

// Sort returns a Collection holding copies of articles ordered by creation
// time. Articles created at the same instant are ordered by ID so that the
// result does not depend on the input order.
func Sort(articles []Article, order Order) Collection {
	items := make([]Article, len(articles))
	for i := range articles {
		items[i] = articles[i].clone()
	}
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.Created.Equal(b.Created) {
			if order == Ascending {
				return a.Created.Before(b.Created)
			}
			return a.Created.After(b.Created)
		}
		return a.ID < b.ID
	})
	return Collection{items: items, order: order}
}

// Len returns the number of articles in the collection.
func (c Collection) Len() int {
	return len(c.items)
}

// Order returns the order the collection was sorted with.
func (c Collection) Order() Order {
	return c.order
}

// Articles returns a copy of the sorted articles.
func (c Collection) Articles() []Article {
	r := make([]Article, len(c.items))
	for i := range c.items {
		r[i] = c.items[i].clone()
	}
	return r
}

// Index returns the position of the article with the given ID, or -1.
func (c Collection) Index(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Next returns the article immediately after id in the collection.
// It reports false when id is last or not present.
func (c Collection) Next(id string) (Article, bool) {
	return c.at(c.Index(id), 1)
}

// Prev returns the article immediately before id in the collection.
// It reports false when id is first or not present.
func (c Collection) Prev(id string) (Article, bool) {
	return c.at(c.Index(id), -1)
}

func (c Collection) at(i, offset int) (Article, bool) {
	if i < 0 {
		return Article{}, false
	}
	j := i + offset
	if j < 0 || j >= len(c.items) {
		return Article{}, false
	}
	return c.items[j].clone(), true
}
