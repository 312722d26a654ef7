package category

import (
	"strings"

	"github.com/fekuna/omnipos-storefront/internal/model"
)

type node struct {
	id       string
	name     string
	children []node
}

// Hierarchy is the static parent -> children category table.
type Hierarchy struct {
	roots  []node
	parent map[string]string
}

// Default is the storefront's category table.
var Default = newHierarchy([]node{
	{id: "electronics", name: "Electronics", children: []node{
		{id: "smartphones", name: "Smartphones"},
		{id: "laptops", name: "Laptops"},
		{id: "audio", name: "Audio"},
	}},
	{id: "fashion", name: "Fashion", children: []node{
		{id: "men", name: "Men"},
		{id: "women", name: "Women"},
		{id: "kids", name: "Kids"},
	}},
	{id: "home", name: "Home & Living", children: []node{
		{id: "furniture", name: "Furniture"},
		{id: "kitchen", name: "Kitchen"},
		{id: "decor", name: "Decor"},
	}},
	{id: "food", name: "Food & Beverages"},
	{id: "books", name: "Books & Stationery"},
	{id: "toys", name: "Toys & Games"},
	{id: "baby", name: "Baby & Kids"},
	{id: "automotive", name: "Automotive"},
	{id: "other", name: "Other"},
})

func newHierarchy(roots []node) *Hierarchy {
	h := &Hierarchy{roots: roots, parent: map[string]string{}}
	var walk func(parent string, nodes []node)
	walk = func(parent string, nodes []node) {
		for _, n := range nodes {
			if parent != "" {
				h.parent[n.id] = parent
			}
			walk(n.id, n.children)
		}
	}
	walk("", roots)
	return h
}

// key resolves either an id or a display name to an id.
func (h *Hierarchy) key(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var found string
	var walk func(nodes []node)
	walk = func(nodes []node) {
		for _, n := range nodes {
			if found != "" {
				return
			}
			if n.id == s || strings.ToLower(n.name) == s {
				found = n.id
				return
			}
			walk(n.children)
		}
	}
	walk(h.roots)
	if found == "" {
		return s
	}
	return found
}

// IsParentOf reports whether parent is a registered ancestor of child.
func (h *Hierarchy) IsParentOf(parent, child string) bool {
	p := h.key(parent)
	for c := h.key(child); ; {
		up, ok := h.parent[c]
		if !ok {
			return false
		}
		if up == p {
			return true
		}
		c = up
	}
}

// Tree returns the hierarchy as nested categories.
func (h *Hierarchy) Tree() []model.Category {
	return toModels(h.roots, nil)
}

func (h *Hierarchy) Find(id string) (model.Category, bool) {
	k := h.key(id)
	var out model.Category
	var ok bool
	var walk func(nodes []node, parent *string)
	walk = func(nodes []node, parent *string) {
		for i, n := range nodes {
			if ok {
				return
			}
			if n.id == k {
				out, ok = toModel(n, parent, i), true
				return
			}
			pid := n.id
			walk(n.children, &pid)
		}
	}
	walk(h.roots, nil)
	return out, ok
}

func toModels(nodes []node, parent *string) []model.Category {
	out := make([]model.Category, 0, len(nodes))
	for i, n := range nodes {
		out = append(out, toModel(n, parent, i))
	}
	return out
}

func toModel(n node, parent *string, order int) model.Category {
	c := model.Category{ID: n.id, ParentID: parent, Name: n.name, SortOrder: order}
	if len(n.children) > 0 {
		pid := n.id
		c.Children = toModels(n.children, &pid)
	}
	return c
}
