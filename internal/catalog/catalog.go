// Package catalog holds the read-only resource library backing the download
// endpoints. The data ships with the binary; nothing here mutates after
// construction.
package catalog

import "strings"

// Resource describes one downloadable asset in the library.
type Resource struct {
	ID             string   `json:"id"`
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Category       string   `json:"category"`
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	Function       string   `json:"function"`
	Downloads      int      `json:"downloads"`
	Pages          int      `json:"pages"`
	Format         string   `json:"format"`
	FileSize       string   `json:"fileSize,omitempty"`
	FilePath       string   `json:"filePath"`
	Includes       []string `json:"includes,omitempty"`
	Tags           []string `json:"tags"`
	Featured       bool     `json:"featured,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
	TimeToComplete string   `json:"timeToComplete,omitempty"`
}

// Catalog indexes resources by id and slug.
type Catalog struct {
	all    []Resource
	byID   map[string]*Resource
	bySlug map[string]*Resource
}

// New builds a catalog over the provided resources.
func New(resources []Resource) *Catalog {
	c := &Catalog{
		all:    resources,
		byID:   make(map[string]*Resource, len(resources)),
		bySlug: make(map[string]*Resource, len(resources)),
	}
	for i := range resources {
		resource := &resources[i]
		c.byID[resource.ID] = resource
		c.bySlug[resource.Slug] = resource
	}
	return c
}

// Default returns the catalog over the built-in resource library.
func Default() *Catalog {
	return New(libraryResources)
}

// Lookup resolves a resource by id first, then by slug.
func (c *Catalog) Lookup(idOrSlug string) (Resource, bool) {
	key := strings.TrimSpace(idOrSlug)
	if resource, ok := c.byID[key]; ok {
		return *resource, true
	}
	if resource, ok := c.bySlug[key]; ok {
		return *resource, true
	}
	return Resource{}, false
}

// All returns every resource in library order.
func (c *Catalog) All() []Resource {
	out := make([]Resource, len(c.all))
	copy(out, c.all)
	return out
}

// Featured returns the resources highlighted on the home page.
func (c *Catalog) Featured() []Resource {
	var out []Resource
	for _, resource := range c.all {
		if resource.Featured {
			out = append(out, resource)
		}
	}
	return out
}
