// Package corpus assembles parsed posts into the identifier-keyed collection
// an external site generator consumes. The corpus itself is inert data:
// building it has no side effects and the result is safe for concurrent
// reads once construction finishes.
package corpus

import (
	"sort"

	"github.com/goliatone/go-corpus/internal/post"
)

// Corpus maps unique slugs to posts. Duplicate slugs resolve
// deterministically: the entry from the lexically smallest source path wins.
type Corpus struct {
	posts map[string]*post.Post
	paths map[string]string
}

// New returns an empty corpus.
func New() *Corpus {
	return &Corpus{
		posts: map[string]*post.Post{},
		paths: map[string]string{},
	}
}

// Len reports the number of posts held.
func (c *Corpus) Len() int {
	return len(c.posts)
}

// Get returns the post registered under slug.
func (c *Corpus) Get(slug string) (*post.Post, bool) {
	p, ok := c.posts[slug]
	return p, ok
}

// SourcePath returns the file path whose post currently owns slug.
func (c *Corpus) SourcePath(slug string) (string, bool) {
	path, ok := c.paths[slug]
	return path, ok
}

// Insert registers a post under its slug. When the slug is already taken the
// entry from the lexically smallest source path is kept; Insert reports
// whether the supplied post was accepted.
func (c *Corpus) Insert(sourcePath string, p *post.Post) bool {
	if p == nil {
		return false
	}
	if existing, ok := c.paths[p.Slug]; ok && existing <= sourcePath {
		return false
	}
	c.posts[p.Slug] = p
	c.paths[p.Slug] = sourcePath
	return true
}

// Slugs returns every registered slug in ascending order.
func (c *Corpus) Slugs() []string {
	slugs := make([]string, 0, len(c.posts))
	for slug := range c.posts {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// Posts returns every post ordered by date descending. Equal dates
// tie-break by slug ascending so the listing is stable across builds.
func (c *Corpus) Posts() []*post.Post {
	posts := make([]*post.Post, 0, len(c.posts))
	for _, p := range c.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Slug < posts[j].Slug
	})
	return posts
}
