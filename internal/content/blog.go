package content

import (
	"strings"

	pkgerrors "github.com/amborella-organics/storefront-backend/pkg/errors"
)

// Blog exposes read-only lookups over the static marketing posts.
type Blog struct {
	posts []Post
}

func NewBlog() *Blog {
	return &Blog{posts: posts}
}

// List returns the posts, newest first, optionally filtered by category.
func (b *Blog) List(category string) []Post {
	category = strings.ToLower(strings.TrimSpace(category))

	results := make([]Post, 0, len(b.posts))
	for _, post := range b.posts {
		if category != "" && strings.ToLower(post.Category) != category {
			continue
		}
		results = append(results, post)
	}
	return results
}

// BySlug returns the post with the given slug.
func (b *Blog) BySlug(slug string) (*Post, error) {
	for i := range b.posts {
		if b.posts[i].Slug == slug {
			post := b.posts[i]
			return &post, nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "post not found").
		WithDetails(map[string]any{"slug": slug})
}

// Featured returns the posts highlighted on the blog landing page.
func (b *Blog) Featured() []Post {
	results := make([]Post, 0, len(b.posts))
	for _, post := range b.posts {
		if post.Featured {
			results = append(results, post)
		}
	}
	return results
}
