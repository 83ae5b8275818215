package content

import (
	"testing"

	pkgerrors "github.com/amborella-organics/storefront-backend/pkg/errors"
)

func TestListAllAndByCategory(t *testing.T) {
	t.Parallel()

	blog := NewBlog()

	if got := len(blog.List("")); got != len(posts) {
		t.Fatalf("expected all %d posts, got %d", len(posts), got)
	}

	gardening := blog.List("gardening")
	if len(gardening) != 2 {
		t.Fatalf("expected 2 gardening posts, got %d", len(gardening))
	}
	for _, post := range gardening {
		if post.Category != "Gardening" {
			t.Fatalf("unexpected category %q", post.Category)
		}
	}
}

func TestBySlug(t *testing.T) {
	t.Parallel()

	blog := NewBlog()

	post, err := blog.BySlug("why-biodegradable-sticks-matter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if post.ID != 4 {
		t.Fatalf("unexpected post %d", post.ID)
	}

	_, err = blog.BySlug("missing-post")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestFeatured(t *testing.T) {
	t.Parallel()

	featured := NewBlog().Featured()
	if len(featured) == 0 {
		t.Fatal("expected at least one featured post")
	}
	for _, post := range featured {
		if !post.Featured {
			t.Fatalf("%q is not featured", post.Slug)
		}
	}
}
