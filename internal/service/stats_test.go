// internal/service/stats_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloglist/internal/domain"
)

func blog(author string, likes int) domain.Blog {
	return domain.Blog{Author: author, Likes: likes}
}

func TestTotalLikes(t *testing.T) {
	t.Run("EmptyList", func(t *testing.T) {
		assert.Equal(t, 0, TotalLikes(nil))
	})

	t.Run("SingleBlog", func(t *testing.T) {
		assert.Equal(t, 5, TotalLikes([]domain.Blog{blog("A", 5)}))
	})

	t.Run("SumOfAll", func(t *testing.T) {
		blogs := []domain.Blog{blog("A", 7), blog("B", 5), blog("C", 12)}
		assert.Equal(t, 24, TotalLikes(blogs))
	})
}

func TestFavoriteBlog(t *testing.T) {
	t.Run("EmptyList", func(t *testing.T) {
		assert.Nil(t, FavoriteBlog(nil))
	})

	t.Run("MaxLikesWins", func(t *testing.T) {
		blogs := []domain.Blog{blog("A", 5), blog("B", 12), blog("C", 5)}
		fav := FavoriteBlog(blogs)
		require.NotNil(t, fav)
		assert.Equal(t, 12, fav.Likes)
		assert.Equal(t, "B", fav.Author)
	})

	t.Run("FirstOfEqualLikesWins", func(t *testing.T) {
		blogs := []domain.Blog{blog("first", 5), blog("second", 5)}
		fav := FavoriteBlog(blogs)
		require.NotNil(t, fav)
		assert.Equal(t, "first", fav.Author)
	})
}

func TestMostBlogs(t *testing.T) {
	t.Run("EmptyList", func(t *testing.T) {
		assert.Nil(t, MostBlogs(nil))
	})

	t.Run("HighestCountWins", func(t *testing.T) {
		blogs := []domain.Blog{
			blog("A", 1), blog("B", 1), blog("A", 1),
			blog("B", 1), blog("B", 1), blog("C", 1),
		}
		most := MostBlogs(blogs)
		require.NotNil(t, most)
		assert.Equal(t, "B", most.Author)
		assert.Equal(t, 3, most.Blogs)
	})

	t.Run("FirstSeenAuthorWinsTies", func(t *testing.T) {
		// A and B both have two blogs; A was encountered first.
		blogs := []domain.Blog{blog("A", 1), blog("B", 1), blog("B", 1), blog("A", 1)}
		most := MostBlogs(blogs)
		require.NotNil(t, most)
		assert.Equal(t, "A", most.Author)
		assert.Equal(t, 2, most.Blogs)
	})
}

func TestMostLikes(t *testing.T) {
	t.Run("EmptyList", func(t *testing.T) {
		assert.Nil(t, MostLikes(nil))
	})

	t.Run("HighestLikeSumWins", func(t *testing.T) {
		blogs := []domain.Blog{blog("A", 10), blog("B", 7), blog("A", 5)}
		most := MostLikes(blogs)
		require.NotNil(t, most)
		assert.Equal(t, "A", most.Author)
		assert.Equal(t, 15, most.Likes)
	})

	t.Run("FirstSeenAuthorWinsTies", func(t *testing.T) {
		blogs := []domain.Blog{blog("B", 7), blog("A", 3), blog("A", 4)}
		most := MostLikes(blogs)
		require.NotNil(t, most)
		assert.Equal(t, "B", most.Author)
		assert.Equal(t, 7, most.Likes)
	})

	t.Run("CaseSensitiveAuthors", func(t *testing.T) {
		blogs := []domain.Blog{blog("alice", 3), blog("Alice", 5)}
		most := MostLikes(blogs)
		require.NotNil(t, most)
		assert.Equal(t, "Alice", most.Author)
		assert.Equal(t, 5, most.Likes)
	})
}
