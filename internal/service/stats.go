// internal/service/stats.go
package service

import "bloglist/internal/domain"

// BlogStats bundles the aggregate statistics exposed by the stats endpoint.
type BlogStats struct {
	TotalLikes   int          `json:"total_likes"`
	FavoriteBlog *domain.Blog `json:"favorite_blog"`
	MostBlogs    *AuthorBlogs `json:"most_blogs"`
	MostLikes    *AuthorLikes `json:"most_likes"`
}

// AuthorBlogs names an author together with their blog count.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes names an author together with their accumulated likes.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes returns the sum of likes over all blogs; 0 for empty input.
func TotalLikes(blogs []domain.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for empty input.
// Ties keep the first blog encountered in input order.
func FavoriteBlog(blogs []domain.Blog) *domain.Blog {
	if len(blogs) == 0 {
		return nil
	}
	favorite := &blogs[0]
	for i := 1; i < len(blogs); i++ {
		if blogs[i].Likes > favorite.Likes {
			favorite = &blogs[i]
		}
	}
	return favorite
}

// authorFold groups blogs by author in first-seen order and accumulates a
// per-author value. Scanning a slice instead of ranging over the map keeps
// the tie-break deterministic: only a strictly greater value takes the lead.
func authorFold(blogs []domain.Blog, value func(domain.Blog) int) (string, int, bool) {
	if len(blogs) == 0 {
		return "", 0, false
	}

	totals := make(map[string]int, len(blogs))
	var order []string
	for _, b := range blogs {
		if _, seen := totals[b.Author]; !seen {
			order = append(order, b.Author)
		}
		totals[b.Author] += value(b)
	}

	leader := order[0]
	for _, author := range order[1:] {
		if totals[author] > totals[leader] {
			leader = author
		}
	}
	return leader, totals[leader], true
}

// MostBlogs returns the author with the most blogs, or nil for empty input.
// Among authors with equal counts the one seen first in input order wins.
func MostBlogs(blogs []domain.Blog) *AuthorBlogs {
	author, count, ok := authorFold(blogs, func(domain.Blog) int { return 1 })
	if !ok {
		return nil
	}
	return &AuthorBlogs{Author: author, Blogs: count}
}

// MostLikes returns the author with the highest like sum, or nil for empty
// input, with the same first-seen tie-break as MostBlogs.
func MostLikes(blogs []domain.Blog) *AuthorLikes {
	author, likes, ok := authorFold(blogs, func(b domain.Blog) int { return b.Likes })
	if !ok {
		return nil
	}
	return &AuthorLikes{Author: author, Likes: likes}
}
