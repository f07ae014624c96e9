package client

import (
	"strings"

	"campusnet/internal/models"
)

// Search filters the cached feed by a case-insensitive substring match
// over content, username, university and tags. It never calls the API.
func Search(posts []models.PostView, query string) []models.PostView {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return posts
	}

	matched := make([]models.PostView, 0)
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Content), query) ||
			strings.Contains(strings.ToLower(p.Username), query) ||
			strings.Contains(strings.ToLower(p.University), query) ||
			tagMatches(p.Tags, query) {
			matched = append(matched, p)
		}
	}
	return matched
}

func tagMatches(tags []string, query string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

// Feed categories.
const (
	CategoryAll       = "tous"
	CategoryQuestions = "questions"
	CategoryResources = "ressources"
)

var questionMarkers = []string{"qui a", "comment", "pourquoi"}
var resourceMarkers = []string{"ressource", "polycopié", "cours", "document"}

// FilterCategory keeps the posts matching a feed category. Unknown
// categories (and "tous") return the list unchanged.
func FilterCategory(posts []models.PostView, category string) []models.PostView {
	switch category {
	case CategoryQuestions:
		return filter(posts, isQuestion)
	case CategoryResources:
		return filter(posts, isResource)
	default:
		return posts
	}
}

func filter(posts []models.PostView, keep func(models.PostView) bool) []models.PostView {
	matched := make([]models.PostView, 0)
	for _, p := range posts {
		if keep(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

func isQuestion(p models.PostView) bool {
	content := strings.ToLower(p.Content)
	if strings.Contains(content, "?") {
		return true
	}
	for _, marker := range questionMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return hasTag(p.Tags, "question")
}

func isResource(p models.PostView) bool {
	content := strings.ToLower(p.Content)
	for _, marker := range resourceMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return hasTag(p.Tags, "ressources")
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
