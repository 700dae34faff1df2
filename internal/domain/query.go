package domain

import (
	"time"

	"cms_backend/internal/pagination"
)

// ArticleFilter is the structured predicate set understood by the article store.
// Nil fields are not applied. Only Active articles are ever returned.
type ArticleFilter struct {
	PublicationID    *int64
	CategoryID       *int64
	MagazineID       *int64
	AuthorID         *int64
	Assigned         *bool
	PublishedFrom    *time.Time
	PublishedBefore  *time.Time
	PublishDateYear  *int
	PublishDateMonth *int
	Search           string
	ExcludeIDs       []int64
}

// ArticleQuery is a filtered-list request after parameter parsing.
type ArticleQuery struct {
	Publication  string
	MagazineID   *int64
	CategoryID   *int64
	CategoryName string
	AuthorID     *int64
	Month        *int
	Year         *int
	Search       string
	Count        *int
	Page         int
	PageSize     int
}

// AppliedFilters echoes the filters that shaped an article list.
type AppliedFilters struct {
	Publication *string `json:"publication"`
	MagazineID  *int64  `json:"magazine_id"`
	CategoryID  *int64  `json:"category_id"`
	Category    *string `json:"category"`
	AuthorID    *int64  `json:"author_id"`
	Month       *int    `json:"month"`
	Year        *int    `json:"year"`
	Count       *int    `json:"count"`
	Search      *string `json:"search"`
}

type ArticlePage struct {
	Articles   []Article
	Pagination pagination.Page
	Filters    AppliedFilters
}

// MagazineFilter narrows a magazine listing.
type MagazineFilter struct {
	PublicationID *int64
	Status        string
	Year          *int
	Month         string
	Language      string
}

type MagazineQuery struct {
	Publication string
	Status      string
	Year        *int
	Month       string
	Language    string
	Page        int
	PageSize    int
}

type MagazinePage struct {
	Magazines  []Magazine
	Pagination pagination.Page
	Filters    map[string]any
}

// AssignmentStats summarizes how many Active articles carry an issue.
type AssignmentStats struct {
	TotalArticles        int                    `json:"total_articles"`
	WithMagazine         int                    `json:"articles_with_magazines"`
	WithoutMagazine      int                    `json:"articles_without_magazines"`
	AssignmentPercentage float64                `json:"assignment_percentage"`
	Magazines            []MagazineArticleCount `json:"magazines"`
	RecentAssignments    []Article              `json:"recent_assignments"`
	LastRun              *ReconcileRun          `json:"last_run"`
}
