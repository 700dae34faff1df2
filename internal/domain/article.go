package domain

import "time"

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

type Publication struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	DisplayName string    `db:"display_name" json:"display_name"`
	Description *string   `db:"description" json:"description"`
	CoverImage  *string   `db:"cover_image" json:"cover_image"`
	Status      Status    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Category is scoped to a publication. Name is the stable key ("in-focus").
type Category struct {
	ID            int64  `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	DisplayName   string `db:"display_name" json:"display_name"`
	PublicationID *int64 `db:"publication_id" json:"publication_id"`
	Status        Status `db:"status" json:"status"`
}

// Magazine is a periodical issue. Legacy issues may have no period.
type Magazine struct {
	ID            int64   `db:"id" json:"id"`
	Title         string  `db:"title" json:"title"`
	Language      string  `db:"language" json:"language"`
	Direction     string  `db:"direction" json:"direction"`
	Status        Status  `db:"status" json:"status"`
	CoverImage    *string `db:"cover_image" json:"cover_image"`
	DocURL        *string `db:"doc_url" json:"doc_url"`
	PublicationID *int64  `db:"publication_id" json:"publication_id"`
	Year          *int    `db:"year" json:"year"`
	Month         *string `db:"month" json:"month"`
}

// Article belongs to at most one publication, category, author and magazine.
// PublishDateYear and PublishDateMonth mirror PublishDate and are only
// written together with it.
type Article struct {
	ID               int64      `db:"id" json:"id"`
	Title            string     `db:"title" json:"title"`
	Description      *string    `db:"description" json:"description"`
	CoverImage       *string    `db:"cover_image" json:"cover_image"`
	AuthorID         *int64     `db:"author_id" json:"author_id"`
	PublicationID    *int64     `db:"publication_id" json:"publication_id"`
	CategoryID       *int64     `db:"category_id" json:"category_id"`
	MagazineID       *int64     `db:"magazine_id" json:"magazine_id"`
	PublishDate      *time.Time `db:"publish_date" json:"publish_date"`
	PublishDateYear  *int       `db:"publish_date_year" json:"publish_date_year"`
	PublishDateMonth *int       `db:"publish_date_month" json:"publish_date_month"`
	Status           Status     `db:"status" json:"status"`
}

// MagazineArticleCount pairs an issue with its number of Active articles.
type MagazineArticleCount struct {
	Magazine
	ArticleCount int `db:"article_count" json:"article_count"`
}
