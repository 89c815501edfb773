package article

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ArticleStatus enum values
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"
	StatusScheduled = "SCHEDULED"
)

// wordsPerMinute is the reading speed used for the read-time estimate
const wordsPerMinute = 200

var (
	ErrArchived       = errors.New("article is archived")
	ErrScheduleNotSet = errors.New("scheduled time is required")
	ErrSchedulePassed = errors.New("scheduled time must be in the future")
)

// Article is a publishable content unit owning an ordered list of sections
type Article struct {
	gorm.Model
	Title        string `gorm:"not null" json:"title"`
	Slug         string `gorm:"uniqueIndex;not null" json:"slug"`
	Subtitle     string `json:"subtitle"`
	Excerpt      string `gorm:"type:text" json:"excerpt"`
	Body         string `gorm:"type:text" json:"body"`
	FeatureImage string `json:"feature_image"`

	Tags       datatypes.JSON `json:"tags"`
	CategoryID *uint          `gorm:"index" json:"category_id"`
	AuthorID   uint           `gorm:"index;not null" json:"author_id"`

	Status       string     `gorm:"type:varchar(20);default:'DRAFT';index" json:"status"`
	PublishedAt  *time.Time `json:"published_at"`
	ScheduledFor *time.Time `json:"scheduled_for"`

	ViewCount    uint `gorm:"default:0" json:"view_count"`
	LikeCount    uint `gorm:"default:0" json:"like_count"`
	ShareCount   uint `gorm:"default:0" json:"share_count"`
	CommentCount uint `gorm:"default:0" json:"comment_count"`

	SeoTitle       string         `json:"seo_title"`
	SeoDescription string         `json:"seo_description"`
	SeoKeywords    datatypes.JSON `json:"seo_keywords"`

	ReadTime   int  `gorm:"default:0" json:"read_time"` // minutes, derived from lecture content
	IsFeatured bool `gorm:"default:false" json:"is_featured"`
	IsPinned   bool `gorm:"default:false" json:"is_pinned"`
	IsDeleted  bool `gorm:"default:false" json:"-"`

	// Relations
	Sections []Section `gorm:"foreignKey:ArticleID" json:"sections,omitempty"`
}

func (Article) TableName() string {
	return "articles"
}

// Publish moves the article to PUBLISHED. PublishedAt is set once and never
// changed by later calls, so publishing twice is a no-op.
func (a *Article) Publish(at time.Time) error {
	if a.Status == StatusArchived {
		return ErrArchived
	}
	a.Status = StatusPublished
	a.ScheduledFor = nil
	if a.PublishedAt == nil {
		a.PublishedAt = &at
	}
	return nil
}

// Unpublish moves the article back to DRAFT. PublishedAt is preserved as history.
func (a *Article) Unpublish() error {
	if a.Status == StatusArchived {
		return ErrArchived
	}
	a.Status = StatusDraft
	a.ScheduledFor = nil
	return nil
}

// Archive is terminal; reachable from any state
func (a *Article) Archive() {
	a.Status = StatusArchived
	a.ScheduledFor = nil
}

// Schedule holds the article until `at`, when the scheduler promotes it
func (a *Article) Schedule(at time.Time, now time.Time) error {
	if a.Status == StatusArchived {
		return ErrArchived
	}
	if at.IsZero() {
		return ErrScheduleNotSet
	}
	if !at.After(now) {
		return ErrSchedulePassed
	}
	a.Status = StatusScheduled
	a.ScheduledFor = &at
	return nil
}

// RecalcReadTime recomputes the derived read time from all lecture content.
// Called on every save that touches the article tree.
func (a *Article) RecalcReadTime() {
	total := 0
	for i := range a.Sections {
		for j := range a.Sections[i].Lectures {
			total += WordCount(a.Sections[i].Lectures[j].Content)
		}
	}
	a.ReadTime = ReadTimeMinutes(total)
}

// ReadTimeMinutes converts a word count to whole minutes, rounding up
func ReadTimeMinutes(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
