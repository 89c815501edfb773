package article

import (
	"net/url"
	"strings"
	"time"

	"gorm.io/gorm"
)

// allowedVideoHosts are the hosting domains a lecture video may come from
var allowedVideoHosts = []string{
	"youtube.com",
	"youtu.be",
	"vimeo.com",
	"dailymotion.com",
	"wistia.com",
	"loom.com",
}

// Lecture is an individual content item inside a section
type Lecture struct {
	gorm.Model
	SectionID      uint      `gorm:"index;not null" json:"section_id"`
	ArticleID      uint      `gorm:"index;not null" json:"article_id"`
	Title          string    `gorm:"not null" json:"title"`
	Slug           string    `json:"slug"`
	Content        string    `gorm:"type:text" json:"content"`
	Excerpt        string    `gorm:"type:text" json:"excerpt"`
	VideoURL       string    `json:"video_url"`
	VideoThumbnail string    `json:"video_thumbnail"`
	Duration       int       `gorm:"default:0" json:"duration"` // minutes
	OrderIndex     int       `gorm:"default:0" json:"order_index"`
	IsPublished    bool      `gorm:"default:false" json:"is_published"`
	ViewCount      uint      `gorm:"default:0" json:"view_count"`
	Timestamp      time.Time `json:"timestamp"`
	IsDeleted      bool      `gorm:"default:false" json:"-"`
}

func (Lecture) TableName() string {
	return "article_lectures"
}

// WordCount counts whitespace-separated words in lecture content
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// IsAllowedVideoURL reports whether the URL points at a known video host.
// An empty URL is fine, the lecture just has no video.
func IsAllowedVideoURL(raw string) bool {
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")
	for _, allowed := range allowedVideoHosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}
