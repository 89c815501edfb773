package article

import "gorm.io/gorm"

// Section groups lectures within an article. It only exists as part of its
// parent article and is removed with it.
type Section struct {
	gorm.Model
	ArticleID    uint   `gorm:"index;not null" json:"article_id"`
	Title        string `gorm:"not null" json:"title"`
	Slug         string `json:"slug"`
	Description  string `gorm:"type:text" json:"description"`
	FeatureImage string `json:"feature_image"`
	OrderIndex   int    `gorm:"default:0" json:"order_index"`
	IsPublished  bool   `gorm:"default:false" json:"is_published"`
	IsDeleted    bool   `gorm:"default:false" json:"-"`

	// Relations
	Lectures []Lecture `gorm:"foreignKey:SectionID" json:"lectures,omitempty"`
}

func (Section) TableName() string {
	return "article_sections"
}
