package articleValidator

import (
	"antuf/middleware"
	"antuf/models/article"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type LecturePayload struct {
	Title          string `json:"title"`
	Slug           string `json:"slug"`
	Content        string `json:"content"`
	Excerpt        string `json:"excerpt"`
	VideoURL       string `json:"video_url"`
	VideoThumbnail string `json:"video_thumbnail"`
	Duration       int    `json:"duration"`
	OrderIndex     int    `json:"order_index"`
	IsPublished    bool   `json:"is_published"`
}

type SectionPayload struct {
	Title        string           `json:"title"`
	Slug         string           `json:"slug"`
	Description  string           `json:"description"`
	FeatureImage string           `json:"feature_image"`
	OrderIndex   int              `json:"order_index"`
	IsPublished  bool             `json:"is_published"`
	Lectures     []LecturePayload `json:"lectures"`
}

type CreateArticleRequest struct {
	Title          string           `json:"title"`
	Slug           string           `json:"slug"`
	Subtitle       string           `json:"subtitle"`
	Excerpt        string           `json:"excerpt"`
	Body           string           `json:"body"`
	FeatureImage   string           `json:"feature_image"`
	Tags           []string         `json:"tags"`
	CategoryID     *uint            `json:"category_id"`
	SeoTitle       string           `json:"seo_title"`
	SeoDescription string           `json:"seo_description"`
	SeoKeywords    []string         `json:"seo_keywords"`
	IsFeatured     bool             `json:"is_featured"`
	IsPinned       bool             `json:"is_pinned"`
	Sections       []SectionPayload `json:"sections"`
}

type UpdateArticleRequest struct {
	Title          string   `json:"title"`
	Subtitle       string   `json:"subtitle"`
	Excerpt        string   `json:"excerpt"`
	Body           string   `json:"body"`
	FeatureImage   string   `json:"feature_image"`
	Tags           []string `json:"tags"`
	CategoryID     *uint    `json:"category_id"`
	SeoTitle       string   `json:"seo_title"`
	SeoDescription string   `json:"seo_description"`
	SeoKeywords    []string `json:"seo_keywords"`
	IsFeatured     *bool    `json:"is_featured"`
	IsPinned       *bool    `json:"is_pinned"`
}

type ScheduleArticleRequest struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

type ListArticlesRequest struct {
	Page     *int    `query:"page"`
	Limit    *int    `query:"limit"`
	Status   *string `query:"status"`
	Category *uint   `query:"category"`
	Search   *string `query:"search"`
}

// validateSections checks nested section/lecture payloads, prefixing error
// keys with their position so the admin form can point at the right row
func validateSections(sections []SectionPayload, errors map[string]string) {
	for i, section := range sections {
		if strings.TrimSpace(section.Title) == "" {
			errors[fmt.Sprintf("sections.%d.title", i)] = "Section title is required!"
		}
		for j, lecture := range section.Lectures {
			if strings.TrimSpace(lecture.Title) == "" {
				errors[fmt.Sprintf("sections.%d.lectures.%d.title", i, j)] = "Lecture title is required!"
			}
			if lecture.Duration < 0 {
				errors[fmt.Sprintf("sections.%d.lectures.%d.duration", i, j)] = "Duration cannot be negative!"
			}
			if !article.IsAllowedVideoURL(lecture.VideoURL) {
				errors[fmt.Sprintf("sections.%d.lectures.%d.video_url", i, j)] = "Video URL must be from a supported video host!"
			}
		}
	}
}

func CreateArticle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateArticleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		slug := strings.TrimSpace(reqData.Slug)
		if slug == "" {
			errors["slug"] = "Slug is required!"
		} else if len(slug) < 3 {
			errors["slug"] = "Slug must be at least 3 characters long!"
		} else if !slugPattern.MatchString(slug) {
			errors["slug"] = "Slug may only contain lowercase letters, numbers and dashes!"
		}

		validateSections(reqData.Sections, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedArticle", reqData)
		return c.Next()
	}
}

func UpdateArticle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseArticleID(c); err != nil {
			return err
		}

		reqData := new(UpdateArticleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != "" && len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedArticleUpdate", reqData)
		return c.Next()
	}
}

func ScheduleArticle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseArticleID(c); err != nil {
			return err
		}

		reqData := new(ScheduleArticleRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ScheduledFor.IsZero() {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"scheduled_for": "Scheduled time is required!",
			})
		}

		c.Locals("validatedSchedule", reqData)
		return c.Next()
	}
}

func ArticleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseArticleID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

func ListArticles() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListArticlesRequest)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseArticleID(c); err != nil {
			return err
		}

		reqData := new(SectionPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validateSections([]SectionPayload{*reqData}, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseArticleID(c); err != nil {
			return err
		}
		sectionID, err := c.ParamsInt("section_id")
		if err != nil || sectionID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
		}
		c.Locals("sectionID", sectionID)

		reqData := new(SectionPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		validateSections([]SectionPayload{*reqData}, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

func SectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseArticleID(c); err != nil {
			return err
		}
		sectionID, err := c.ParamsInt("section_id")
		if err != nil || sectionID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
		}
		c.Locals("sectionID", sectionID)
		return c.Next()
	}
}

func parseArticleID(c *fiber.Ctx) error {
	articleID, err := c.ParamsInt("id")
	if err != nil || articleID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid article id!", nil)
	}
	c.Locals("articleID", articleID)
	return nil
}
