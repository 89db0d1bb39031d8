package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kalakritam/kalakritam-api/internal/helpers"
	"github.com/kalakritam/kalakritam-api/internal/models"
)

type BlogRequest struct {
	Title       string            `json:"title" binding:"required"`
	Content     string            `json:"content"`
	Excerpt     string            `json:"excerpt"`
	Author      string            `json:"author"`
	Category    string            `json:"category"`
	Tags        []string          `json:"tags"`
	ImageURL    string            `json:"image_url"`
	IsPublished bool              `json:"is_published"`
	IsFeatured  bool              `json:"is_featured"`
	ReadTime    string            `json:"read_time"`
	SEO         *models.SEOFields `json:"seo"`
}

func (req *BlogRequest) seoFields() models.SEOFields {
	if req.SEO == nil {
		description := req.Excerpt
		if description == "" {
			description = req.Content
		}
		return helpers.GenerateSEOFields(helpers.SEOTypeBlog, helpers.SEOInput{
			Title:       req.Title,
			Description: description,
			Category:    req.Category,
			Image:       req.ImageURL,
		})
	}
	seo := *req.SEO
	if seo.Slug == "" {
		seo.Slug = helpers.GenerateSlug(req.Title)
	}
	return seo
}

// readTime estimates reading time from the content word count when the
// request leaves it blank.
func (req *BlogRequest) readTime() string {
	if req.ReadTime != "" {
		return req.ReadTime
	}
	words := len(strings.Fields(req.Content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// ListBlogs serves the public blog index: published posts only.
func ListBlogs(c *gin.Context) {
	listBlogs(c, true)
}

// AdminListBlogs includes drafts.
func AdminListBlogs(c *gin.Context) {
	listBlogs(c, false)
}

func listBlogs(c *gin.Context, publishedOnly bool) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	page, limit, err := helpers.ParsePagination(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page or limit.")
		return
	}

	query := gormDB.Model(&models.Blog{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		query = query.Where("is_featured = ?", true)
	}

	var totalCount int64
	query.Count(&totalCount)

	var blogs []models.Blog
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&blogs).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving blogs.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs":       blogs,
		"total":       totalCount,
		"page":        page,
		"limit":       limit,
		"total_pages": (totalCount + int64(limit) - 1) / int64(limit),
	})
}

func GetBlog(c *gin.Context) {
	blogID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var blog models.Blog
	if err := gormDB.Where("id = ?", blogID).First(&blog).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Blog not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving blog.")
		return
	}

	c.JSON(http.StatusOK, blog)
}

func CreateBlog(c *gin.Context) {
	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	blog := models.Blog{
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Author:      req.Author,
		Category:    req.Category,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
		IsFeatured:  req.IsFeatured,
		ReadTime:    req.readTime(),
		SEOFields:   req.seoFields(),
	}

	if err := gormDB.Create(&blog).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create blog.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Blog created successfully.",
		"blog":    blog,
	})
}

func UpdateBlog(c *gin.Context) {
	blogID := c.Param("id")

	var req BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var blog models.Blog
	if err := gormDB.Where("id = ?", blogID).First(&blog).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Blog not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding blog.")
		return
	}

	blog.Title = req.Title
	blog.Content = req.Content
	blog.Excerpt = req.Excerpt
	blog.Author = req.Author
	blog.Category = req.Category
	blog.Tags = req.Tags
	blog.ImageURL = req.ImageURL
	blog.IsPublished = req.IsPublished
	blog.IsFeatured = req.IsFeatured
	blog.ReadTime = req.readTime()
	blog.SEOFields = req.seoFields()

	if err := gormDB.Save(&blog).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update blog.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Blog updated successfully.",
		"blog":    blog,
	})
}

func DeleteBlog(c *gin.Context) {
	blogID := c.Param("id")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB).WithContext(c.Request.Context())

	var blog models.Blog
	if err := gormDB.Where("id = ?", blogID).First(&blog).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Blog not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding blog.")
		return
	}

	if err := gormDB.Delete(&blog).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete blog.")
		return
	}

	if err := helpers.DeleteFile(blog.ImageURL); err != nil {
		fmt.Printf("Error deleting blog image: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Blog deleted successfully.",
	})
}
