package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lt1hs/d-bms/internal/catalog"
	"github.com/lt1hs/d-bms/internal/config"
	"github.com/lt1hs/d-bms/internal/models"
	"github.com/lt1hs/d-bms/internal/service"
	"github.com/rs/zerolog"
)

// BookHandler handles publication endpoints
type BookHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *BookHandler {
	return &BookHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "book").Logger(),
	}
}

// List handles GET /v1/books
// Anonymous callers get the visibility-filtered, field-redacted view;
// authenticated callers get full records including hidden ones.
func (h *BookHandler) List(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.RequestTimeout)
	defer cancel()

	viewer := currentUser(c)
	query := catalog.Query{
		View:   c.Query("category"),
		Status: c.DefaultQuery("status", catalog.StatusAll),
		Search: c.Query("q"),
		Field:  catalog.SearchField(c.DefaultQuery("field", string(catalog.FieldAll))),
	}

	books, err := h.services.Catalog.ListBooks(ctx, viewer, query)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if viewer == nil {
		c.JSON(http.StatusOK, catalog.RedactAll(books))
		return
	}
	c.JSON(http.StatusOK, books)
}

// Get handles GET /v1/books/:id
func (h *BookHandler) Get(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.RequestTimeout)
	defer cancel()

	viewer := currentUser(c)
	book, err := h.services.Catalog.GetBook(ctx, viewer, c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if viewer == nil {
		c.JSON(http.StatusOK, catalog.Redact(book))
		return
	}
	c.JSON(http.StatusOK, book)
}

// Create handles POST /v1/books (requires canAdd)
func (h *BookHandler) Create(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.RequestTimeout)
	defer cancel()

	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.services.Catalog.CreateBook(ctx, currentUser(c), &book)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/books/:id (requires canEdit, or canHide for a
// pure visibility toggle)
func (h *BookHandler) Update(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.RequestTimeout)
	defer cancel()

	var book models.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.services.Catalog.UpdateBook(ctx, currentUser(c), c.Param("id"), &book)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/books/:id (requires canDelete)
func (h *BookHandler) Delete(c *gin.Context) {
	ctx, cancel := contextWithTimeout(c, h.cfg.Server.RequestTimeout)
	defer cancel()

	if err := h.services.Catalog.DeleteBook(ctx, currentUser(c), c.Param("id")); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
