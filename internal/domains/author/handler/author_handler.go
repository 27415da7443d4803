package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"book-management-backend/internal/domains/author/model"
	"book-management-backend/internal/domains/author/service"
	"book-management-backend/internal/shared/apierror"
	"book-management-backend/internal/shared/httpbind"
	"book-management-backend/internal/shared/response"
)

// AuthorHandler handles HTTP requests for the author domain.
type AuthorHandler struct {
	service   service.Service
	responder *response.Responder
}

func NewAuthorHandler(service service.Service, responder *response.Responder) *AuthorHandler {
	return &AuthorHandler{service: service, responder: responder}
}

// CreateAuthor handles POST /authors.
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.Error(c, httpbind.ClassifyBindError(err))
		return
	}

	if err := req.Validate(); err != nil {
		h.responder.Error(c, apierror.New(apierror.InvalidInput, err.Error()))
		return
	}

	result, err := h.service.CreateAuthor(c.Request.Context(), &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetAuthorList handles GET /authors.
func (h *AuthorHandler) GetAuthorList(c *gin.Context) {
	pageSize, err := queryInt(c, "pageSize", 30)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	pageNum, err := queryInt(c, "pageNum", 0)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	authors, svcErr := h.service.GetAuthorList(c.Request.Context(), pageSize, pageNum)
	if svcErr != nil {
		h.responder.Error(c, svcErr)
		return
	}

	items := make([]model.AuthorListItem, 0, len(authors))
	for i := range authors {
		items = append(items, authors[i].ToListItem())
	}

	c.JSON(http.StatusOK, items)
}

// GetAuthorDetail handles GET /authors/:id.
func (h *AuthorHandler) GetAuthorDetail(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	author, svcErr := h.service.GetAuthorDetail(c.Request.Context(), id)
	if svcErr != nil {
		h.responder.Error(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, author.ToDetailResponse())
}

// UpdateAuthor handles PATCH /authors/:id.
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	var req model.UpdateAuthorRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		h.responder.Error(c, httpbind.ClassifyBindError(bindErr))
		return
	}

	if svcErr := h.service.UpdateAuthor(c.Request.Context(), id, &req); svcErr != nil {
		h.responder.Error(c, svcErr)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAuthor handles DELETE /authors/:id.
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	if svcErr := h.service.DeleteAuthor(c.Request.Context(), id); svcErr != nil {
		h.responder.Error(c, svcErr)
		return
	}

	c.Status(http.StatusNoContent)
}

func pathID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierror.Newf(apierror.InvalidInput, "id[%s] must be a number", raw)
	}
	return id, nil
}

func queryInt(c *gin.Context, name string, defaultValue int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierror.Newf(apierror.InvalidInput, "%s[%s] must be a number", name, raw)
	}
	return value, nil
}
