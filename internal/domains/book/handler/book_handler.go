package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"book-management-backend/internal/domains/book/model"
	"book-management-backend/internal/domains/book/service"
	"book-management-backend/internal/shared/apierror"
	"book-management-backend/internal/shared/httpbind"
	"book-management-backend/internal/shared/pagination"
	"book-management-backend/internal/shared/response"
)

// BookHandler handles HTTP requests for the book domain.
type BookHandler struct {
	service   service.Service
	responder *response.Responder
}

func NewBookHandler(service service.Service, responder *response.Responder) *BookHandler {
	return &BookHandler{service: service, responder: responder}
}

// CreateBook handles POST /books.
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.Error(c, httpbind.ClassifyBindError(err))
		return
	}

	if err := req.Validate(); err != nil {
		h.responder.Error(c, apierror.New(apierror.InvalidInput, err.Error()))
		return
	}

	result, err := h.service.CreateBook(c.Request.Context(), &req)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetBookList handles GET /books with page/size/sort/title query params.
func (h *BookHandler) GetBookList(c *gin.Context) {
	filter, err := listFilter(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	books, total, svcErr := h.service.GetBookList(c.Request.Context(), filter)
	if svcErr != nil {
		h.responder.Error(c, svcErr)
		return
	}

	items := make([]model.BookListItem, 0, len(books))
	for i := range books {
		items = append(items, books[i].ToListItem())
	}

	c.JSON(http.StatusOK, pagination.NewPage(items, filter.Page, total))
}

// GetBookDetails handles GET /books/:id.
func (h *BookHandler) GetBookDetails(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	book, svcErr := h.service.GetBookDetails(c.Request.Context(), id)
	if svcErr != nil {
		h.responder.Error(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, book.ToDetailResponse())
}

// UpdateBook handles PATCH /books/:id.
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	var req model.UpdateBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		h.responder.Error(c, httpbind.ClassifyBindError(bindErr))
		return
	}

	if valErr := req.Validate(); valErr != nil {
		h.responder.Error(c, apierror.New(apierror.InvalidInput, valErr.Error()))
		return
	}

	if svcErr := h.service.UpdateBook(c.Request.Context(), id, &req); svcErr != nil {
		h.responder.Error(c, svcErr)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteBook handles DELETE /books/:id.
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.responder.Error(c, err)
		return
	}

	if svcErr := h.service.DeleteBook(c.Request.Context(), id); svcErr != nil {
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

func listFilter(c *gin.Context) (model.ListFilter, error) {
	var filter model.ListFilter

	page, err := queryInt(c, "page", 0)
	if err != nil {
		return filter, err
	}

	size, err := queryInt(c, "size", 10)
	if err != nil {
		return filter, err
	}

	filter.Title = strings.TrimSpace(c.Query("title"))
	filter.Page = pagination.Request{
		Page:       page,
		Size:       size,
		Sort:       c.DefaultQuery("sort", "id"),
		Descending: !strings.EqualFold(c.DefaultQuery("direction", "desc"), "asc"),
	}

	return filter, nil
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
