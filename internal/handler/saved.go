package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type saveRequest struct {
	Notes string `json:"notes"`
}

// SaveDestination добавляет направление в избранное. Тело запроса необязательно.
func (h *Handler) SaveDestination(c *gin.Context) {
	var req saveRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}
	saved, err := h.Saved.Save(c.Request.Context(), userID(c), c.Param("slug"), req.Notes)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *Handler) UnsaveDestination(c *gin.Context) {
	if err := h.Saved.Unsave(c.Request.Context(), userID(c), c.Param("slug")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListSaved(c *gin.Context) {
	list, err := h.Saved.List(c.Request.Context(), userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) IsSaved(c *gin.Context) {
	ok, err := h.Saved.IsSaved(c.Request.Context(), userID(c), c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": ok})
}

// SavedRoute возвращает маршрут по избранным направлениям.
func (h *Handler) SavedRoute(c *gin.Context) {
	route, err := h.Saved.Route(c.Request.Context(), userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}
