package handler

import (
	"net/http"

	"camtourvisor/internal/model"

	"github.com/gin-gonic/gin"
)

// ListDestinations обработчик для GET /api/destinations?category=&q=.
func (h *Handler) ListDestinations(c *gin.Context) {
	list, err := h.Destinations.List(c.Request.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetDestination(c *gin.Context) {
	d, err := h.Destinations.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetCoordinates отдает точку для карты.
func (h *Handler) GetCoordinates(c *gin.Context) {
	coords, err := h.Destinations.Coordinates(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, coords)
}

func (h *Handler) ListDestinationReviews(c *gin.Context) {
	reviews, err := h.Reviews.ListForDestination(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// AdminSaveDestination создает (POST) или обновляет (PUT /:id) направление.
func (h *Handler) AdminSaveDestination(c *gin.Context) {
	var d model.Destination
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	d.ID = c.Param("id")
	saved, err := h.Destinations.Save(c.Request.Context(), &d)
	if err != nil {
		h.fail(c, err)
		return
	}
	status := http.StatusOK
	if c.Request.Method == http.MethodPost {
		status = http.StatusCreated
	}
	c.JSON(status, saved)
}

func (h *Handler) AdminDeleteDestination(c *gin.Context) {
	if err := h.Destinations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
