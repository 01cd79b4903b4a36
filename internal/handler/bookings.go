package handler

import (
	"bytes"
	"net/http"
	"time"

	"camtourvisor/internal/model"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateBooking(c *gin.Context) {
	var form model.BookingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}
	b, err := h.Bookings.Create(c.Request.Context(), userID(c), form)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	list, err := h.Bookings.ListForUser(c.Request.Context(), userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) CancelBooking(c *gin.Context) {
	if err := h.Bookings.Cancel(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": model.BookingCancelled})
}

func (h *Handler) AdminListBookings(c *gin.Context) {
	list, err := h.Bookings.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) AdminUpdateBookingStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	b, err := h.Bookings.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// AdminExportBookings отдает все бронирования файлом xlsx.
func (h *Handler) AdminExportBookings(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.Bookings.Export(c.Request.Context(), &buf); err != nil {
		h.fail(c, err)
		return
	}
	name := "bookings-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
