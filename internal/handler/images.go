package handler

import (
	"errors"
	"net/http"

	"camtourvisor/internal/storage"

	"github.com/gin-gonic/gin"
)

// AdminUploadImage принимает multipart-поле "file" и сохраняет его в бакет изображений.
// Поле "name" (необязательное) задает префикс имени файла.
func (h *Handler) AdminUploadImage(c *gin.Context) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, err)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	prefix := c.PostForm("name")
	if prefix == "" {
		prefix = "image"
	}
	url, err := h.Images.PutImage(h.ImageBucket, prefix, fh.Filename, f)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
