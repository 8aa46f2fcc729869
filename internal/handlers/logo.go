package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedLogoExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".svg":  true,
}

// UploadLogo stores a logo image for later embedding. The stored name
// is a fresh UUID so uploads never collide or overwrite each other.
func (h *Handler) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo file is required"})
		return
	}
	if file.Size > h.cfg.MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("logo exceeds %d bytes", h.cfg.MaxUploadSize),
		})
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedLogoExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported logo type %q", ext)})
		return
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		h.log.Error("upload dir unavailable", "dir", h.cfg.UploadDir, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store logo"})
		return
	}
	name := uuid.New().String() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.UploadDir, name)); err != nil {
		h.log.Error("logo save failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store logo"})
		return
	}

	h.log.Info("logo uploaded", "name", name, "bytes", file.Size)
	c.JSON(http.StatusOK, gin.H{"filename": name, "url": "/uploads/" + name})
}
