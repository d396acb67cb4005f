package menucontroller

import (
	"errors"
	"fmt"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dh139/cafef/store"
)

var unsafeChars = regexp.MustCompile(`[^\w\-.]`)

// saveMenuImage stores an uploaded menu image under a unique name:
// {millis}-{random}-{sanitized original name}.
func saveMenuImage(c *gin.Context, file *multipart.FileHeader, imagesDir string) (string, error) {
	cleanName := unsafeChars.ReplaceAllString(file.Filename, "_")
	filename := fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), cleanName)

	if err := os.MkdirAll(imagesDir, os.ModePerm); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(imagesDir, filename)); err != nil {
		return "", err
	}
	return filename, nil
}

// GetMenuItems lists the whole catalog in insertion order.
func GetMenuItems(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.List())
	}
}

// CreateMenuItem adds a new item from a multipart form: name, price and an
// optional image file.
func CreateMenuItem(catalog *store.Catalog, imagesDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = saveMenuImage(c, file, imagesDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
		}

		item, err := catalog.Create(name, price, imageURL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// UpdateMenuItem rewrites an existing item. Name and price are applied
// unconditionally; the image only when a new file is uploaded, in which case
// the previous file is removed after the new one is in place.
func UpdateMenuItem(catalog *store.Catalog, imagesDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		if name == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		// Save the new image first so the item never points at a missing file.
		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err = saveMenuImage(c, file, imagesDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
		}

		item, replaced, err := catalog.Update(uint(id), name, price, imageURL)
		if err != nil {
			if errors.Is(err, store.ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Release the replaced image. A failure here only leaks a file.
		if replaced != "" {
			if err := os.Remove(filepath.Join(imagesDir, replaced)); err != nil && !os.IsNotExist(err) {
				logrus.Warnf("failed to remove old image %s: %v", replaced, err)
			}
		}

		c.JSON(http.StatusOK, item)
	}
}
