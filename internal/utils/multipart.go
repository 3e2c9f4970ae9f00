package utils

import (
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/cutiepets/admin/internal/pkg/models"
)

// ReadImageUploads collects the files submitted under the given multipart
// field. A JSON request or a form without files yields an empty slice.
func ReadImageUploads(c echo.Context, field string) ([]models.ImageUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	files := form.File[field]
	uploads := make([]models.ImageUpload, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
		}

		content, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read upload %s: %w", fh.Filename, err)
		}

		uploads = append(uploads, models.ImageUpload{
			FileName: fh.Filename,
			Content:  content,
		})
	}

	return uploads, nil
}
