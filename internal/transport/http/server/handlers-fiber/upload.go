package handlers_fiber

import (
	"net/http"

	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostUpload stores a multipart file under the upload directory and returns
// its public URL.
func (h *Handler) PostUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "cannot read file")
	}
	defer func() { _ = src.Close() }()

	url, err := h.store.Save(fileHeader.Filename, src)
	if err != nil {
		h.log.Errorw("failed to store upload", "name", fileHeader.Filename, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.UploadResponse{
		Filename: fileHeader.Filename,
		URL:      url,
	})
}
