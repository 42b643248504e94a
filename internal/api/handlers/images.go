package handlers

import (
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/rohits-web03/roboshow/internal/utils"
)

const presignExpiry = 15 * time.Minute

var allowedImageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
}

type presignRequest struct {
	Filename string `json:"filename"`
}

type presignResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	ExpiresIn int    `json:"expiresIn"` // seconds
}

// PresignUpload godoc
// @Summary Presign an image upload
// @Description Returns a presigned PUT URL for a project image. Pass the returned key as the project image.
// @Tags Images
// @Accept json
// @Produce json
// @Param request body presignRequest true "Image file name"
// @Success 200 {object} utils.Payload{data=presignResponse}
// @Failure 400 {object} utils.Payload
// @Failure 503 {object} utils.Payload
// @Router /api/v1/images/presign [post]
func (h *Handler) PresignUpload(w http.ResponseWriter, r *http.Request) {
	if h.Images == nil {
		utils.ErrorResponse(w, http.StatusServiceUnavailable, "Image storage is not configured")
		return
	}

	var input presignRequest
	if err := decodeJSON(r, &input); err != nil || strings.TrimSpace(input.Filename) == "" {
		invalidInput(w)
		return
	}
	if !allowedImageExts[strings.ToLower(path.Ext(input.Filename))] {
		utils.ErrorResponse(w, http.StatusBadRequest, "Unsupported image type")
		return
	}

	key, uploadURL, err := h.Images.PresignUpload(r.Context(), input.Filename, presignExpiry)
	if err != nil {
		h.apiError(w, "failed to presign upload", err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Upload URL generated successfully",
		Data: presignResponse{
			Key:       key,
			UploadURL: uploadURL,
			PublicURL: h.Images.PublicURL(key),
			ExpiresIn: int(presignExpiry.Seconds()),
		},
	})
}
