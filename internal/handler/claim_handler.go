package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"medclaims/internal/domain"
	"medclaims/internal/service"
)

// ClaimHandler handles claim processing endpoints.
type ClaimHandler struct {
	claims service.ClaimService
}

// NewClaimHandler creates a new ClaimHandler.
func NewClaimHandler(claims service.ClaimService) *ClaimHandler {
	return &ClaimHandler{claims: claims}
}

// Process handles POST /api/v1/claims/process. It accepts a multipart form
// with one or more "files" parts and returns the structured documents, the
// validation report, and the claim decision. Data-quality problems come back
// with a 200; only malformed requests and provider failures are errors.
func (h *ClaimHandler) Process(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form with a files field is required")
		return
	}

	headers := form.File["files"]
	files := make([]domain.UploadedFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not open uploaded file "+fh.Filename)
			return
		}
		content, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file "+fh.Filename)
			return
		}
		files = append(files, domain.UploadedFile{Filename: fh.Filename, Content: content})
	}

	result, err := h.claims.ProcessClaim(c.Request.Context(), files)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
