package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medclaims/internal/domain"
	"medclaims/internal/handler"
	"medclaims/mocks"
)

func setupClaimRouter(svc *mocks.MockClaimService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/claims/process", handler.NewClaimHandler(svc).Process)
	return r
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for name, content := range files {
		part, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestClaimHandler_Process_Success(t *testing.T) {
	svc := new(mocks.MockClaimService)
	svc.On("ProcessClaim", mock.Anything, mock.MatchedBy(func(files []domain.UploadedFile) bool {
		return len(files) == 1 && files[0].Filename == "bill.pdf" &&
			string(files[0].Content) == "%PDF fake"
	})).Return(&domain.ClaimResult{
		Documents: []domain.Document{domain.Bill{HospitalName: "Mock Hospital", TotalAmount: 1234, DateOfService: "2024-01-01"}},
		Validation: domain.ValidationReport{
			MissingDocuments: []string{},
			Discrepancies:    []string{},
		},
		ClaimDecision: domain.ClaimDecision{
			Status: domain.DecisionApproved,
			Reason: "All required documents present and data is consistent",
		},
	}, nil)

	body, contentType := multipartBody(t, map[string][]byte{"bill.pdf": []byte("%PDF fake")})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims/process", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	setupClaimRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, data, "documents")
	assert.Contains(t, data, "validation")
	assert.Contains(t, data, "claim_decision")

	docs := data["documents"].([]interface{})
	require.Len(t, docs, 1)
	assert.Equal(t, "bill", docs[0].(map[string]interface{})["type"])

	svc.AssertExpectations(t)
}

func TestClaimHandler_Process_EmptyFormMapsToNoFiles(t *testing.T) {
	svc := new(mocks.MockClaimService)
	svc.On("ProcessClaim", mock.Anything, mock.MatchedBy(func(files []domain.UploadedFile) bool {
		return len(files) == 0
	})).Return(nil, domain.ErrNoFilesUploaded)

	body, contentType := multipartBody(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims/process", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	setupClaimRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NO_FILES", resp.Error.Code)
}

func TestClaimHandler_Process_NotPDF(t *testing.T) {
	svc := new(mocks.MockClaimService)
	svc.On("ProcessClaim", mock.Anything, mock.Anything).Return(nil, domain.ErrNotPDF)

	body, contentType := multipartBody(t, map[string][]byte{"x.txt": []byte("text")})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims/process", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	setupClaimRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_PDF", resp.Error.Code)
	assert.Equal(t, "All files must be PDFs", resp.Error.Message)
}

func TestClaimHandler_Process_ProviderFailure(t *testing.T) {
	svc := new(mocks.MockClaimService)
	svc.On("ProcessClaim", mock.Anything, mock.Anything).Return(nil, domain.ErrCompletionFailed)

	body, contentType := multipartBody(t, map[string][]byte{"bill.pdf": []byte("%PDF")})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims/process", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	setupClaimRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "COMPLETION_FAILED", resp.Error.Code)
}

func TestClaimHandler_Process_NonMultipartRequest(t *testing.T) {
	svc := new(mocks.MockClaimService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/claims/process",
		strings.NewReader(`{"files":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	setupClaimRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_FORM", resp.Error.Code)
	svc.AssertNotCalled(t, "ProcessClaim", mock.Anything, mock.Anything)
}

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"no_files", domain.ErrNoFilesUploaded, http.StatusBadRequest, "NO_FILES"},
		{"not_pdf", domain.ErrNotPDF, http.StatusBadRequest, "NOT_PDF"},
		{"too_large", domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{"completion", domain.ErrCompletionFailed, http.StatusBadGateway, "COMPLETION_FAILED"},
		{"unknown", assert.AnError, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, code)
		})
	}
}
