package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyanga-tradition/yayoh-api/services"
)

func newUploadRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/upload", UploadImage)
	r.POST("/api/upload/images", UploadImages)
	r.POST("/api/upload/multiple", UploadMultiple)
	r.POST("/api/upload/videos", UploadVideo)
	r.GET("/api/upload/test", UploadTest)
	return r
}

type uploadFile struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

// buildMultipartRequest assembles a multipart/form-data request body
func buildMultipartRequest(t *testing.T, url string, files []uploadFile) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func setupMockMedia(t *testing.T) *services.MockMediaService {
	t.Helper()

	mock := services.NewMockMediaService()
	mock.SetAsMockForTesting()
	t.Cleanup(func() { services.SetMediaService(nil) })
	return mock
}

func TestUploadImageMissingFile(t *testing.T) {
	setupTestConfig(t)
	setupMockMedia(t)
	router := newUploadRouter()

	w := httptest.NewRecorder()
	req := buildMultipartRequest(t, "/api/upload", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
}

func TestUploadImageSuccess(t *testing.T) {
	setupTestConfig(t)
	mock := setupMockMedia(t)
	router := newUploadRouter()

	w := httptest.NewRecorder()
	req := buildMultipartRequest(t, "/api/upload", []uploadFile{
		{field: "image", filename: "photo.png", contentType: "image/png", content: []byte("png-bytes")},
	})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.NotEmpty(t, response["url"])
	assert.NotEmpty(t, response["key"])
	assert.True(t, mock.FileExists(response["key"].(string)))
}

func TestUploadImageRejectsUnknownFormat(t *testing.T) {
	setupTestConfig(t)
	setupMockMedia(t)
	router := newUploadRouter()

	w := httptest.NewRecorder()
	req := buildMultipartRequest(t, "/api/upload", []uploadFile{
		{field: "image", filename: "script.exe", contentType: "application/octet-stream", content: []byte("nope")},
	})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadImageProviderError(t *testing.T) {
	setupTestConfig(t)
	mock := setupMockMedia(t)
	router := newUploadRouter()

	mock.FailNextUpload(errors.New("bucket unreachable"))

	w := httptest.NewRecorder()
	req := buildMultipartRequest(t, "/api/upload", []uploadFile{
		{field: "image", filename: "photo.jpg", contentType: "image/jpeg", content: []byte("jpg-bytes")},
	})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Erreur lors de l'upload", response["error"])
	assert.Contains(t, response["details"], "bucket unreachable")
}

func TestUploadImagesBatch(t *testing.T) {
	setupTestConfig(t)
	mock := setupMockMedia(t)
	router := newUploadRouter()

	w := httptest.NewRecorder()
	req := buildMultipartRequest(t, "/api/upload/images", []uploadFile{
		{field: "images", filename: "a.jpg", contentType: "image/jpeg", content: []byte("a")},
		{field: "images", filename: "b.webp", contentType: "image/webp", content: []byte("b")},
	})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool     `json:"success"`
		URLs    []string `json:"urls"`
		Count   int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, 2, response.Count)
	assert.Len(t, response.URLs, 2)
	assert.Equal(t, 2, mock.UploadedCount())
}

func TestUploadImagesEmpty(t *testing.T) {
	setupTestConfig(t)
	setupMockMedia(t)
	router := newUploadRouter()

	w := httptest.NewRecorder()
	req := buildMultipartRequest(t, "/api/upload/images", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadMultipleNamedFields(t *testing.T) {
	setupTestConfig(t)
	setupMockMedia(t)
	router := newUploadRouter()

	w := httptest.NewRecorder()
	req := buildMultipartRequest(t, "/api/upload/multiple", []uploadFile{
		{field: "mainImage", filename: "main.png", contentType: "image/png", content: []byte("m")},
		{field: "galleryImages", filename: "g1.jpg", contentType: "image/jpeg", content: []byte("g1")},
		{field: "galleryImages", filename: "g2.jpg", contentType: "image/jpeg", content: []byte("g2")},
	})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		URLs    struct {
			MainImage     string   `json:"mainImage"`
			GalleryImages []string `json:"galleryImages"`
		} `json:"urls"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.NotEmpty(t, response.URLs.MainImage)
	assert.Len(t, response.URLs.GalleryImages, 2)
}

func TestUploadVideoRejectsNonVideoMIME(t *testing.T) {
	setupTestConfig(t)
	setupMockMedia(t)
	router := newUploadRouter()

	w := httptest.NewRecorder()
	req := buildMultipartRequest(t, "/api/upload/videos", []uploadFile{
		{field: "video", filename: "photo.png", contentType: "image/png", content: []byte("not-a-video")},
	})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Format non supporté", response["error"])
}

func TestUploadVideoSuccess(t *testing.T) {
	setupTestConfig(t)
	setupMockMedia(t)
	router := newUploadRouter()

	w := httptest.NewRecorder()
	req := buildMultipartRequest(t, "/api/upload/videos", []uploadFile{
		{field: "video", filename: "clip.mp4", contentType: "video/mp4", content: []byte("mp4-bytes")},
	})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Video   struct {
			URL    string `json:"url"`
			Key    string `json:"key"`
			Format string `json:"format"`
		} `json:"video"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.NotEmpty(t, response.Video.URL)
	assert.Equal(t, "mp4", response.Video.Format)
}

func TestUploadTestProbe(t *testing.T) {
	setupTestConfig(t)
	router := newUploadRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/upload/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Route upload fonctionnelle", response["message"])
	assert.Equal(t, false, response["media_configured"])
}

func TestUploadImageWithoutConfiguredRelay(t *testing.T) {
	setupTestConfig(t)
	services.SetMediaService(nil)
	router := newUploadRouter()

	w := httptest.NewRecorder()
	req := buildMultipartRequest(t, "/api/upload", []uploadFile{
		{field: "image", filename: "photo.png", contentType: "image/png", content: []byte("png")},
	})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
