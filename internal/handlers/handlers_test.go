package handlers_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop_backend/internal/auth"
	"shop_backend/internal/email"
	"shop_backend/internal/handlers"
	"shop_backend/internal/imageprocessor"
	"shop_backend/internal/middleware"
	"shop_backend/internal/models"
	"shop_backend/internal/repositories"
	"shop_backend/internal/routes"
	"shop_backend/internal/services"
	"shop_backend/internal/storage"
	"shop_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testServer is the full API wired onto an in-memory database and a temp
// upload directory.
type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Review{},
	))

	store, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	uploads := services.NewUploadService(store, imageprocessor.NewProcessor(85), 250)

	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	reviewRepo := repositories.NewGormRepository[models.Review](db)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	authService := services.NewAuthService(userRepo, email.NoopProvider{})

	base := handlers.NewBaseHandler(validator.New())
	h := routes.Handlers{
		Auth:       handlers.NewAuthHandler(base, authService, tokens, 24*time.Hour, false),
		Users:      handlers.NewUserHandler(base, userRepo),
		Products:   handlers.NewProductHandler(base, productRepo, categoryRepo, uploads),
		Categories: handlers.NewCategoryHandler(base, categoryRepo, uploads),
		Reviews:    handlers.NewReviewHandler(base, reviewRepo),
	}

	r := gin.New()
	routes.Register(r, h, middleware.Protect(tokens, userRepo))

	return &testServer{router: r, db: db}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) doForm(t *testing.T, method, path, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// signupOwner registers an owner account and returns its token.
func (s *testServer) signupOwner(t *testing.T, username string) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/users/signup", "", gin.H{
		"username":        username,
		"email":           username + "@shop.local",
		"password":        "password123",
		"passwordConfirm": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// pngBytes encodes a small in-memory PNG.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 32, 32))))
	return buf.Bytes()
}

// multipartBody assembles a multipart form from string fields plus an optional
// image file.
func multipartBody(t *testing.T, fields map[string]string, withImage bool, img []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if withImage {
		fw, err := mw.CreateFormFile("image", "upload.png")
		require.NoError(t, err)
		_, err = fw.Write(img)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

// createCategory creates a category through the API and returns its id.
func (s *testServer) createCategory(t *testing.T, token, name string) string {
	t.Helper()
	body, contentType := multipartBody(t, map[string]string{"name": name}, true, pngBytes(t))
	w := s.doForm(t, http.MethodPost, "/api/categories", token, body, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].(map[string]interface{})
	return data["id"].(string)
}
