package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sharebnb-gmm/pool-party-api/internal/config"
	dbpkg "github.com/sharebnb-gmm/pool-party-api/internal/db"
	"github.com/sharebnb-gmm/pool-party-api/internal/models"
	"github.com/sharebnb-gmm/pool-party-api/internal/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubUploader stands in for S3. Flip failing to simulate a storage outage.
type stubUploader struct {
	failing bool
	uploads []string
}

func (u *stubUploader) Upload(_ context.Context, filename, _ string, body io.Reader) (string, error) {
	if u.failing {
		return "", errors.New("storage down")
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	u.uploads = append(u.uploads, filename)
	return "https://cdn.test/" + filename, nil
}

type testEnv struct {
	r        *gin.Engine
	db       *gorm.DB
	uploader *stubUploader
	cfg      *config.Config
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		VerifyEmailDomain: false,
	}

	uploader := &stubUploader{}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg, uploader)

	return &testEnv{r: r, db: db, uploader: uploader, cfg: cfg}
}

func (e *testEnv) createUser(t *testing.T, username string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        username + "@test.com",
		PasswordHash: string(hash),
		Location:     "Test City",
	}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

func (e *testEnv) createPool(t *testing.T, owner string) models.Pool {
	t.Helper()

	pool := models.Pool{
		OwnerUsername: owner,
		Rate:          100,
		Size:          "Medium",
		Description:   "A lovely pool",
		City:          "Test City",
	}
	require.NoError(t, e.db.Create(&pool).Error)
	return pool
}

func (e *testEnv) token(t *testing.T, username string) string {
	t.Helper()

	claims := jwt.MapClaims{"sub": username, "iat": time.Now().Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(e.cfg.JWTSecret))
	require.NoError(t, err)
	return token
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doForm(t *testing.T, path string, fields map[string]string, token string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doMultipart(t *testing.T, path string, fields map[string]string, filename string, file []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func testPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for x := 0; x < 8; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func jsonPath(t *testing.T, w *httptest.ResponseRecorder, keys ...string) any {
	t.Helper()

	var cur any = decodeBody(t, w)
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		require.True(t, ok, "expected object at %q in %s", k, w.Body.String())
		cur, ok = m[k]
		require.True(t, ok, "missing key %q in %s", k, w.Body.String())
	}
	return cur
}

func reservationBody(start, end string) map[string]any {
	return map[string]any{"start_date": start, "end_date": end}
}
