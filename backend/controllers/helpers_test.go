package controllers_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"coursehub/backend/config"
	"coursehub/backend/media"
	"coursehub/backend/models"
	"coursehub/backend/payment"
	"coursehub/backend/routes"
	"coursehub/backend/utils"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "rzp_test_secret"

type fakeMediaStore struct {
	uploads int
	deleted []string
	failIDs map[string]bool
}

func (f *fakeMediaStore) Upload(_ context.Context, kind media.Kind, filename string, _ []byte) (*media.Asset, error) {
	f.uploads++
	id := fmt.Sprintf("%s/%d-%s", kind, f.uploads, filename)
	return &media.Asset{PublicID: id, URL: "http://media.test/" + id}, nil
}

func (f *fakeMediaStore) Delete(_ context.Context, publicID string) error {
	if f.failIDs[publicID] {
		return fmt.Errorf("delete %s: provider unavailable", publicID)
	}
	f.deleted = append(f.deleted, publicID)
	return nil
}

type fakeGateway struct {
	orders     int
	lastAmount int64
}

func (f *fakeGateway) CreateOrder(_ context.Context, amount int64, currency string) (*payment.Order, error) {
	f.orders++
	f.lastAmount = amount
	return &payment.Order{
		ID:       fmt.Sprintf("order_test_%d", f.orders),
		Amount:   amount,
		Currency: currency,
	}, nil
}

type testEnv struct {
	app     *fiber.App
	db      *gorm.DB
	cfg     *config.Config
	media   *fakeMediaStore
	gateway *fakeGateway
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:      "testsecret",
		RazorpaySecret: testSecret,
		FrontendDir:    t.TempDir(),
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, utils.Migrate(db))

	app := fiber.New(fiber.Config{ErrorHandler: utils.ErrorHandler})
	store := &fakeMediaStore{failIDs: map[string]bool{}}
	gateway := &fakeGateway{}
	routes.SetupRoutes(app, db, cfg, store, gateway)

	return &testEnv{app: app, db: db, cfg: cfg, media: store, gateway: gateway}
}

func (env *testEnv) createUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, env.db.Create(&user).Error)

	token, err := utils.GenerateJWTToken(user.ID, env.cfg)
	require.NoError(t, err)

	return user, token
}

func (env *testEnv) createCourse(t *testing.T, ownerID uint, title string) models.Course {
	t.Helper()

	course := models.Course{
		Title:       title,
		Description: "A course",
		Category:    "philosophy",
		CreatedBy:   "Test Teacher",
		OwnerID:     ownerID,
		Price:       499,
		Duration:    12,
		PosterID:    "image/poster-" + title + ".png",
		PosterURL:   "http://media.test/image/poster-" + title + ".png",
	}
	require.NoError(t, env.db.Create(&course).Error)
	return course
}

func (env *testEnv) addLecture(t *testing.T, courseID uint, title string) models.Lecture {
	t.Helper()

	lecture := models.Lecture{
		CourseID:    courseID,
		Title:       title,
		Description: "A lecture",
		VideoID:     "video/" + title + ".mp4",
		VideoURL:    "http://media.test/video/" + title + ".mp4",
	}
	require.NoError(t, env.db.Create(&lecture).Error)
	require.NoError(t, env.db.Model(&models.Course{}).Where("id = ?", courseID).
		UpdateColumn("num_of_videos", gorm.Expr("num_of_videos + 1")).Error)
	return lecture
}

func (env *testEnv) subscribe(t *testing.T, userID, courseID uint) {
	t.Helper()
	require.NoError(t, env.db.Create(&models.Subscription{UserID: userID, CourseID: courseID}).Error)
}

func (env *testEnv) doJSON(t *testing.T, method, path, token string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(jsonData)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(utils.TokenHeader, token)
	}

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	return resp
}

func (env *testEnv) doMultipart(t *testing.T, path, token string, fields map[string]string, filename string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("binary-data"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set(utils.TokenHeader, token)
	}

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}
