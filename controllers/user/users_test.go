package userControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ministore/ministore-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	r := gin.New()
	r.POST("/users", CreateUser(db))
	r.GET("/users", GetAllUsers(db))
	r.GET("/users/:id", GetUser(db))
	return db, r
}

func TestCreateUser(t *testing.T) {
	_, r := setupTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"email":"a@example.com"}`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "a@example.com")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db, r := setupTest(t)

	for i, wantCode := range []int{http.StatusCreated, http.StatusConflict} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"email":"dup@example.com"}`))
		r.ServeHTTP(w, req)
		require.Equal(t, wantCode, w.Code, "request %d", i)
	}

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count, "conflict must not create a duplicate row")
}

func TestCreateUserInvalidEmail(t *testing.T) {
	_, r := setupTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/users", strings.NewReader(`{"email":""}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserNotFound(t *testing.T) {
	_, r := setupTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/users/99", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUser(t *testing.T) {
	db, r := setupTest(t)
	user := models.User{Email: "b@example.com"}
	require.NoError(t, db.Create(&user).Error)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", fmt.Sprintf("/users/%d", user.ID), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "b@example.com")
}
