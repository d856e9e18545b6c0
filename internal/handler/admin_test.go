package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moraputalapraveen/hireme4u-backend/internal/auth"
	"github.com/moraputalapraveen/hireme4u-backend/pkg"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func adminRouter(admins *fakeAdminStore, maker *auth.JWTMaker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{
		Logger:     zap.NewNop(),
		Admins:     admins,
		TokenMaker: maker,
	}
	r := gin.New()
	r.POST("/api/admin/setup", h.SetupAdmin)
	r.POST("/api/admin/login", h.LoginAdmin)
	return r
}

func Test_SetupAdmin_CreatesAccount(t *testing.T) {
	admins := &fakeAdminStore{}
	r := adminRouter(admins, nil)

	w, parsed := doJSON(t, r, http.MethodPost, "/api/admin/setup",
		`{"username": "boss", "password": "s3cret-pass"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, parsed["success"])
	assert.Equal(t, "Admin created successfully", parsed["message"])
	assert.Equal(t, "boss", parsed["username"])

	created, ok := admins.admins["boss"]
	require.True(t, ok)
	assert.Equal(t, auth.RoleAdmin, created.Role)
	assert.NoError(t, pkg.ComparePassword(created.PasswordHash, "s3cret-pass"))
}

func Test_SetupAdmin_MissingFields(t *testing.T) {
	r := adminRouter(&fakeAdminStore{}, nil)

	w, parsed := doJSON(t, r, http.MethodPost, "/api/admin/setup", `{"username": "boss"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, parsed["success"])
	assert.Equal(t, "Username and password are required", parsed["message"])
}

func Test_SetupAdmin_AlreadyExists(t *testing.T) {
	admins := &fakeAdminStore{admins: map[string]*model.Admin{
		"boss": {Username: "boss"},
	}}
	r := adminRouter(admins, nil)

	w, parsed := doJSON(t, r, http.MethodPost, "/api/admin/setup",
		`{"username": "boss", "password": "s3cret-pass"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Admin already exists", parsed["message"])
}

func seedAdmin(t *testing.T, username, password string) *fakeAdminStore {
	t.Helper()
	hash, err := pkg.HashPassword(password)
	require.NoError(t, err)
	return &fakeAdminStore{admins: map[string]*model.Admin{
		username: {
			ID:           "admin-" + username,
			Username:     username,
			PasswordHash: hash,
			Role:         auth.RoleAdmin,
		},
	}}
}

func Test_LoginAdmin_Success(t *testing.T) {
	maker := auth.NewJWTMaker("0123456789abcdef0123456789abcdef", 7*24*time.Hour)
	r := adminRouter(seedAdmin(t, "boss", "s3cret-pass"), maker)

	w, parsed := doJSON(t, r, http.MethodPost, "/api/admin/login",
		`{"username": "boss", "password": "s3cret-pass"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, parsed["success"])

	token, ok := parsed["token"].(string)
	require.True(t, ok)
	claims, err := maker.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-boss", claims.AdminID)
	assert.Equal(t, auth.RoleAdmin, claims.Role)

	admin, ok := parsed["admin"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "boss", admin["username"])
	assert.Equal(t, auth.RoleAdmin, admin["role"])
}

func Test_LoginAdmin_WrongPassword(t *testing.T) {
	r := adminRouter(seedAdmin(t, "boss", "s3cret-pass"), nil)

	w, parsed := doJSON(t, r, http.MethodPost, "/api/admin/login",
		`{"username": "boss", "password": "wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", parsed["message"])
}

func Test_LoginAdmin_UnknownUsername(t *testing.T) {
	r := adminRouter(&fakeAdminStore{}, nil)

	w, parsed := doJSON(t, r, http.MethodPost, "/api/admin/login",
		`{"username": "ghost", "password": "whatever"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", parsed["message"])
}
