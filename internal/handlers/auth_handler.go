package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sharebnb-gmm/pool-party-api/internal/config"
	"github.com/sharebnb-gmm/pool-party-api/internal/httperr"
	"github.com/sharebnb-gmm/pool-party-api/internal/models"
	"github.com/sharebnb-gmm/pool-party-api/internal/storage"
	"github.com/sharebnb-gmm/pool-party-api/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	uploader storage.Uploader
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, uploader storage.Uploader) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, uploader: uploader}
}

// --------- Requests ---------

type SignupRequest struct {
	Username string `form:"username" binding:"required,min=3,max=50"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
	Location string `form:"location"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.config.VerifyEmailDomain && !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Email domain does not resolve.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count)
	if count > 0 {
		httperr.FailedDependency(c, "username_or_email_taken", "Username or email already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not process password.")
		return
	}

	// Avatar upload is best-effort: a storage outage degrades to an empty
	// image_url instead of blocking the signup.
	imageURL := ""
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		imageURL, _ = uploadWithThumbnail(c.Request.Context(), h.uploader, fh)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		Location:     req.Location,
		ImageURL:     imageURL,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Could not create user.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var user models.User
	if err := h.db.
		Where("username = ?", req.Username).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
			return
		}
		httperr.Internal(c, "internal_error", "Internal error.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials.")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.Username,
		"iat": time.Now().Unix(),
	}

	if h.config.JWTTTLHours > 0 {
		claims["exp"] = time.Now().Add(time.Duration(h.config.JWTTTLHours) * time.Hour).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
