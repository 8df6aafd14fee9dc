package handlers

import (
	"net/http"
	"strings"
	"time"

	"busbackend/internal/domain/models"
	"busbackend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		RespondFormatError(c, "email and password are required", nil)
		return
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	switch role {
	case models.RoleOperator, models.RoleAgent:
	default:
		role = models.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "InternalError: failed to hash password"})
		return
	}

	user, err := repositories.UserRepository{}.Create(models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		Role:         role,
		UniqueID:     uuid.NewString(),
		PasswordHash: string(hash),
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "ValidationError: email already registered"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"uniqueId": user.UniqueID,
		"role":     user.Role,
	})
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, found, err := repositories.UserRepository{}.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "InternalError: failed to query user"})
		return
	}
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "AuthorizationError: wrong email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "AuthorizationError: wrong email or password"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  user.UniqueID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "InternalError: failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"role":     user.Role,
			"uniqueId": user.UniqueID,
		},
	})
}
