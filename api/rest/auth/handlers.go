package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	internalauth "codeberg.org/personasync/server/internal/auth"
	"codeberg.org/personasync/server/internal/errors"
	"codeberg.org/personasync/server/internal/logger"
	"codeberg.org/personasync/server/personasync/users"
)

// Register godoc
// @Summary Create a new account
// @Description Registers a new user with email, password, and full name
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} users.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/register [post]
func Register(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		hash, err := internalauth.HashPassword(req.Password)
		if err != nil {
			errors.InternalError(c, "failed to process password", err)
			return
		}

		repo := users.NewRepository(db)

		user, err := repo.Create(c.Request.Context(), req.Email, hash, req.FullName)
		if err != nil {
			if errors.IsUniqueViolation(err) {
				errors.BadRequest(c, "this email is already registered", nil)
				return
			}

			errors.InternalError(c, "failed to create account", err)

			return
		}

		logger.Info("user registered", "user_id", user.ID)

		c.JSON(http.StatusCreated, user)
	}
}

// Login godoc
// @Summary Log in with email and password
// @Description Verifies credentials and returns a JWT valid for 7 days
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/auth/login [post]
func Login(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		repo := users.NewRepository(db)

		user, err := repo.FindByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if errors.IsNotFound(err) {
				errors.Unauthorized(c, "invalid email or password")
				return
			}

			errors.InternalError(c, "failed to look up account", err)

			return
		}

		if !internalauth.CheckPassword(req.Password, user.PasswordHash) {
			errors.Unauthorized(c, "invalid email or password")
			return
		}

		token, err := internalauth.GenerateJWT(user.ID, user.Email)
		if err != nil {
			errors.InternalError(c, "failed to issue token", err)
			return
		}

		c.JSON(http.StatusOK, TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
