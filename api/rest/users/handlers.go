package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/personasync/server/internal/errors"
	"codeberg.org/personasync/server/personasync/users"
)

// Me godoc
// @Summary Get the authenticated user
// @Description Returns the current user's account and coaching profile
// @Tags users
// @Produce json
// @Success 200 {object} users.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/users/me [get]
// @Security BearerAuth
func Me(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		repo := users.NewRepository(db)

		user, err := repo.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.IsNotFound(err) {
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to fetch user", err)

			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfile godoc
// @Summary Update the coaching profile
// @Description Sets age, occupation, goal, and daily study target; marks the profile complete
// @Tags users
// @Accept json
// @Produce json
// @Param request body ProfileUpdateRequest true "Profile data"
// @Success 200 {object} users.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/users/me/profile [put]
// @Security BearerAuth
func UpdateProfile(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if userID == "" {
			errors.Unauthorized(c, "user not authenticated")
			return
		}

		var req ProfileUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		repo := users.NewRepository(db)

		user, err := repo.UpdateProfile(
			c.Request.Context(),
			userID,
			req.Age,
			req.Occupation,
			req.Goal,
			req.DailyStudyTarget,
		)
		if err != nil {
			if errors.IsNotFound(err) {
				errors.NotFound(c, "user")
				return
			}

			errors.InternalError(c, "failed to update profile", err)

			return
		}

		c.JSON(http.StatusOK, user)
	}
}
