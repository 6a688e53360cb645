package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nextstarsoccer/nss-backend/config"
	"github.com/nextstarsoccer/nss-backend/internal/middleware"
	"github.com/nextstarsoccer/nss-backend/internal/user"
	"github.com/nextstarsoccer/nss-backend/pkg/responses"
	"github.com/nextstarsoccer/nss-backend/pkg/token"
	"github.com/nextstarsoccer/nss-backend/pkg/utils"
	"github.com/nextstarsoccer/nss-backend/pkg/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Credential failures deliberately collapse into one generic message so the
// endpoint can't be used to probe which emails have accounts.
const genericAuthError = "Authentication failed"

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

func (ac *AuthController) generateAndSaveTokens(u *user.User) (string, string, error) {
	accessToken, err := token.GenerateJWT(u.ID, u.Role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := token.GenerateRefreshToken(u.ID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return "", "", fmt.Errorf("refresh token generation failed: %w", err)
	}

	refreshToken := &user.RefreshToken{
		UserID:    u.ID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}

	if err := ac.repo.SaveRefreshToken(refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

func filterUserRecord(u *user.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role,
		LastActive: u.LastActive,
		CreatedAt:  u.CreatedAt,
	}
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a parent account with email, password and name; returns tokens (signup auto-logs-in).
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user body RegisterRequest true "Registration details"
// @Success      201 {object} AuthResponse
// @Failure      400 {object} responses.ValidationErrorResponse
// @Failure      409 {object} responses.ErrorResponse "Email already registered"
// @Failure      500 {object} responses.ErrorResponse
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if _, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email)); !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.SendError(c, http.StatusConflict, "An account with this email already exists")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Error hashing password")
		return
	}

	newUser := &user.User{
		Name:       req.Name,
		Email:      strings.ToLower(req.Email),
		Password:   hashedPassword,
		Phone:      req.Phone,
		Role:       user.RoleParent,
		LastActive: time.Now(),
	}

	if err := ac.repo.CreateUser(newUser); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Account creation failed")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(newUser)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         filterUserRecord(newUser),
	})
}

// Login godoc
// @Summary      Login
// @Description  Authenticate with email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials body LoginRequest true "Login credentials"
// @Success      200 {object} AuthResponse
// @Failure      400 {object} responses.ValidationErrorResponse
// @Failure      401 {object} responses.ErrorResponse "Authentication failed"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	foundUser, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, genericAuthError)
		return
	}

	if !utils.CheckPassword(foundUser.Password, req.Password) {
		responses.SendError(c, http.StatusUnauthorized, genericAuthError)
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(foundUser)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	foundUser.LastActive = time.Now()
	if err := ac.repo.UpdateUser(foundUser); err != nil {
		fmt.Printf("Error updating last active for user %d: %v\n", foundUser.ID, err)
	}

	c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         filterUserRecord(foundUser),
	})
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Description  Exchanges a valid refresh token for a new access token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh token"
// @Success      200 {object} map[string]string
// @Failure      401 {object} responses.ErrorResponse "Invalid or expired refresh token"
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	rt, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	u, err := ac.repo.GetUserByID(rt.UserID)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	newAccessToken, err := token.GenerateJWT(u.ID, u.Role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "New access token generation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": newAccessToken})
}

// Logout godoc
// @Summary      Logout
// @Description  Revokes the presented refresh token, ending the session server-side.
// @Tags         Auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body LogoutRequest true "Refresh token to revoke"
// @Success      200 {object} responses.SuccessResponse
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to logout")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// GetProfile godoc
// @Summary      Get current user
// @Description  Returns the profile of the authenticated user.
// @Tags         Profile
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} UserResponse
// @Failure      401 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
		return
	}

	currentUser, err := ac.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve profile")
		return
	}
	c.JSON(http.StatusOK, filterUserRecord(currentUser))
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Updates name and/or phone of the authenticated user.
// @Tags         Profile
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        profileData body UpdateProfileRequest true "Profile fields to update"
// @Success      200 {object} UserResponse
// @Failure      400 {object} responses.ValidationErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/me [put]
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "User")
			return
		}
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve user")
		return
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}

	if err := ac.repo.UpdateUser(u); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	c.JSON(http.StatusOK, filterUserRecord(u))
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Changes the password and revokes all existing refresh tokens.
// @Tags         Profile
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body ChangePasswordRequest true "Old and new password"
// @Success      200 {object} responses.SuccessResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/change-password [post]
func (ac *AuthController) ChangePassword(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "Unauthorized: "+err.Error())
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	u, err := ac.repo.GetUserByID(userID)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, genericAuthError)
		return
	}

	if !utils.CheckPassword(u.Password, req.OldPassword) {
		responses.SendError(c, http.StatusUnauthorized, genericAuthError)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Error hashing password")
		return
	}
	u.Password = hashed

	if err := ac.repo.UpdateUser(u); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to change password")
		return
	}

	// Existing sessions shouldn't outlive a password change.
	if err := ac.repo.InvalidateAllRefreshTokensForUser(u.ID); err != nil {
		fmt.Printf("Error revoking refresh tokens for user %d: %v\n", u.ID, err)
	}

	responses.SendSuccess(c, http.StatusOK, "Password changed successfully", nil)
}
