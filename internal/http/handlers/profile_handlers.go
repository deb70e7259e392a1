package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/marketsvc/domain"
)

// ProfileHandlers handles profile HTTP requests
type ProfileHandlers struct {
	profiles     domain.ProfileRepository
	verification domain.VerificationService
}

// NewProfileHandlers creates new profile handlers
func NewProfileHandlers(profiles domain.ProfileRepository, verification domain.VerificationService) *ProfileHandlers {
	return &ProfileHandlers{
		profiles:     profiles,
		verification: verification,
	}
}

// CreateProfileRequest represents a profile creation request
type CreateProfileRequest struct {
	UserID      uint   `json:"user_id" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	BirthDate   string `json:"birth_date"`
	AvatarURL   string `json:"avatar_url"`
}

// UpdateProfileRequest represents a profile update request. The verify flag
// triggers the phone verification workflow before the fields are saved.
type UpdateProfileRequest struct {
	PhoneNumber string `json:"phone_number"`
	BirthDate   string `json:"birth_date"`
	AvatarURL   string `json:"avatar_url"`
	Verify      bool   `json:"verify"`
}

// Create handles profile creation. It is the explicit counterpart of the
// user-created hook: the caller invokes it right after the auth collaborator
// reports a new user.
func (h *ProfileHandlers) Create(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := &domain.Profile{
		UserID:      req.UserID,
		PhoneNumber: req.PhoneNumber,
		AvatarURL:   req.AvatarURL,
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid birth date"})
			return
		}
		profile.BirthDate = birthDate
	}

	if err := h.profiles.Create(c.Request.Context(), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{
		"message":    "Profile created successfully",
		"profile_id": profile.ID,
	}})
}

// Update handles profile updates and, when the verify flag is set, triggers
// the phone verification workflow first. A missing phone number is an
// informational outcome, not a failure.
func (h *ProfileHandlers) Update(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := "Profile updated successfully"
	if req.Verify {
		message = h.requestVerification(c, uint(userID))
		if message == "" {
			return
		}
	}

	profile, err := h.profiles.FindByUser(c.Request.Context(), uint(userID))
	if err != nil {
		if err == domain.ErrProfileNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find profile"})
		return
	}

	profile.PhoneNumber = req.PhoneNumber
	profile.AvatarURL = req.AvatarURL
	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid birth date"})
			return
		}
		profile.BirthDate = birthDate
	}

	if err := h.profiles.Update(c.Request.Context(), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": message}})
}

// RequestVerification handles an explicit verification trigger
func (h *ProfileHandlers) RequestVerification(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	message := h.requestVerification(c, uint(userID))
	if message == "" {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": message}})
}

// requestVerification runs the workflow and writes error responses itself.
// It returns the user-facing message on success paths and "" when a response
// has already been written.
func (h *ProfileHandlers) requestVerification(c *gin.Context, userID uint) string {
	attempt, err := h.verification.RequestVerification(c.Request.Context(), userID)
	if err != nil {
		switch {
		case err == domain.ErrNoPhoneNumber:
			// Informational outcome: nothing sent, nothing recorded
			return "Add a phone number to your profile to verify it."
		case err == domain.ErrProfileNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return ""
		case errors.Is(err, domain.ErrGatewayUnavailable):
			auditLog(domain.NewAuditEvent(domain.VerificationFailedEvent).WithUser(userID).WithError(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send verification code"})
			return ""
		default:
			auditLog(domain.NewAuditEvent(domain.VerificationFailedEvent).WithUser(userID).WithError(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
			return ""
		}
	}

	auditLog(domain.NewAuditEvent(domain.VerificationRequestedEvent).
		WithUser(userID).
		WithMetadata("attempt_id", attempt.ID))
	return "A message with a verification code has been sent to your phone number."
}
