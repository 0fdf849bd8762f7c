package domain

import "errors"

// Sentinel errors mapped to HTTP status codes by the API error handler.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("access forbidden")

	// ErrInvalidRefreshToken is the single error every refresh failure is
	// collapsed into at the boundary. The specific cause (unknown session,
	// invalidated, expired, lost rotation race) is logged but never leaked,
	// to avoid a session-enumeration side channel.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// Internal refresh failure causes. All surface as ErrInvalidRefreshToken.
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionInvalidated = errors.New("session invalidated")
	ErrSessionExpired     = errors.New("session expired")
	ErrRotationConflict   = errors.New("session already rotated")

	ErrQRSessionNotFound = errors.New("qr session not found")
	ErrQRSessionPending  = errors.New("qr session pending")

	ErrJobNotFound         = errors.New("job not found")
	ErrJobClosed           = errors.New("job is not open for applications")
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrReviewNotFound      = errors.New("review not found")
	ErrSelfReview          = errors.New("you cannot review yourself")
	ErrMessageNotFound     = errors.New("message not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPlanNotFound        = errors.New("plan not found")
	ErrContentNotFound     = errors.New("content item not found")

	ErrInvalidStatus = errors.New("invalid status value")
	ErrInvalidRole   = errors.New("invalid role value")
)
