package service

import "errors"

var (
	ErrReportNotFound       = errors.New("Report not found")
	ErrEvidenceNotFound     = errors.New("Report has no evidence file")
	ErrInvalidStatus        = errors.New("Invalid report status")
	ErrInvalidIncidentDate  = errors.New("Incident date must be YYYY-MM-DD")
	ErrRateLimited          = errors.New("Too many reports from this connection. Please try again later.")
	ErrLawyerNotFound       = errors.New("Lawyer not found")
	ErrTherapistNotFound    = errors.New("Therapist not found")
	ErrArticleNotFound      = errors.New("Article not found")
	ErrSlugTaken            = errors.New("An article with this slug already exists")
	ErrArticleSlugEmpty     = errors.New("Slug must contain letters or digits")
	ErrUserNotFound         = errors.New("User not found")
	ErrUsernameTaken        = errors.New("A user with that username already exists.")
	ErrEmailTaken           = errors.New("A user with that email already exists.")
	ErrInvalidCredentials   = errors.New("Invalid username or password.")
	ErrNotificationNotFound = errors.New("Notification not found")
	ErrLogNotFound          = errors.New("Log entry not found")
	ErrSelfLockout          = errors.New("You cannot remove your own staff access")
)
