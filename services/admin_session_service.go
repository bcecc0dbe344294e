package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/utils"
)

// AdminSessionService handles admin session rows in the CMS database
type AdminSessionService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAdminSessionService(db *gorm.DB) *AdminSessionService {
	return &AdminSessionService{db: db, now: time.Now}
}

// CreateSession records a session for a freshly issued token
func (s *AdminSessionService) CreateSession(
	ctx context.Context,
	adminID uuid.UUID,
	token string,
	ipAddress string,
	userAgent string,
	ttl time.Duration,
) (*models.AdminSession, error) {
	now := s.now()
	session := &models.AdminSession{
		AdminID:        adminID,
		TokenHash:      utils.HashToken(token),
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		CreatedAt:      now,
		LastActivityAt: now,
		ExpiresAt:      now.Add(ttl),
		IsActive:       true,
	}

	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}

	log.Printf("[session] created session %s for admin %s", session.ID, adminID)
	return session, nil
}

// TouchSession loads the active session for a token hash and bumps its activity
// timestamp. Missing, deactivated and expired sessions yield ErrInactiveSession.
func (s *AdminSessionService) TouchSession(ctx context.Context, tokenHash string) (*models.AdminSession, error) {
	var session models.AdminSession
	err := s.db.WithContext(ctx).
		Where("token_hash = ? AND is_active = ?", tokenHash, true).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInactiveSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	now := s.now()
	if session.IsExpired(now) {
		return nil, ErrInactiveSession
	}

	if err := s.db.WithContext(ctx).
		Model(&session).
		Update("last_activity_at", now).Error; err != nil {
		// activity tracking must not block the request
		log.Printf("[session] failed to update session activity: %v", err)
	}
	return &session, nil
}

// DeactivateSessions ends every active session of an admin
func (s *AdminSessionService) DeactivateSessions(ctx context.Context, adminID uuid.UUID) error {
	if err := s.db.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("admin_id = ? AND is_active = ?", adminID, true).
		Update("is_active", false).Error; err != nil {
		log.Printf("[session] failed to deactivate sessions: %v", err)
		return err
	}

	log.Printf("[session] deactivated sessions for admin %s", adminID)
	return nil
}

// CleanupExpiredSessions removes expired sessions and inactive ones idle for a week
func (s *AdminSessionService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	now := s.now()
	result := s.db.WithContext(ctx).
		Where("expires_at < ? OR (is_active = ? AND last_activity_at < ?)",
			now,
			false,
			now.Add(-7*24*time.Hour),
		).
		Delete(&models.AdminSession{})

	if result.Error != nil {
		log.Printf("[session] failed to cleanup expired sessions: %v", result.Error)
		return 0, result.Error
	}

	log.Printf("[session] cleaned up %d expired sessions", result.RowsAffected)
	return result.RowsAffected, nil
}

// RunCleanup calls CleanupExpiredSessions every interval until ctx is done
func (s *AdminSessionService) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleanupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			_, _ = s.CleanupExpiredSessions(cleanupCtx)
			cancel()
		}
	}
}
