package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

const activityLogTimeout = 5 * time.Second

// ActivityLogService writes admin actions to the CMS activity_logs table.
// Writes run in the background; Drain waits for the ones still in flight.
type ActivityLogService struct {
	insert func(ctx context.Context, entry *models.ActivityLog) error
	wg     sync.WaitGroup
}

func NewActivityLogService(db *gorm.DB) *ActivityLogService {
	return &ActivityLogService{
		insert: func(ctx context.Context, entry *models.ActivityLog) error {
			return db.WithContext(ctx).Create(entry).Error
		},
	}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	Principal    *models.Principal
	Action       string         // ActionViewAnalytics, ActionExportAnalyticsReport
	ResourceType string         // ResourceTypeAnalytics
	Details      map[string]any // {time_range, status_code}
	Status       string         // StatusSuccess or StatusFailed
	IPAddress    string
	UserAgent    string
}

// Record stores one entry in the background with its own timeout, so it can
// outlive the request. Failures are logged and swallowed.
func (s *ActivityLogService) Record(req LogActivityRequest) {
	if req.Principal == nil {
		log.Printf("[activity-log] warning: no principal for action %s", req.Action)
		return
	}

	entry := BuildActivityLog(req)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.write(&entry, req)
	}()
}

func (s *ActivityLogService) write(entry *models.ActivityLog, req LogActivityRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), activityLogTimeout)
	defer cancel()

	if err := s.insert(ctx, entry); err != nil {
		log.Printf("[activity-log] failed to create activity log: %v", err)
		return
	}

	log.Printf("[activity-log] %s: %s by %s (%s)", req.Action, req.ResourceType, req.Principal.Email, entry.Status)
}

// Drain blocks until every pending write has finished or ctx is done.
func (s *ActivityLogService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain activity logs: %w", ctx.Err())
	}
}

// BuildActivityLog maps a request onto the stored row
func BuildActivityLog(req LogActivityRequest) models.ActivityLog {
	details := datatypes.JSON("{}")
	if req.Details != nil {
		data, err := json.Marshal(req.Details)
		if err != nil {
			log.Printf("[activity-log] failed to marshal details: %v", err)
		} else {
			details = data
		}
	}

	status := req.Status
	if status == "" {
		status = models.StatusSuccess
	}

	entry := models.ActivityLog{
		Action:       req.Action,
		ResourceType: req.ResourceType,
		Details:      details,
		Status:       status,
		IPAddress:    req.IPAddress,
		UserAgent:    req.UserAgent,
	}
	if req.Principal != nil {
		entry.PrincipalID = req.Principal.ID
		entry.Email = req.Principal.Email
		entry.Source = req.Principal.Source
	}
	return entry
}
