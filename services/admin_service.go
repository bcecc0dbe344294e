package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

// AdminService reads the CMS admin directory
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) FindAdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin: %w", err)
	}
	return &admin, nil
}

// EnsureAdmin returns the admin with the given email, creating it when missing
func (s *AdminService) EnsureAdmin(ctx context.Context, email, name, role string) (*models.Admin, error) {
	admin := models.Admin{
		Email: strings.ToLower(strings.TrimSpace(email)),
		Name:  name,
		Role:  role,
	}
	err := s.db.WithContext(ctx).
		Where(models.Admin{Email: admin.Email}).
		Attrs(models.Admin{Name: admin.Name, Role: admin.Role, Status: models.AdminStatusActive}).
		FirstOrCreate(&admin).Error
	if err != nil {
		return nil, fmt.Errorf("failed to ensure admin %s: %w", admin.Email, err)
	}
	return &admin, nil
}
