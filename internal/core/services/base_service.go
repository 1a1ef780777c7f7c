package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/club_billing_app/internal/apperrors"
	portsrepo "github.com/SscSPs/club_billing_app/internal/core/ports/repositories"
	"github.com/SscSPs/club_billing_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	TenantGuard portsrepo.TenantReader
	Clock       func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// Today returns the current date at UTC midnight.
func (s *BaseService) Today() time.Time {
	now := s.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// AuthorizeTenant checks that the tenant exists and accepts writes.
func (s *BaseService) AuthorizeTenant(ctx context.Context, tenantID string) error {
	if tenantID == "" {
		return fmt.Errorf("%w: tenant ID is required", apperrors.ErrValidation)
	}
	if s.TenantGuard == nil {
		s.LogDebug(ctx, "No tenant guard provided, tenant accepted by default",
			slog.String("tenant_id", tenantID))
		return nil
	}
	tenant, err := s.TenantGuard.FindTenantByID(ctx, tenantID)
	if err != nil {
		return err
	}
	if !tenant.IsActive {
		return fmt.Errorf("%w: tenant %s is disabled", apperrors.ErrValidation, tenantID)
	}
	return nil
}
