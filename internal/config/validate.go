package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Server.AuthRateLimit < 0 {
		return fmt.Errorf("server.auth_rate_limit must be >= 0 (got %d)", c.Server.AuthRateLimit)
	}

	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	if err := c.Portal.validate(); err != nil {
		return fmt.Errorf("portal: %w", err)
	}

	return nil
}

func (s *SchedulerConfig) validate() error {
	if s.ReminderDaysAhead < 0 {
		return fmt.Errorf("reminder_days_ahead must be >= 0 (got %d)", s.ReminderDaysAhead)
	}
	if !s.Enabled {
		return nil
	}
	if _, err := cron.ParseStandard(s.ExpiryReminderCron); err != nil {
		return fmt.Errorf("expiry_reminder_cron %q: %w", s.ExpiryReminderCron, err)
	}
	return nil
}

func (p *PortalConfig) validate() error {
	if p.MaxBulkUpdate <= 0 {
		return fmt.Errorf("max_bulk_update must be > 0 (got %d)", p.MaxBulkUpdate)
	}
	if p.MaxNoteLength <= 0 {
		return fmt.Errorf("max_note_length must be > 0 (got %d)", p.MaxNoteLength)
	}
	if p.MaxCoverLetter <= 0 {
		return fmt.Errorf("max_cover_letter must be > 0 (got %d)", p.MaxCoverLetter)
	}
	if p.MatchFanoutLimit <= 0 {
		return fmt.Errorf("match_fanout_limit must be > 0 (got %d)", p.MatchFanoutLimit)
	}
	return nil
}
