package job

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/jobportal-backend/internal/domain"
)

// notifyMatches tells every seeker with an overlapping skill about a new
// posting, at most once per seeker. Seekers are scanned page by page in id
// order until the store is exhausted. Failures are logged and skipped.
func (s *Service) notifyMatches(ctx context.Context, job *domain.JobView) {
	msg := jobMatchMessage(job.Title, job.CompanyName)
	pageSize := s.cfg.MatchFanoutLimit
	sent := 0

	var after int64
	for {
		profiles, err := s.resumes.ListSkillProfiles(ctx, after, pageSize)
		if err != nil {
			s.log.ErrorContext(ctx, "list skill profiles for job match",
				slog.Int64("job_id", job.ID),
				slog.Int64("after_seeker_id", after),
				slog.String("error", err.Error()),
			)
			break
		}

		for _, p := range profiles {
			if !domain.MatchesSkills(domain.SplitSkills(p.Skills), job.SkillsRequired) {
				continue
			}
			if _, err := s.notifier.Send(ctx, p.UserID, msg); err != nil {
				s.log.WarnContext(ctx, "job match notification failed",
					slog.Int64("job_id", job.ID),
					slog.Int64("seeker_id", p.SeekerID),
					slog.String("error", err.Error()),
				)
				continue
			}
			sent++
		}

		if len(profiles) < pageSize {
			break
		}
		after = profiles[len(profiles)-1].SeekerID
	}

	if sent > 0 {
		s.log.InfoContext(ctx, "job match notifications sent",
			slog.Int64("job_id", job.ID),
			slog.Int("count", sent),
		)
	}
}
