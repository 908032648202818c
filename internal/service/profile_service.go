package service

import (
	"context"
	"math"
	"time"

	"flou-backend/internal/dto"
	"flou-backend/internal/entity"
	"flou-backend/internal/pkg/i18n"
	"flou-backend/internal/pkg/serverutils"
	"flou-backend/internal/repository/specification"
	"flou-backend/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProfileService interface {
	GetMe(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	UpdateSettings(ctx context.Context, userId uuid.UUID, req *dto.UpdateSettingsRequest, lang string) (*dto.UpdateSettingsResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error)
	GetStats(ctx context.Context, userId uuid.UUID) (*dto.ProfileStatsResponse, error)
	// ResolveLanguage picks the response language: stored preference first,
	// then the Accept-Language header, then the default.
	ResolveLanguage(ctx context.Context, userId uuid.UUID, acceptLanguage string) string
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{uowFactory: uowFactory}
}

func (s *profileService) GetMe(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, serverutils.NewNotFoundError("profile not found")
	}

	return &dto.ProfileResponse{
		Id:                 profile.Id,
		FullName:           profile.FullName,
		Role:               profile.Role,
		InstitutionId:      profile.InstitutionId,
		CareerProgram:      profile.CareerProgram,
		Semester:           profile.Semester,
		Age:                profile.Age,
		AvatarURL:          profile.AvatarURL,
		ThemePreference:    string(profile.ThemePreference),
		LanguagePreference: string(profile.LanguagePreference),
		ResearchConsent:    profile.ResearchConsent,
		HealthConditions:   profile.HealthConditions,
		Neurodivergence:    profile.Neurodivergence,
		CreatedAt:          profile.CreatedAt,
		UpdatedAt:          profile.UpdatedAt,
	}, nil
}

func (s *profileService) UpdateSettings(ctx context.Context, userId uuid.UUID, req *dto.UpdateSettingsRequest, lang string) (*dto.UpdateSettingsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProfileRepository()

	profile, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, serverutils.NewNotFoundError("profile not found")
	}

	if req.ThemePreference != nil {
		profile.ThemePreference = entity.ThemePreference(*req.ThemePreference)
	}
	if req.LanguagePreference != nil {
		profile.LanguagePreference = entity.LanguagePreference(*req.LanguagePreference)
		lang = *req.LanguagePreference
	}
	if req.ResearchConsent != nil {
		profile.ResearchConsent = *req.ResearchConsent
	}

	if err := repo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return &dto.UpdateSettingsResponse{
		Message: i18n.T("profile_update_success", lang),
	}, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ProfileRepository()

	profile, err := repo.FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, serverutils.NewNotFoundError("profile not found")
	}

	updated := make([]string, 0, 6)
	if req.FullName != nil {
		profile.FullName = req.FullName
		updated = append(updated, "full_name")
	}
	if req.CareerProgram != nil {
		profile.CareerProgram = req.CareerProgram
		updated = append(updated, "career_program")
	}
	if req.Semester != nil {
		profile.Semester = req.Semester
		updated = append(updated, "semester")
	}
	if req.Age != nil {
		profile.Age = req.Age
		updated = append(updated, "age")
	}
	if req.HealthConditions != nil {
		profile.HealthConditions = *req.HealthConditions
		updated = append(updated, "health_conditions")
	}
	if req.Neurodivergence != nil {
		profile.Neurodivergence = *req.Neurodivergence
		updated = append(updated, "neurodivergence")
	}

	if len(updated) == 0 {
		return &dto.UpdateProfileResponse{UpdatedFields: updated}, nil
	}

	if err := repo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return &dto.UpdateProfileResponse{UpdatedFields: updated}, nil
}

func (s *profileService) GetStats(ctx context.Context, userId uuid.UUID) (*dto.ProfileStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	checkinRepo := uow.CheckinRepository()

	total, err := checkinRepo.Count(ctx, specification.ByUserID{UserID: userId})
	if err != nil {
		return nil, err
	}

	// A year of daily check-ins bounds the streak window.
	checkins, err := checkinRepo.FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: 365},
	)
	if err != nil {
		return nil, err
	}

	stats := &dto.ProfileStatsResponse{
		CheckinStreak: computeCheckinStreak(checkins, time.Now()),
		TotalCheckins: int(total),
		LastMoods:     make([]string, 0, 5),
		GeneratedAt:   time.Now(),
	}

	if len(checkins) == 0 {
		return stats, nil
	}

	scoreSum := 0
	moodCounts := map[string]int{}
	for i, c := range checkins {
		if i < 5 {
			stats.LastMoods = append(stats.LastMoods, c.MoodLabel)
		}
		scoreSum += c.MoodScore
		moodCounts[c.MoodLabel]++
	}

	stats.AverageMoodScore = math.Round(float64(scoreSum)/float64(len(checkins))*100) / 100

	dominant, best := "", 0
	for mood, count := range moodCounts {
		if count > best {
			dominant, best = mood, count
		}
	}
	if dominant != "" {
		stats.DominantMood = &dominant
	}

	return stats, nil
}

func (s *profileService) ResolveLanguage(ctx context.Context, userId uuid.UUID, acceptLanguage string) string {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	stored := ""
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err == nil && profile != nil {
		stored = string(profile.LanguagePreference)
	}
	return i18n.Resolve(stored, acceptLanguage)
}
