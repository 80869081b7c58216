package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/dom/teyvat-archive/internal/domain"
	"github.com/dom/teyvat-archive/internal/metrics"
	"github.com/dom/teyvat-archive/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type TeamService struct {
	teamRepo repository.TeamRepository
	validate *validator.Validate
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewTeamService(teamRepo repository.TeamRepository, m *metrics.Manager) *TeamService {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &TeamService{
		teamRepo: teamRepo,
		validate: v,
		metrics:  m,
		now:      time.Now,
	}
}

// CreateTeamInput is the accepted shape for a new team. Description and
// synergies must be present but may be empty; character ids are not checked
// against the catalog.
type CreateTeamInput struct {
	Name         string   `json:"name" validate:"required"`
	CharacterIDs []string `json:"characterIds" validate:"required,min=1,max=4"`
	Description  *string  `json:"description" validate:"required"`
	Synergies    []string `json:"synergies" validate:"required"`
}

func (s *TeamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.GetAll(ctx)
}

// GetTeam returns nil without an error when the id is unknown
func (s *TeamService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	return s.teamRepo.GetByID(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (*domain.Team, error) {
	if err := s.validateInput(input); err != nil {
		s.metrics.TeamRejected()
		return nil, err
	}

	team := &domain.Team{
		ID:           uuid.New().String(),
		Name:         input.Name,
		CharacterIDs: append([]string{}, input.CharacterIDs...),
		Description:  *input.Description,
		Synergies:    append([]string{}, input.Synergies...),
		CreatedAt:    s.now(),
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to save team: %w", err)
	}

	s.metrics.TeamCreated()
	return team, nil
}

// DeleteTeam removes the team if it exists; unknown ids are ignored
func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	s.metrics.TeamDeleted()
	return nil
}

func (s *TeamService) validateInput(input CreateTeamInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &domain.ValidationError{
			Field:  fe.Field(),
			Reason: describeFieldError(fe),
			Err:    domain.ErrInvalidTeam,
		}
	}
	return &domain.ValidationError{Reason: err.Error(), Err: domain.ErrInvalidTeam}
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s entries", fe.Param())
	case "max":
		return fmt.Sprintf("must contain at most %s entries", fe.Param())
	default:
		return "failed " + fe.Tag() + " check"
	}
}
