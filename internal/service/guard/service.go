package guard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guardtrack/guardtrack-backend-go/internal/domain/guard"
)

type GuardServiceImpl struct {
	guard.GuardRepository
}

func NewGuardService(guardRepo guard.GuardRepository) guard.GuardService {
	return &GuardServiceImpl{
		GuardRepository: guardRepo,
	}
}

// creatorIDFromContext extracts guard_id from JWT claims for audit fields
func creatorIDFromContext(ctx context.Context) (*string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	guardID, ok := claims["guard_id"].(string)
	if !ok || guardID == "" {
		return nil, fmt.Errorf("guard_id claim is missing or invalid")
	}
	return &guardID, nil
}

func toGuardResponse(g guard.Guard) guard.GuardResponse {
	return guard.GuardResponse{
		ID:              g.ID,
		Email:           g.Email,
		FullName:        g.FullName,
		Phone:           g.Phone,
		Role:            string(g.Role),
		AvatarURL:       g.AvatarURL,
		ShiftStartTime:  g.ShiftStartTime,
		ShiftEndTime:    g.ShiftEndTime,
		LocationName:    g.LocationName,
		LocationAddress: g.LocationAddress,
		CreatedAt:       g.CreatedAt.Format(time.RFC3339),
	}
}

// CreateGuard implements guard.GuardService.
func (s *GuardServiceImpl) CreateGuard(ctx context.Context, req guard.CreateGuardRequest) (guard.GuardResponse, error) {
	if err := req.Validate(); err != nil {
		return guard.GuardResponse{}, err
	}

	creatorID, err := creatorIDFromContext(ctx)
	if err != nil {
		return guard.GuardResponse{}, err
	}

	if _, err := s.GuardRepository.GetByEmail(ctx, req.Email); err == nil {
		return guard.GuardResponse{}, guard.ErrEmailExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return guard.GuardResponse{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return guard.GuardResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	created, err := s.GuardRepository.Create(ctx, guard.Guard{
		Email:          req.Email,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Role:           guard.RoleSecurity,
		PasswordHash:   &hashStr,
		ShiftStartTime: req.ShiftStartTime,
		ShiftEndTime:   req.ShiftEndTime,
		LocationName:   req.LocationName,
		CreatedBy:      creatorID,
	})
	if err != nil {
		return guard.GuardResponse{}, fmt.Errorf("failed to create guard: %w", err)
	}

	return toGuardResponse(created), nil
}

// GetGuard implements guard.GuardService.
func (s *GuardServiceImpl) GetGuard(ctx context.Context, id string) (guard.GuardResponse, error) {
	g, err := s.GuardRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return guard.GuardResponse{}, guard.ErrGuardNotFound
		}
		return guard.GuardResponse{}, fmt.Errorf("failed to get guard: %w", err)
	}
	return toGuardResponse(g), nil
}

// ListGuards implements guard.GuardService.
func (s *GuardServiceImpl) ListGuards(ctx context.Context) ([]guard.GuardResponse, error) {
	guards, err := s.GuardRepository.ListByRole(ctx, guard.RoleSecurity)
	if err != nil {
		return nil, fmt.Errorf("failed to list guards: %w", err)
	}

	responses := make([]guard.GuardResponse, 0, len(guards))
	for _, g := range guards {
		responses = append(responses, toGuardResponse(g))
	}
	return responses, nil
}

// UpdateGuard implements guard.GuardService.
func (s *GuardServiceImpl) UpdateGuard(ctx context.Context, req guard.UpdateGuardRequest) (guard.GuardResponse, error) {
	if err := req.Validate(); err != nil {
		return guard.GuardResponse{}, err
	}

	g, err := s.GuardRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return guard.GuardResponse{}, guard.ErrGuardNotFound
		}
		return guard.GuardResponse{}, fmt.Errorf("failed to get guard: %w", err)
	}

	if req.FullName != nil {
		g.FullName = *req.FullName
	}
	if req.Phone != nil {
		g.Phone = *req.Phone
	}
	if req.ShiftStartTime != nil {
		g.ShiftStartTime = req.ShiftStartTime
	}
	if req.ShiftEndTime != nil {
		g.ShiftEndTime = req.ShiftEndTime
	}
	if req.LocationName != nil {
		g.LocationName = req.LocationName
	}
	if req.LocationAddress != nil {
		g.LocationAddress = req.LocationAddress
	}

	if err := s.GuardRepository.Update(ctx, g); err != nil {
		return guard.GuardResponse{}, fmt.Errorf("failed to update guard: %w", err)
	}
	return toGuardResponse(g), nil
}

// DeleteGuard implements guard.GuardService.
func (s *GuardServiceImpl) DeleteGuard(ctx context.Context, id string) error {
	g, err := s.GuardRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return guard.ErrGuardNotFound
		}
		return fmt.Errorf("failed to get guard: %w", err)
	}
	if g.IsSupervisor() {
		return guard.ErrCannotDeleteSupervisor
	}

	if err := s.GuardRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete guard: %w", err)
	}
	return nil
}
