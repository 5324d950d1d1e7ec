package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/family-trips/internal/domain"
	"github.com/pkordes/family-trips/internal/repo"
)

// FamilyService implements business logic for family members.
type FamilyService struct {
	repo repo.FamilyRepo
}

// NewFamilyService constructs a FamilyService backed by the provided FamilyRepo.
func NewFamilyService(r repo.FamilyRepo) *FamilyService {
	return &FamilyService{repo: r}
}

// List returns all family members.
func (s *FamilyService) List(ctx context.Context) ([]domain.FamilyMember, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.FamilyService.List: %w", err)
	}
	return emptyIfNil(members), nil
}

// Create validates and persists a new family member.
// Name and role are required; role must be parent or teen.
func (s *FamilyService) Create(ctx context.Context, in domain.FamilyMemberInput) (domain.FamilyMember, error) {
	name, rawRole := trimmed(in.Name), trimmed(in.Role)
	if name == "" || rawRole == "" {
		return domain.FamilyMember{}, domain.Invalid("Name and role are required")
	}
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return domain.FamilyMember{}, err
	}

	member := domain.FamilyMember{Name: name, Role: role, Email: patchText(nil, in.Email)}
	result, err := s.repo.Create(ctx, member)
	if err != nil {
		return domain.FamilyMember{}, fmt.Errorf("service.FamilyService.Create: %w", err)
	}
	return result, nil
}

// Update applies a partial update to a family member.
func (s *FamilyService) Update(ctx context.Context, id uuid.UUID, in domain.FamilyMemberInput) (domain.FamilyMember, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.FamilyMember{}, fmt.Errorf("service.FamilyService.Update: %w", mapNotFound(err, "Family member not found"))
	}

	if member.Name, err = patchRequired(member.Name, in.Name, "Name"); err != nil {
		return domain.FamilyMember{}, err
	}
	if in.Role != nil {
		if member.Role, err = domain.ParseRole(*in.Role); err != nil {
			return domain.FamilyMember{}, err
		}
	}
	member.Email = patchText(member.Email, in.Email)

	result, err := s.repo.Update(ctx, member)
	if err != nil {
		return domain.FamilyMember{}, fmt.Errorf("service.FamilyService.Update: %w", mapNotFound(err, "Family member not found"))
	}
	return result, nil
}

// Delete removes a family member. Linked trip participants keep their rows
// with the link cleared.
func (s *FamilyService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.FamilyService.Delete: %w", mapNotFound(err, "Family member not found"))
	}
	return nil
}
