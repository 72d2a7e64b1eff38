package stable

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=stable
type Repository interface {
	CreateOwner(ctx context.Context, o *Owner) error
	GetOwner(ctx context.Context, id uuid.UUID) (*Owner, error)
	ListOwners(ctx context.Context) ([]Owner, error)
	RenameOwner(ctx context.Context, id uuid.UUID, name string) error

	// DeleteOwner removes the owner, its horses, and every log entry
	// referencing those horses in one transaction.
	DeleteOwner(ctx context.Context, id uuid.UUID) error

	CreateHorse(ctx context.Context, h *Horse) error
	GetHorse(ctx context.Context, id uuid.UUID) (*Horse, error)
	ListHorses(ctx context.Context) ([]Horse, error)

	// DeleteHorse removes the horse and every log entry referencing it.
	DeleteHorse(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddOwner(ctx context.Context, name string) (*Owner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	o := &Owner{Name: name}
	if err := s.repo.CreateOwner(ctx, o); err != nil {
		return nil, fmt.Errorf("creating owner: %w", err)
	}

	return o, nil
}

func (s *Service) RenameOwner(ctx context.Context, id uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	return s.repo.RenameOwner(ctx, id, name)
}

func (s *Service) GetOwner(ctx context.Context, id uuid.UUID) (*Owner, error) {
	return s.repo.GetOwner(ctx, id)
}

func (s *Service) ListOwners(ctx context.Context) ([]Owner, error) {
	return s.repo.ListOwners(ctx)
}

// RemoveOwner cascades: the owner's horses and their log entries go with it.
func (s *Service) RemoveOwner(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteOwner(ctx, id)
}

func (s *Service) AddHorse(ctx context.Context, ownerID uuid.UUID, name string) (*Horse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	if _, err := s.repo.GetOwner(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("resolving owner: %w", err)
	}

	h := &Horse{Name: name, OwnerID: ownerID}
	if err := s.repo.CreateHorse(ctx, h); err != nil {
		return nil, fmt.Errorf("creating horse: %w", err)
	}

	return h, nil
}

func (s *Service) GetHorse(ctx context.Context, id uuid.UUID) (*Horse, error) {
	return s.repo.GetHorse(ctx, id)
}

func (s *Service) ListHorses(ctx context.Context) ([]Horse, error) {
	return s.repo.ListHorses(ctx)
}

// HorsesForOwner filters the stable down to one owner's horses.
func (s *Service) HorsesForOwner(ctx context.Context, ownerID uuid.UUID) ([]Horse, error) {
	horses, err := s.repo.ListHorses(ctx)
	if err != nil {
		return nil, err
	}

	var out []Horse

	for _, h := range horses {
		if h.OwnerID == ownerID {
			out = append(out, h)
		}
	}

	return out, nil
}

func (s *Service) RemoveHorse(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteHorse(ctx, id)
}
