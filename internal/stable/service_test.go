package stable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stablemate/internal/stable"
)

func TestService_AddOwner(t *testing.T) {
	type testCase struct {
		name      string
		owner     string
		setupMock func(m *stable.MockRepository)
		wantErr   error
		wantName  string
	}

	tests := []testCase{
		{
			name:  "Success",
			owner: "Jane",
			setupMock: func(m *stable.MockRepository) {
				m.EXPECT().
					CreateOwner(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *stable.Owner) error {
						o.ID = uuid.New()
						return nil
					})
			},
			wantName: "Jane",
		},
		{
			name:  "TrimsWhitespace",
			owner: "  Jane  ",
			setupMock: func(m *stable.MockRepository) {
				m.EXPECT().CreateOwner(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantName: "Jane",
		},
		{
			name:    "EmptyName",
			owner:   "   ",
			wantErr: stable.ErrEmptyName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := stable.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := stable.NewService(repo)
			got, err := svc.AddOwner(context.Background(), tt.owner)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
		})
	}
}

func TestService_AddHorse(t *testing.T) {
	ownerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := stable.NewMockRepository(ctrl)

		repo.EXPECT().GetOwner(gomock.Any(), ownerID).Return(&stable.Owner{ID: ownerID, Name: "Jane"}, nil)
		repo.EXPECT().CreateHorse(gomock.Any(), gomock.Any()).Return(nil)

		svc := stable.NewService(repo)
		h, err := svc.AddHorse(context.Background(), ownerID, "Bramble")
		require.NoError(t, err)
		assert.Equal(t, "Bramble", h.Name)
		assert.Equal(t, ownerID, h.OwnerID)
	})

	t.Run("UnknownOwner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := stable.NewMockRepository(ctrl)

		repo.EXPECT().GetOwner(gomock.Any(), ownerID).Return(nil, stable.ErrNotFound)

		svc := stable.NewService(repo)
		_, err := svc.AddHorse(context.Background(), ownerID, "Bramble")
		assert.ErrorIs(t, err, stable.ErrNotFound)
	})

	t.Run("EmptyName", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := stable.NewMockRepository(ctrl)

		svc := stable.NewService(repo)
		_, err := svc.AddHorse(context.Background(), ownerID, "  ")
		assert.ErrorIs(t, err, stable.ErrEmptyName)
	})
}

func TestService_RenameOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := stable.NewMockRepository(ctrl)
	svc := stable.NewService(repo)

	id := uuid.New()

	repo.EXPECT().RenameOwner(gomock.Any(), id, "Janet").Return(nil)
	assert.NoError(t, svc.RenameOwner(context.Background(), id, " Janet "))

	assert.ErrorIs(t, svc.RenameOwner(context.Background(), id, ""), stable.ErrEmptyName)
}

func TestService_HorsesForOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := stable.NewMockRepository(ctrl)
	svc := stable.NewService(repo)

	jane := uuid.New()
	anna := uuid.New()

	repo.EXPECT().ListHorses(gomock.Any()).Return([]stable.Horse{
		{ID: uuid.New(), Name: "Bramble", OwnerID: jane},
		{ID: uuid.New(), Name: "Comet", OwnerID: anna},
		{ID: uuid.New(), Name: "Apollo", OwnerID: jane},
	}, nil)

	horses, err := svc.HorsesForOwner(context.Background(), jane)
	require.NoError(t, err)
	require.Len(t, horses, 2)
	assert.Equal(t, "Bramble", horses[0].Name)
	assert.Equal(t, "Apollo", horses[1].Name)
}

func TestService_RemoveOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := stable.NewMockRepository(ctrl)
	svc := stable.NewService(repo)

	id := uuid.New()

	repo.EXPECT().DeleteOwner(gomock.Any(), id).Return(errors.New("db error"))
	assert.Error(t, svc.RemoveOwner(context.Background(), id))
}
