package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cospace/config"
	otelMocks "cospace/infras/otel/mocks"
	bookingMocks "cospace/internal/domains/booking/mocks"
	workspaceMocks "cospace/internal/domains/workspace/mocks"
	"cospace/internal/domains/workspace/model"
	"cospace/internal/domains/workspace/model/dto"
	"cospace/internal/domains/workspace/service"
	cacheMocks "cospace/shared/cache/mocks"
	"cospace/shared/constant"
	gDto "cospace/shared/dto"
	"cospace/shared/failure"
)

const testUserID = "7f3b2c1d-0000-4000-8000-000000000001"

type workspaceFixture struct {
	svc         service.Workspace
	repo        *workspaceMocks.MockWorkspace
	bookingRepo *bookingMocks.MockBooking
	cache       *cacheMocks.MockRedisCache
}

func newWorkspaceFixture(t *testing.T) workspaceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := workspaceMocks.NewMockWorkspace(ctrl)
	bookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	svc := service.New(repo, bookingRepo, cfg, mockCache, otelMocks.NewOtel())

	return workspaceFixture{
		svc:         svc,
		repo:        repo,
		bookingRepo: bookingRepo,
		cache:       mockCache,
	}
}

func sampleWorkspaces() []model.Workspace {
	return []model.Workspace{
		{ID: "ws-1", Number: "A-101", Type: "desk"},
		{ID: "ws-2", Number: "A-102", Type: "desk"},
		{ID: "ws-3", Number: "M-201", Type: "meeting_room"},
	}
}

func TestWorkspaceService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, testUserID)

	t.Run("creates a workspace", func(t *testing.T) {
		f := newWorkspaceFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Create(ctx, dto.CreateWorkspaceRequest{Number: "A-101", Type: "desk"})

		require.NoError(t, err)
		assert.Equal(t, "A-101", res.Number)
		assert.Equal(t, constant.WorkspaceStatusAvailable, res.Status)
	})

	t.Run("rejects a duplicate workspace number", func(t *testing.T) {
		f := newWorkspaceFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Create(ctx, dto.CreateWorkspaceRequest{Number: "A-101", Type: "desk"})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestWorkspaceService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the workspace", func(t *testing.T) {
		f := newWorkspaceFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleWorkspaces()[0], nil)

		res, err := f.svc.Get(ctx, "ws-1")

		require.NoError(t, err)
		assert.Equal(t, "ws-1", res.ID)
	})

	t.Run("unknown workspace", func(t *testing.T) {
		f := newWorkspaceFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Workspace{}, nil)

		_, err := f.svc.Get(ctx, "ws-404")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestWorkspaceService_GetAll(t *testing.T) {
	ctx := context.Background()

	window := &dto.AvailabilityWindow{
		StartTime: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("windowless listing carries no occupancy and is cached", func(t *testing.T) {
		f := newWorkspaceFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Workspace, error) {
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return sampleWorkspaces(), nil
			})
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.GetAll(ctx, nil)

		require.NoError(t, err)
		require.Len(t, res.Workspaces, 3)

		for _, ws := range res.Workspaces {
			assert.Equal(t, constant.WorkspaceStatusAvailable, ws.Status)
		}
	})

	t.Run("windowed listing marks overlapping workspaces booked", func(t *testing.T) {
		f := newWorkspaceFixture(t)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleWorkspaces(), nil)
		f.bookingRepo.EXPECT().
			BookedWorkspaceIDs(gomock.Any(), window.StartTime, window.EndTime).
			Return(map[string]struct{}{"ws-2": {}}, nil)

		res, err := f.svc.GetAll(ctx, window)

		require.NoError(t, err)
		require.Len(t, res.Workspaces, 3)
		assert.Equal(t, constant.WorkspaceStatusAvailable, res.Workspaces[0].Status)
		assert.Equal(t, constant.WorkspaceStatusBooked, res.Workspaces[1].Status)
		assert.Equal(t, constant.WorkspaceStatusAvailable, res.Workspaces[2].Status)
	})

	t.Run("inverted window is rejected", func(t *testing.T) {
		f := newWorkspaceFixture(t)

		_, err := f.svc.GetAll(ctx, &dto.AvailabilityWindow{
			StartTime: window.EndTime,
			EndTime:   window.StartTime,
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("windowed listing never reads the cache", func(t *testing.T) {
		f := newWorkspaceFixture(t)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(sampleWorkspaces(), nil)
		f.bookingRepo.EXPECT().
			BookedWorkspaceIDs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(map[string]struct{}{}, nil)

		_, err := f.svc.GetAll(ctx, window)

		require.NoError(t, err)
	})
}
