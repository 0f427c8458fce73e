package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"passat/config"
	"passat/infras/otel/mocks"
	roomMocks "passat/internal/domains/room/mocks"
	"passat/internal/domains/room/model"
	"passat/internal/domains/room/service"
	cacheMocks "passat/shared/cache/mocks"
	"passat/shared/constant"
	gDto "passat/shared/dto"
	"passat/shared/failure"

	"passat/internal/domains/room/model/dto"
)

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	req := dto.CreateRoomRequest{
		Number:     "101",
		Name:       "Seeblick",
		RoomTypeID: "b3c1e6c0-08a8-4a9b-b51c-3c3dd1f3e8af",
		Capacity:   2,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "duplicate room number",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505", Constraint: "rooms_number_key"})
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "unknown room type",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23503", Constraint: "rooms_room_type_id_fkey"})
			},
			wantErr:  true,
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_ListAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	rooms := []model.Room{
		{
			ID:          "room-1",
			Number:      "101",
			Name:        "Seeblick",
			NightlyRate: decimal.RequireFromString("129.00"),
			Active:      true,
		},
	}

	tests := []struct {
		name      string
		arrival   string
		departure string
		setupMock func()
		wantErr   bool
		wantRooms int
	}{
		{
			name:      "rooms free in the requested range",
			arrival:   "2026-03-01",
			departure: "2026-03-04",
			setupMock: func() {
				mockRepo.EXPECT().
					ListAvailable(
						gomock.Any(),
						time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
						time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
					).
					Return(rooms, nil)
			},
			wantErr:   false,
			wantRooms: 1,
		},
		{
			name:      "invalid arrival",
			arrival:   "01.03.2026",
			departure: "2026-03-04",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "departure equals arrival",
			arrival:   "2026-03-04",
			departure: "2026-03-04",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "repository error",
			arrival:   "2026-03-01",
			departure: "2026-03-04",
			setupMock: func() {
				mockRepo.EXPECT().
					ListAvailable(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ListAvailable(context.Background(), tt.arrival, tt.departure)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.arrival, res.Arrival)
				assert.Equal(t, tt.departure, res.Departure)
				assert.Len(t, res.Rooms, tt.wantRooms)
			}
		})
	}
}

func TestRoomService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	t.Run("empty query short-circuits", func(t *testing.T) {
		res, err := svc.Search(context.Background(), constant.Empty)

		assert.NoError(t, err)
		assert.Empty(t, res.Results)
	})

	t.Run("query is capped to the search limit", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Room, error) {
				assert.Equal(t, constant.SearchResultLimit, params.Limit)

				return []model.Room{{ID: "room-1", Number: "101", Name: "Seeblick"}}, nil
			})

		res, err := svc.Search(context.Background(), "101")

		assert.NoError(t, err)
		assert.Len(t, res.Results, 1)
		assert.Equal(t, "101", res.Results[0].Number)
	})
}
