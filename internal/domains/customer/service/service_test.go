package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"passat/config"
	"passat/infras/otel/mocks"
	customerMocks "passat/internal/domains/customer/mocks"
	"passat/internal/domains/customer/model"
	"passat/internal/domains/customer/model/dto"
	"passat/internal/domains/customer/service"
	cacheMocks "passat/shared/cache/mocks"
	"passat/shared/constant"
	"passat/shared/failure"
)

func TestCustomerService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	validReq := dto.CreateCustomerRequest{
		FirstName:      "Erika",
		LastName:       "Mustermann",
		Email:          "erika.mustermann@example.com",
		Street:         "Heidestraße 17",
		PostalCode:     "10557",
		City:           "Berlin",
		PrivacyConsent: true,
	}

	tests := []struct {
		name      string
		req       dto.CreateCustomerRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, customer model.Customer) error {
						assert.Equal(t, model.DefaultCountry, customer.Country)
						assert.True(t, customer.PrivacyConsent)

						return nil
					})

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "missing privacy consent",
			req: dto.CreateCustomerRequest{
				FirstName:  "Erika",
				LastName:   "Mustermann",
				Email:      "erika.mustermann@example.com",
				Street:     "Heidestraße 17",
				PostalCode: "10557",
				City:       "Berlin",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	withdraw := false
	keep := true

	tests := []struct {
		name      string
		req       dto.UpdateCustomerRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateCustomerRequest{City: "Hamburg", PrivacyConsent: &keep},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{ID: "test-id"}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "consent cannot be withdrawn by update",
			req:  dto.UpdateCustomerRequest{PrivacyConsent: &withdraw},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "customer not found",
			req:  dto.UpdateCustomerRequest{City: "Hamburg"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "test-id")

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

func TestCustomerService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
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

	t.Run("matching customers", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Customer{
				{ID: "customer-1", FirstName: "Erika", LastName: "Mustermann"},
			}, nil)

		res, err := svc.Search(context.Background(), "muster")

		assert.NoError(t, err)
		assert.Len(t, res.Results, 1)
		assert.Equal(t, "Erika Mustermann", res.Results[0].Name)
	})
}
