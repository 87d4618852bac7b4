package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	catalog "lot-market/internal/catalogService"
	"lot-market/internal/marketerrors"
	model "lot-market/internal/models"
	"lot-market/services/market/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test CreateLotHandler
func TestCreateLotHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewLotHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/lots", handler.CreateLotHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_valid_lot",
			requestBody: helpers.CreateLotRequest{
				UserID:      "user1",
				Kind:        model.KindSale,
				Title:       "Mountain bike",
				Description: "barely used",
				Price:       250,
				Location:    "Berlin",
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateLot("user1", catalog.NewLotFields{
						Kind:        model.KindSale,
						Title:       "Mountain bike",
						Description: "barely used",
						Price:       250,
						Location:    "Berlin",
					}).
					Return(model.Lot{
						LotID:       uuid.NewString(),
						UserID:      "user1",
						Kind:        model.KindSale,
						Title:       "Mountain bike",
						Description: "barely used",
						Price:       250,
						Location:    "Berlin",
						Active:      true,
						CreatedAt:   now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "lot created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				lotID := data["lot_id"].(string)
				require.NotEmpty(t, lotID)
				_, parseErr := uuid.Parse(lotID)
				require.NoError(t, parseErr, "LotID should be a valid UUID")
				require.Equal(t, "user1", data["user_id"])
				require.Equal(t, model.KindSale, data["kind"])
				require.Equal(t, 250.0, data["price"])
				require.Equal(t, true, data["active"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_user_id",
			requestBody: helpers.CreateLotRequest{
				Kind:        model.KindSale,
				Title:       "Mountain bike",
				Description: "barely used",
				Price:       250,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "unknown_kind",
			requestBody: helpers.CreateLotRequest{
				UserID:      "user1",
				Kind:        "rental",
				Title:       "Mountain bike",
				Description: "barely used",
				Price:       250,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "negative_price",
			requestBody: helpers.CreateLotRequest{
				UserID:      "user1",
				Kind:        model.KindSale,
				Title:       "Mountain bike",
				Description: "barely used",
				Price:       -5,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_quota_exceeded",
			requestBody: helpers.CreateLotRequest{
				UserID:      "user1",
				Kind:        model.KindService,
				Title:       "Bike repair",
				Description: "same day",
				Price:       40,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateLot("user1", gomock.Any()).
					Return(model.Lot{}, marketerrors.ErrQuotaExceeded)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "active lot quota exceeded",
		},
		{
			name: "service_unknown_owner",
			requestBody: helpers.CreateLotRequest{
				UserID:      "ghost",
				Kind:        model.KindSale,
				Title:       "Mountain bike",
				Description: "barely used",
				Price:       250,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateLot("ghost", gomock.Any()).
					Return(model.Lot{}, marketerrors.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.CreateLotRequest{
				UserID:      "user1",
				Kind:        model.KindSale,
				Title:       "Mountain bike",
				Description: "barely used",
				Price:       250,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateLot("user1", gomock.Any()).
					Return(model.Lot{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/lots", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewLotHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/lots/:lot_id/bid", handler.PlaceBidHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		lotID          string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:  "success_valid_bid",
			lotID: "lot1",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user1",
				Amount: 100,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("lot1", "user1", 100.0).
					Return(model.Lot{
						LotID:  "lot1",
						UserID: "owner",
						Kind:   model.KindLot,
						Active: true,
						Bids: []model.Bid{
							{BidID: uuid.NewString(), LotID: "lot1", UserID: "user1", Amount: 100, CreatedAt: now},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "lot1", data["lot_id"])
				bids := data["bids"].([]any)
				require.Len(t, bids, 1)
				bid := bids[0].(map[string]any)
				require.Equal(t, "user1", bid["user_id"])
				require.Equal(t, 100.0, bid["amount"])
			},
		},
		{
			name:           "invalid_json",
			lotID:          "lot1",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:  "missing_user_id",
			lotID: "lot1",
			requestBody: helpers.PlaceBidRequest{
				Amount: 100,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:  "zero_amount",
			lotID: "lot1",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user1",
				Amount: 0,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:  "negative_amount",
			lotID: "lot1",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user1",
				Amount: -10,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:  "service_bid_too_low",
			lotID: "lot1",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user1",
				Amount: 50,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("lot1", "user1", 50.0).
					Return(model.Lot{}, marketerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
		},
		{
			name:  "service_lot_not_found",
			lotID: "missing",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user1",
				Amount: 100,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("missing", "user1", 100.0).
					Return(model.Lot{}, marketerrors.ErrLotNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "lot not found",
		},
		{
			name:  "service_generic_error",
			lotID: "lot1",
			requestBody: helpers.PlaceBidRequest{
				UserID: "user1",
				Amount: 100,
			},
			mockSetup: func() {
				mockService.EXPECT().
					PlaceBid("lot1", "user1", 100.0).
					Return(model.Lot{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			url := fmt.Sprintf("/lots/%s/bid", tc.lotID)
			req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test GetBidsHandler
func TestGetBidsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewLotHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/lots/:lot_id/bids", handler.GetBidsHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		lotID          string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data []any)
	}{
		{
			name:  "success_multiple_bids_in_arrival_order",
			lotID: "lot1",
			mockSetup: func() {
				mockService.EXPECT().
					GetBidsForLot("lot1").
					Return([]model.Bid{
						{BidID: "b1", LotID: "lot1", UserID: "user1", Amount: 100, CreatedAt: now},
						{BidID: "b2", LotID: "lot1", UserID: "user2", Amount: 80, CreatedAt: now.Add(time.Second)},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateData: func(t *testing.T, data []any) {
				require.Len(t, data, 2)
				first := data[0].(map[string]any)
				second := data[1].(map[string]any)
				require.Equal(t, "b1", first["bid_id"])
				require.Equal(t, 100.0, first["amount"])
				require.Equal(t, "b2", second["bid_id"])
				require.Equal(t, 80.0, second["amount"])
				require.Equal(t, now.Format(time.RFC3339), first["created_at"])
			},
		},
		{
			name:  "success_no_bids_empty_array",
			lotID: "lot1",
			mockSetup: func() {
				mockService.EXPECT().
					GetBidsForLot("lot1").
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateData: func(t *testing.T, data []any) {
				require.Empty(t, data)
			},
		},
		{
			name:  "lot_not_found",
			lotID: "missing",
			mockSetup: func() {
				mockService.EXPECT().
					GetBidsForLot("missing").
					Return(nil, marketerrors.ErrLotNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "lot not found",
		},
		{
			name:  "service_generic_error",
			lotID: "lot1",
			mockSetup: func() {
				mockService.EXPECT().
					GetBidsForLot("lot1").
					Return(nil, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			url := fmt.Sprintf("/lots/%s/bids", tc.lotID)
			req := httptest.NewRequest(http.MethodGet, url, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].([]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test ListLotsHandler
func TestListLotsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewLotHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/lots", handler.ListLotsHandler)

	tests := []struct {
		name           string
		query          string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data []any)
	}{
		{
			name:  "success_no_filter",
			query: "",
			mockSetup: func() {
				mockService.EXPECT().
					ListLots("", 0).
					Return([]model.Lot{
						{LotID: "l1", Kind: model.KindSale, Active: true},
						{LotID: "l2", Kind: model.KindService, Active: true},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "lots retrieved successfully",
			validateData: func(t *testing.T, data []any) {
				require.Len(t, data, 2)
			},
		},
		{
			name:  "success_kind_and_limit",
			query: "?kind=sale&limit=1",
			mockSetup: func() {
				mockService.EXPECT().
					ListLots(model.KindSale, 1).
					Return([]model.Lot{{LotID: "l1", Kind: model.KindSale, Active: true}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "lots retrieved successfully",
			validateData: func(t *testing.T, data []any) {
				require.Len(t, data, 1)
				lot := data[0].(map[string]any)
				require.Equal(t, model.KindSale, lot["kind"])
			},
		},
		{
			name:  "success_empty_result_is_array",
			query: "?kind=service",
			mockSetup: func() {
				mockService.EXPECT().
					ListLots(model.KindService, 0).
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "lots retrieved successfully",
			validateData: func(t *testing.T, data []any) {
				require.Empty(t, data)
			},
		},
		{
			name:  "unknown_kind_rejected_by_service",
			query: "?kind=rental",
			mockSetup: func() {
				mockService.EXPECT().
					ListLots("rental", 0).
					Return(nil, marketerrors.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/lots"+tc.query, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].([]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test DeleteLotHandler
func TestDeleteLotHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockCatalogServiceInterface(ctrl)
	handler := NewLotHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/lots/:lot_id", handler.DeleteLotHandler)

	tests := []struct {
		name           string
		lotID          string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "success_delete",
			lotID: "lot1",
			mockSetup: func() {
				mockService.EXPECT().DeleteLot("lot1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "lot deleted successfully",
		},
		{
			name:  "lot_not_found",
			lotID: "missing",
			mockSetup: func() {
				mockService.EXPECT().DeleteLot("missing").Return(marketerrors.ErrLotNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "lot not found",
		},
		{
			name:  "service_generic_error",
			lotID: "lot1",
			mockSetup: func() {
				mockService.EXPECT().DeleteLot("lot1").Return(errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			url := fmt.Sprintf("/lots/%s", tc.lotID)
			req := httptest.NewRequest(http.MethodDelete, url, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}
