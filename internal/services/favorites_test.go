package services

import (
	"context"
	"testing"
	"time"

	"github.com/localeats/localeats-cli/internal/cache"
	"github.com/localeats/localeats-cli/internal/client"
	"github.com/localeats/localeats-cli/internal/client/mocks"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/localeats/localeats-cli/internal/session"
	"go.uber.org/mock/gomock"
)

func TestFavoritesService_Toggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	testCases := []struct {
		TestName         string
		RestaurantID     string
		AlreadyFavorite  bool
		SetupMocks       func()
		ExpectedFavorite bool
		ExpectError      bool
	}{
		{
			TestName:        "Success. Add favorite #1",
			RestaurantID:    "rest-1",
			AlreadyFavorite: false,
			SetupMocks: func() {
				mockAPI.EXPECT().AddFavorite(gomock.Any(), "rest-1").Return(nil)
			},
			ExpectedFavorite: true,
			ExpectError:      false,
		},
		{
			TestName:        "Success. Remove favorite #2",
			RestaurantID:    "rest-2",
			AlreadyFavorite: true,
			SetupMocks: func() {
				mockAPI.EXPECT().RemoveFavorite(gomock.Any(), "rest-2").Return(nil)
			},
			ExpectedFavorite: false,
			ExpectError:      false,
		},
		{
			TestName:        "Error. Add rolls back #3",
			RestaurantID:    "rest-3",
			AlreadyFavorite: false,
			SetupMocks: func() {
				mockAPI.EXPECT().AddFavorite(gomock.Any(), "rest-3").
					Return(client.ErrServiceUnavailable)
			},
			ExpectedFavorite: false,
			ExpectError:      true,
		},
		{
			TestName:        "Error. Remove rolls back #4",
			RestaurantID:    "rest-4",
			AlreadyFavorite: true,
			SetupMocks: func() {
				mockAPI.EXPECT().RemoveFavorite(gomock.Any(), "rest-4").
					Return(client.ErrServiceUnavailable)
			},
			ExpectedFavorite: true,
			ExpectError:      true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			userSession := session.NewSession()
			if tc.AlreadyFavorite {
				userSession.AddFavorite(tc.RestaurantID)
			}
			favorites := NewFavorites(mockAPI, cache.NewCache(), userSession)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			isFavorite, err := favorites.Toggle(ctx, tc.RestaurantID)

			if tc.ExpectError && err == nil {
				t.Error("Expected error, got none")
			}
			if !tc.ExpectError && err != nil {
				t.Errorf("Expected no error, got '%v'", err)
			}
			if isFavorite != tc.ExpectedFavorite {
				t.Errorf("Expected favorite=%v, got %v", tc.ExpectedFavorite, isFavorite)
			}
			// сессия соответствует возвращённому состоянию
			if userSession.IsFavorite(tc.RestaurantID) != tc.ExpectedFavorite {
				t.Errorf("Expected session favorite=%v, got %v",
					tc.ExpectedFavorite, userSession.IsFavorite(tc.RestaurantID))
			}
		})
	}
}

func TestFavoritesService_GetFavoritesSyncsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	list := []models.Favorite{
		{RestaurantID: "rest-1"},
		{RestaurantID: "rest-2"},
	}
	// единственный запрос, второе чтение из кэша
	mockAPI.EXPECT().GetFavorites(gomock.Any()).Return(list, nil).Times(1)

	userSession := session.NewSession()
	favorites := NewFavorites(mockAPI, cache.NewCache(), userSession)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := favorites.GetFavorites(ctx, false); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if !userSession.IsFavorite("rest-1") || !userSession.IsFavorite("rest-2") {
		t.Error("Expected favorite ids to be mirrored into session")
	}

	cached, err := favorites.GetFavorites(ctx, false)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if len(cached) != 2 {
		t.Errorf("Expected 2 favorites from cache, got %d", len(cached))
	}
}
