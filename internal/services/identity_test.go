package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/localeats/localeats-cli/internal/cache"
	"github.com/localeats/localeats-cli/internal/client"
	"github.com/localeats/localeats-cli/internal/client/mocks"
	"github.com/localeats/localeats-cli/internal/models"
	"github.com/localeats/localeats-cli/internal/session"
	"go.uber.org/mock/gomock"
)

func TestIdentityService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	testCases := []struct {
		TestName      string
		Email         string
		Password      string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			TestName: "Success. Valid credentials #1",
			Email:    "alice@example.com",
			Password: "secret1pass",
			SetupMocks: func() {
				mockAPI.EXPECT().
					Login(gomock.Any(), models.LoginRequest{Email: "alice@example.com", Password: "secret1pass"}).
					Return(&models.AuthResponse{
						Token: "token-1",
						User:  models.User{ID: "user-1", Email: "alice@example.com", Name: "Alice"},
					}, nil)
			},
			ExpectedError: nil,
		},
		{
			TestName: "Error. Wrong credentials #2",
			Email:    "bob@example.com",
			Password: "wrongpass1",
			SetupMocks: func() {
				mockAPI.EXPECT().
					Login(gomock.Any(), models.LoginRequest{Email: "bob@example.com", Password: "wrongpass1"}).
					Return(nil, client.ErrUnauthorized)
			},
			ExpectedError: client.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			userSession := session.NewSession()
			identity := NewIdentity(mockAPI, cache.NewCache(), userSession)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := identity.Login(ctx, tc.Email, tc.Password)

			if tc.ExpectedError == nil {
				if err != nil {
					t.Fatalf("Expected no error, got '%v'", err)
				}
				if !userSession.Authenticated() {
					t.Error("Expected authenticated session after login")
				}
				if userSession.User().Email != tc.Email {
					t.Errorf("Expected user '%s', got '%s'", tc.Email, userSession.User().Email)
				}
			} else {
				if !errors.Is(err, tc.ExpectedError) {
					t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
				}
				if userSession.Authenticated() {
					t.Error("Expected session to stay closed after failed login")
				}
			}
		})
	}
}

func TestIdentityService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	request := models.SignupRequest{
		Email:    "carol@example.com",
		Password: "secret1pass",
		Name:     "Carol",
	}
	mockAPI.EXPECT().Signup(gomock.Any(), request).Return(&models.AuthResponse{
		Token: "token-2",
		User:  models.User{ID: "user-2", Email: request.Email, Name: request.Name},
	}, nil)

	userSession := session.NewSession()
	identity := NewIdentity(mockAPI, cache.NewCache(), userSession)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := identity.Signup(ctx, request); err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	// регистрация сразу открывает сессию
	if !userSession.Authenticated() {
		t.Error("Expected authenticated session after signup")
	}
}

func TestIdentityService_LogoutBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockAPI := mocks.NewMockAPI(ctrl)
	initTestLogger(t)

	testCases := []struct {
		TestName   string
		SetupMocks func()
	}{
		{
			TestName: "Success. Server acknowledged #1",
			SetupMocks: func() {
				mockAPI.EXPECT().Logout(gomock.Any()).Return(nil)
			},
		},
		{
			TestName: "Success. Server unreachable, local teardown anyway #2",
			SetupMocks: func() {
				mockAPI.EXPECT().Logout(gomock.Any()).Return(errors.New("connection refused"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			userSession := session.NewSession()
			userSession.SetToken("token-3")
			userSession.SetUser(&models.User{ID: "user-3", Email: "dave@example.com"})
			userSession.AddFavorite("rest-1")

			store := cache.NewCache()
			store.Set("orders", "cached")

			identity := NewIdentity(mockAPI, store, userSession)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			identity.Logout(ctx)

			if userSession.Authenticated() {
				t.Error("Expected session to be reset after logout")
			}
			if userSession.IsFavorite("rest-1") {
				t.Error("Expected favorites to be cleared after logout")
			}
			if _, ok := store.Get("orders"); ok {
				t.Error("Expected cache to be cleared after logout")
			}
		})
	}
}
