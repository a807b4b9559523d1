package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"scroom/internal/auth"
	"scroom/internal/model"
	"scroom/internal/repository"
	"scroom/internal/service"
	"scroom/internal/service/mocks"
)

var admin = auth.Session{UserID: "u0", TeamID: "t1", Role: model.RoleAdmin}

func TestTeamService_ChangeRole(t *testing.T) {
	tests := []struct {
		name       string
		session    auth.Session
		userID     string
		role       model.Role
		setupMocks func(ur *mocks.UserRepository)
		wantCode   string
	}{
		{
			name:    "Success",
			session: admin,
			userID:  "u2",
			role:    model.RoleScrumMaster,
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("SetRole", mock.Anything, "u2", "t1", model.RoleScrumMaster).
					Return(model.User{ID: "u2", Role: model.RoleScrumMaster}, nil)
			},
		},
		{
			name:       "Fail: not admin",
			session:    owner,
			userID:     "u2",
			role:       model.RoleAdmin,
			setupMocks: func(ur *mocks.UserRepository) {},
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "Fail: unknown role",
			session:    admin,
			userID:     "u2",
			role:       "owner",
			setupMocks: func(ur *mocks.UserRepository) {},
			wantCode:   "BAD_REQUEST",
		},
		{
			name:    "Fail: user of another team",
			session: admin,
			userID:  "u9",
			role:    model.RoleGuest,
			setupMocks: func(ur *mocks.UserRepository) {
				ur.On("SetRole", mock.Anything, "u9", "t1", model.RoleGuest).
					Return(model.User{}, repository.ErrUserNotFound)
			},
			wantCode: "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ur := new(mocks.UserRepository)
			tt.setupMocks(ur)

			svc := service.NewTeamService(new(mocks.TeamRepository), ur)
			_, err := svc.ChangeRole(context.Background(), tt.session, tt.userID, tt.role)

			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, service.Code(err))
			} else {
				assert.NoError(t, err)
			}
			ur.AssertExpectations(t)
		})
	}
}

func TestTeamService_UpdateTeamDetails(t *testing.T) {
	tr := new(mocks.TeamRepository)
	tr.On("UpdateDetails", mock.Anything, "t1", "Gophers", "Scroom").
		Return(model.Team{ID: "t1", Name: "Gophers", ProjectName: "Scroom"}, nil)
	svc := service.NewTeamService(tr, new(mocks.UserRepository))

	team, err := svc.UpdateTeamDetails(context.Background(), admin, " Gophers ", "Scroom")
	assert.NoError(t, err)
	assert.Equal(t, "Gophers", team.Name)

	_, err = svc.UpdateTeamDetails(context.Background(), admin, "Go", "Scroom")
	assert.Equal(t, "BAD_REQUEST", service.Code(err))

	tr.AssertExpectations(t)
}

func TestTeamService_GetTeam_RequiresOnboarding(t *testing.T) {
	svc := service.NewTeamService(new(mocks.TeamRepository), new(mocks.UserRepository))

	_, err := svc.GetTeam(context.Background(), auth.Session{UserID: "u1"})

	assert.Equal(t, "ONBOARDING_REQUIRED", service.Code(err))
}

func TestSessionService_Resolve(t *testing.T) {
	ur := new(mocks.UserRepository)
	team := "t1"
	ur.On("GetByID", mock.Anything, "u1").Return(model.User{ID: "u1", Role: model.RoleDeveloper, TeamID: &team}, nil)
	ur.On("GetByID", mock.Anything, "gone").Return(model.User{}, repository.ErrUserNotFound)
	svc := service.NewSessionService(ur)

	sess, err := svc.Resolve(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, auth.Session{UserID: "u1", TeamID: "t1", Role: model.RoleDeveloper}, sess)

	_, err = svc.Resolve(context.Background(), "gone")
	assert.Equal(t, "UNAUTHENTICATED", service.Code(err))

	ur.AssertExpectations(t)
}
