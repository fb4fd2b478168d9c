package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/shenikar/medical_dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTeamService(t *testing.T) (TeamService, *mocks.MockTeamRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockTeamRepository(ctrl)
	return NewTeamService(repoMock, newTestLogger()), repoMock
}

func TestCreateTeam_Success(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	ctx := context.Background()
	team := &models.Team{Name: "Alpha", VehicleID: "AMB-1", Status: models.TeamStatusBusy}

	repoMock.EXPECT().Create(ctx, team).DoAndReturn(func(_ context.Context, tm *models.Team) error {
		assert.Equal(t, models.TeamStatusAvailable, tm.Status)
		assert.NotNil(t, tm.Members)
		tm.ID = uuid.New()
		return nil
	}).Times(1)

	err := svc.CreateTeam(ctx, newDispatcher(), team)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, team.ID)
	assert.Equal(t, models.TeamStatusAvailable, team.Status)
}

func TestCreateTeam_Forbidden(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateTeam(context.Background(), newMedic("m1"), &models.Team{Name: "Alpha"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateTeam_DuplicateName(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("team Alpha: %w", ErrConflict))

	err := svc.CreateTeam(context.Background(), newDispatcher(), &models.Team{Name: "Alpha"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestListTeams_NormalizesPagination(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	ctx := context.Background()
	expected := []*models.Team{{ID: uuid.New(), Name: "Alpha"}}

	repoMock.EXPECT().List(ctx, 1, 1000).Return(expected, nil)

	teams, err := svc.ListTeams(ctx, 0, 5000)
	require.NoError(t, err)
	assert.Equal(t, expected, teams)
}

func TestGetTeam_NotFound(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	id := uuid.New()
	repoMock.EXPECT().GetByID(gomock.Any(), id).Return(nil, ErrNotFound)

	team, err := svc.GetTeam(context.Background(), id)
	assert.Nil(t, team)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTeam_Partial(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	ctx := context.Background()
	id := uuid.New()
	existing := &models.Team{
		ID:        id,
		Name:      "Alpha",
		Members:   []string{"m1"},
		VehicleID: "AMB-1",
		Status:    models.TeamStatusAvailable,
	}
	newVehicle := "AMB-7"

	repoMock.EXPECT().GetByID(ctx, id).Return(existing, nil)
	repoMock.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, tm *models.Team) error {
		assert.Equal(t, "Alpha", tm.Name)
		assert.Equal(t, []string{"m1"}, tm.Members)
		assert.Equal(t, newVehicle, tm.VehicleID)
		return nil
	})

	updated, err := svc.UpdateTeam(ctx, newDispatcher(), id, models.TeamUpdate{VehicleID: &newVehicle})
	require.NoError(t, err)
	assert.Equal(t, newVehicle, updated.VehicleID)
}

func TestUpdateTeam_StatusOnlyWhenGiven(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	ctx := context.Background()
	id := uuid.New()
	busy := models.TeamStatusBusy

	repoMock.EXPECT().GetByID(ctx, id).Return(&models.Team{ID: id, Name: "Alpha", Status: models.TeamStatusAvailable}, nil)
	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().SetStatus(ctx, id, models.TeamStatusBusy).Return(nil)

	updated, err := svc.UpdateTeam(ctx, newDispatcher(), id, models.TeamUpdate{Status: &busy})
	require.NoError(t, err)
	assert.Equal(t, models.TeamStatusBusy, updated.Status)

	name := "Bravo"
	repoMock.EXPECT().GetByID(ctx, id).Return(&models.Team{ID: id, Name: "Alpha", Status: models.TeamStatusAvailable}, nil)
	repoMock.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	repoMock.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err = svc.UpdateTeam(ctx, newDispatcher(), id, models.TeamUpdate{Name: &name})
	require.NoError(t, err)
}

func TestUpdateTeam_NotFound(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	id := uuid.New()
	repoMock.EXPECT().GetByID(gomock.Any(), id).Return(nil, ErrNotFound)
	repoMock.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateTeam(context.Background(), newDispatcher(), id, models.TeamUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTeam_Forbidden(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateTeam(context.Background(), newMedic("m1"), uuid.New(), models.TeamUpdate{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSetTeamStatus_Valid(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	id := uuid.New()
	repoMock.EXPECT().SetStatus(gomock.Any(), id, models.TeamStatusBusy).Return(nil)

	require.NoError(t, svc.SetTeamStatus(context.Background(), id, "busy"))
}

func TestSetTeamStatus_InvalidValue(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	repoMock.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.SetTeamStatus(context.Background(), uuid.New(), "broken")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "allowed values: available, busy")
}

func TestSetTeamStatus_NotFound(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	repoMock.EXPECT().SetStatus(gomock.Any(), gomock.Any(), models.TeamStatusAvailable).Return(ErrNotFound)

	err := svc.SetTeamStatus(context.Background(), uuid.New(), "available")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTeam(t *testing.T) {
	svc, repoMock := newTestTeamService(t)
	id := uuid.New()

	repoMock.EXPECT().Delete(gomock.Any(), id).Return(nil)
	require.NoError(t, svc.DeleteTeam(context.Background(), newDispatcher(), id))

	repoMock.EXPECT().Delete(gomock.Any(), id).Return(ErrNotFound)
	assert.ErrorIs(t, svc.DeleteTeam(context.Background(), newDispatcher(), id), ErrNotFound)

	assert.ErrorIs(t, svc.DeleteTeam(context.Background(), newMedic("m1"), id), ErrForbidden)
}
