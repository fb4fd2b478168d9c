package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/shenikar/medical_dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatchMocks struct {
	tx         *mocks.MockTransactor
	dispatches *mocks.MockDispatchRepository
	teams      *mocks.MockTeamRepository
	notifier   *mocks.MockNotificationService
}

func newTestDispatchService(t *testing.T) (*dispatchService, dispatchMocks) {
	ctrl := gomock.NewController(t)
	m := dispatchMocks{
		tx:         mocks.NewMockTransactor(ctrl),
		dispatches: mocks.NewMockDispatchRepository(ctrl),
		teams:      mocks.NewMockTeamRepository(ctrl),
		notifier:   mocks.NewMockNotificationService(ctrl),
	}
	svc := NewDispatchService(m.tx, m.dispatches, m.teams, m.notifier, newTestLogger()).(*dispatchService)
	return svc, m
}

// passThroughTx выполняет функцию транзакции сразу, без хранилища
func passThroughTx(tx *mocks.MockTransactor) {
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestCreateDispatch_Success(t *testing.T) {
	svc, m := newTestDispatchService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	team := &models.Team{ID: uuid.New(), Name: "Alpha", Status: models.TeamStatusAvailable}
	dispatch := &models.Dispatch{TeamID: team.ID, CallerName: "John", CallerPhone: "+100", Address: "Main st 1"}

	passThroughTx(m.tx)
	gomock.InOrder(
		m.teams.EXPECT().GetByIDForUpdate(ctx, team.ID).Return(team, nil),
		m.dispatches.EXPECT().Create(ctx, dispatch).DoAndReturn(func(_ context.Context, d *models.Dispatch) error {
			assert.Equal(t, models.DispatchStatusPending, d.Status)
			assert.Equal(t, now, d.CreatedAt)
			d.ID = uuid.New()
			return nil
		}),
		m.teams.EXPECT().SetStatus(ctx, team.ID, models.TeamStatusBusy).Return(nil),
		m.notifier.EXPECT().NotifyNewDispatch(ctx, team, dispatch),
	)

	require.NoError(t, svc.CreateDispatch(ctx, newDispatcher(), dispatch))
	assert.NotEqual(t, uuid.Nil, dispatch.ID)
	assert.Nil(t, dispatch.CompletedAt)
}

func TestCreateDispatch_Forbidden(t *testing.T) {
	svc, m := newTestDispatchService(t)
	m.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateDispatch(context.Background(), newMedic("m1"), &models.Dispatch{TeamID: uuid.New()})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateDispatch_TeamNotFound(t *testing.T) {
	svc, m := newTestDispatchService(t)
	teamID := uuid.New()

	passThroughTx(m.tx)
	m.teams.EXPECT().GetByIDForUpdate(gomock.Any(), teamID).Return(nil, ErrNotFound)
	m.dispatches.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	m.notifier.EXPECT().NotifyNewDispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateDispatch(context.Background(), newDispatcher(), &models.Dispatch{TeamID: teamID})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDispatch_TeamBusy(t *testing.T) {
	svc, m := newTestDispatchService(t)
	team := &models.Team{ID: uuid.New(), Status: models.TeamStatusBusy}

	passThroughTx(m.tx)
	m.teams.EXPECT().GetByIDForUpdate(gomock.Any(), team.ID).Return(team, nil)
	m.dispatches.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	m.teams.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.notifier.EXPECT().NotifyNewDispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateDispatch(context.Background(), newDispatcher(), &models.Dispatch{TeamID: team.ID})
	assert.ErrorIs(t, err, ErrTeamBusy)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateDispatch_StatusUpdateFailsRollsBack(t *testing.T) {
	svc, m := newTestDispatchService(t)
	team := &models.Team{ID: uuid.New(), Status: models.TeamStatusAvailable}
	storeErr := errors.New("connection reset")

	passThroughTx(m.tx)
	m.teams.EXPECT().GetByIDForUpdate(gomock.Any(), team.ID).Return(team, nil)
	m.dispatches.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.teams.EXPECT().SetStatus(gomock.Any(), team.ID, models.TeamStatusBusy).Return(storeErr)
	m.notifier.EXPECT().NotifyNewDispatch(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateDispatch(context.Background(), newDispatcher(), &models.Dispatch{TeamID: team.ID})
	assert.ErrorIs(t, err, storeErr)
}

func TestListDispatches_Dispatcher(t *testing.T) {
	svc, m := newTestDispatchService(t)
	expected := []*models.Dispatch{{ID: uuid.New()}, {ID: uuid.New()}}

	m.dispatches.EXPECT().List(gomock.Any(), models.DispatchFilter{Page: 1, PageSize: 50}).Return(expected, nil)

	got, err := svc.ListDispatches(context.Background(), newDispatcher(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestListDispatches_MedicSeesOwnTeam(t *testing.T) {
	svc, m := newTestDispatchService(t)
	team := &models.Team{ID: uuid.New(), Members: []string{"m1"}}
	expected := []*models.Dispatch{{ID: uuid.New(), TeamID: team.ID}}

	m.teams.EXPECT().FindByMember(gomock.Any(), "m1").Return(team, nil)
	m.dispatches.EXPECT().List(gomock.Any(), models.DispatchFilter{TeamID: &team.ID, Page: 2, PageSize: 10}).Return(expected, nil)

	got, err := svc.ListDispatches(context.Background(), newMedic("m1"), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestListDispatches_MedicWithoutTeam(t *testing.T) {
	svc, m := newTestDispatchService(t)

	m.teams.EXPECT().FindByMember(gomock.Any(), "loner").Return(nil, ErrNotFound)
	m.dispatches.EXPECT().List(gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.ListDispatches(context.Background(), newMedic("loner"), 1, 50)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestGetDispatch_WrongTeam(t *testing.T) {
	svc, m := newTestDispatchService(t)
	dispatch := &models.Dispatch{ID: uuid.New(), TeamID: uuid.New()}
	otherTeam := &models.Team{ID: uuid.New(), Members: []string{"m1"}}

	m.dispatches.EXPECT().GetByID(gomock.Any(), dispatch.ID).Return(dispatch, nil)
	m.teams.EXPECT().FindByMember(gomock.Any(), "m1").Return(otherTeam, nil)

	got, err := svc.GetDispatch(context.Background(), newMedic("m1"), dispatch.ID)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetDispatch_OwnTeamAndDispatcher(t *testing.T) {
	svc, m := newTestDispatchService(t)
	team := &models.Team{ID: uuid.New(), Members: []string{"m1"}}
	dispatch := &models.Dispatch{ID: uuid.New(), TeamID: team.ID}

	m.dispatches.EXPECT().GetByID(gomock.Any(), dispatch.ID).Return(dispatch, nil).Times(2)
	m.teams.EXPECT().FindByMember(gomock.Any(), "m1").Return(team, nil)

	got, err := svc.GetDispatch(context.Background(), newMedic("m1"), dispatch.ID)
	require.NoError(t, err)
	assert.Equal(t, dispatch, got)

	got, err = svc.GetDispatch(context.Background(), newDispatcher(), dispatch.ID)
	require.NoError(t, err)
	assert.Equal(t, dispatch, got)
}

func TestGetDispatch_NotFound(t *testing.T) {
	svc, m := newTestDispatchService(t)
	id := uuid.New()
	m.dispatches.EXPECT().GetByID(gomock.Any(), id).Return(nil, ErrNotFound)

	_, err := svc.GetDispatch(context.Background(), newDispatcher(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDispatch(t *testing.T) {
	svc, m := newTestDispatchService(t)
	id := uuid.New()

	m.dispatches.EXPECT().Delete(gomock.Any(), id).Return(nil)
	require.NoError(t, svc.DeleteDispatch(context.Background(), newDispatcher(), id))

	m.dispatches.EXPECT().Delete(gomock.Any(), id).Return(ErrNotFound)
	assert.ErrorIs(t, svc.DeleteDispatch(context.Background(), newDispatcher(), id), ErrNotFound)

	assert.ErrorIs(t, svc.DeleteDispatch(context.Background(), newMedic("m1"), id), ErrForbidden)
}
