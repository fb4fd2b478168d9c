package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/shenikar/medical_dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type medicalFormMocks struct {
	tx         *mocks.MockTransactor
	forms      *mocks.MockMedicalFormRepository
	dispatches *mocks.MockDispatchRepository
	teams      *mocks.MockTeamRepository
}

func newTestMedicalFormService(t *testing.T) (*medicalFormService, medicalFormMocks) {
	ctrl := gomock.NewController(t)
	m := medicalFormMocks{
		tx:         mocks.NewMockTransactor(ctrl),
		forms:      mocks.NewMockMedicalFormRepository(ctrl),
		dispatches: mocks.NewMockDispatchRepository(ctrl),
		teams:      mocks.NewMockTeamRepository(ctrl),
	}
	svc := NewMedicalFormService(m.tx, m.forms, m.dispatches, m.teams, newTestLogger()).(*medicalFormService)
	return svc, m
}

func newTestForm(dispatchID uuid.UUID) *models.MedicalForm {
	return &models.MedicalForm{
		DispatchID:  dispatchID,
		PatientName: "Jane Doe",
		PatientAge:  42,
		Symptoms:    []string{"chest pain"},
		VitalSigns:  models.VitalSigns{BloodPressure: "120/80", Pulse: 90, Temperature: 36.6, Saturation: 97},
		Procedures:  []string{"ECG"},
		Medications: []string{"aspirin"},
	}
}

func TestCreateMedicalForm_Success(t *testing.T) {
	svc, m := newTestMedicalFormService(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 13, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	team := &models.Team{ID: uuid.New(), Members: []string{"m1"}, Status: models.TeamStatusBusy}
	dispatch := &models.Dispatch{ID: uuid.New(), TeamID: team.ID, Status: models.DispatchStatusPending}
	form := newTestForm(dispatch.ID)

	m.dispatches.EXPECT().GetByID(ctx, dispatch.ID).Return(dispatch, nil)
	m.teams.EXPECT().FindByMember(ctx, "m1").Return(team, nil)
	passThroughTx(m.tx)
	gomock.InOrder(
		m.forms.EXPECT().Create(ctx, form).DoAndReturn(func(_ context.Context, f *models.MedicalForm) error {
			assert.Equal(t, now, f.CreatedAt)
			f.ID = uuid.New()
			return nil
		}),
		m.dispatches.EXPECT().MarkCompleted(ctx, dispatch.ID, now).Return(nil),
		m.teams.EXPECT().SetStatus(ctx, team.ID, models.TeamStatusAvailable).Return(nil),
	)

	require.NoError(t, svc.CreateMedicalForm(ctx, newMedic("m1"), form))
	assert.NotEqual(t, uuid.Nil, form.ID)
}

func TestCreateMedicalForm_DispatcherForbidden(t *testing.T) {
	svc, m := newTestMedicalFormService(t)
	m.dispatches.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateMedicalForm(context.Background(), newDispatcher(), newTestForm(uuid.New()))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateMedicalForm_DispatchNotFound(t *testing.T) {
	svc, m := newTestMedicalFormService(t)
	id := uuid.New()
	m.dispatches.EXPECT().GetByID(gomock.Any(), id).Return(nil, ErrNotFound)

	err := svc.CreateMedicalForm(context.Background(), newMedic("m1"), newTestForm(id))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateMedicalForm_WrongTeam(t *testing.T) {
	svc, m := newTestMedicalFormService(t)
	dispatch := &models.Dispatch{ID: uuid.New(), TeamID: uuid.New(), Status: models.DispatchStatusPending}

	m.dispatches.EXPECT().GetByID(gomock.Any(), dispatch.ID).Return(dispatch, nil)
	m.teams.EXPECT().FindByMember(gomock.Any(), "m2").Return(&models.Team{ID: uuid.New()}, nil)
	m.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateMedicalForm(context.Background(), newMedic("m2"), newTestForm(dispatch.ID))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateMedicalForm_AlreadyCompleted(t *testing.T) {
	svc, m := newTestMedicalFormService(t)
	team := &models.Team{ID: uuid.New(), Members: []string{"m1"}}
	completedAt := time.Now()
	dispatch := &models.Dispatch{ID: uuid.New(), TeamID: team.ID, Status: models.DispatchStatusCompleted, CompletedAt: &completedAt}

	m.dispatches.EXPECT().GetByID(gomock.Any(), dispatch.ID).Return(dispatch, nil)
	m.teams.EXPECT().FindByMember(gomock.Any(), "m1").Return(team, nil)
	m.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateMedicalForm(context.Background(), newMedic("m1"), newTestForm(dispatch.ID))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateMedicalForm_DuplicateRejectedByStore(t *testing.T) {
	svc, m := newTestMedicalFormService(t)
	team := &models.Team{ID: uuid.New(), Members: []string{"m1"}}
	dispatch := &models.Dispatch{ID: uuid.New(), TeamID: team.ID, Status: models.DispatchStatusPending}

	m.dispatches.EXPECT().GetByID(gomock.Any(), dispatch.ID).Return(dispatch, nil)
	m.teams.EXPECT().FindByMember(gomock.Any(), "m1").Return(team, nil)
	passThroughTx(m.tx)
	m.forms.EXPECT().Create(gomock.Any(), gomock.Any()).Return(ErrConflict)
	m.dispatches.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateMedicalForm(context.Background(), newMedic("m1"), newTestForm(dispatch.ID))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGetMedicalForm(t *testing.T) {
	svc, m := newTestMedicalFormService(t)
	team := &models.Team{ID: uuid.New(), Members: []string{"m1"}}
	dispatch := &models.Dispatch{ID: uuid.New(), TeamID: team.ID}
	form := newTestForm(dispatch.ID)

	m.forms.EXPECT().GetByDispatchID(gomock.Any(), dispatch.ID).Return(form, nil).Times(3)

	got, err := svc.GetMedicalForm(context.Background(), newDispatcher(), dispatch.ID)
	require.NoError(t, err)
	assert.Equal(t, form, got)

	m.dispatches.EXPECT().GetByID(gomock.Any(), dispatch.ID).Return(dispatch, nil).Times(2)
	m.teams.EXPECT().FindByMember(gomock.Any(), "m1").Return(team, nil)
	got, err = svc.GetMedicalForm(context.Background(), newMedic("m1"), dispatch.ID)
	require.NoError(t, err)
	assert.Equal(t, form, got)

	m.teams.EXPECT().FindByMember(gomock.Any(), "m9").Return(nil, ErrNotFound)
	_, err = svc.GetMedicalForm(context.Background(), newMedic("m9"), dispatch.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetMedicalForm_NotFound(t *testing.T) {
	svc, m := newTestMedicalFormService(t)
	id := uuid.New()
	m.forms.EXPECT().GetByDispatchID(gomock.Any(), id).Return(nil, ErrNotFound)

	_, err := svc.GetMedicalForm(context.Background(), newDispatcher(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}
