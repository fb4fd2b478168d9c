package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/medical_dispatch/internal/models"
	"github.com/shenikar/medical_dispatch/internal/push"
	push_mocks "github.com/shenikar/medical_dispatch/internal/push/mocks"
	"github.com/shenikar/medical_dispatch/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNotificationService(t *testing.T) (NotificationService, *mocks.MockPushTokenStore, *push_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	tokensMock := mocks.NewMockPushTokenStore(ctrl)
	publisherMock := push_mocks.NewMockPublisher(ctrl)
	return NewNotificationService(tokensMock, publisherMock, newTestLogger()), tokensMock, publisherMock
}

func TestRegisterPushToken(t *testing.T) {
	svc, tokensMock, _ := newTestNotificationService(t)
	ctx := context.Background()

	tokensMock.EXPECT().Add(ctx, "ExponentPushToken[abc]").Return(true, nil)
	require.NoError(t, svc.RegisterPushToken(ctx, "  ExponentPushToken[abc] "))

	tokensMock.EXPECT().Add(ctx, "ExponentPushToken[abc]").Return(false, nil)
	require.NoError(t, svc.RegisterPushToken(ctx, "ExponentPushToken[abc]"))
}

func TestRegisterPushToken_Empty(t *testing.T) {
	svc, tokensMock, _ := newTestNotificationService(t)
	tokensMock.EXPECT().Add(gomock.Any(), gomock.Any()).Times(0)

	assert.ErrorIs(t, svc.RegisterPushToken(context.Background(), "   "), ErrInvalidArgument)
}

func TestRegisterPushToken_StoreDown(t *testing.T) {
	svc, tokensMock, _ := newTestNotificationService(t)
	tokensMock.EXPECT().Add(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))

	assert.ErrorIs(t, svc.RegisterPushToken(context.Background(), "tok"), ErrUnavailable)
}

func TestNotifyNewDispatch_FanOut(t *testing.T) {
	svc, tokensMock, publisherMock := newTestNotificationService(t)
	ctx := context.Background()
	address := "ExponentPushToken[team]"
	team := &models.Team{ID: uuid.New(), NotificationAddress: &address}
	dispatch := &models.Dispatch{ID: uuid.New(), TeamID: team.ID, Address: "Main st 1", CallerName: "John"}

	tokensMock.EXPECT().List(ctx).Return([]string{"ExponentPushToken[a]", address, ""}, nil)

	var sent []push.Message
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg push.Message) error {
		sent = append(sent, msg)
		return nil
	}).Times(2)

	svc.NotifyNewDispatch(ctx, team, dispatch)

	require.Len(t, sent, 2)
	assert.Equal(t, address, sent[0].To)
	assert.Equal(t, "ExponentPushToken[a]", sent[1].To)
	assert.Equal(t, "New dispatch", sent[0].Title)
	assert.Equal(t, dispatch.ID.String(), sent[0].Data["dispatch_id"])
	assert.Equal(t, "new_dispatch", sent[0].Data["type"])
}

func TestNotifyNewDispatch_ErrorsAreSwallowed(t *testing.T) {
	svc, tokensMock, publisherMock := newTestNotificationService(t)
	ctx := context.Background()
	dispatch := &models.Dispatch{ID: uuid.New(), TeamID: uuid.New()}

	tokensMock.EXPECT().List(ctx).Return([]string{"a", "b"}, nil)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("queue full")).Times(2)

	assert.NotPanics(t, func() {
		svc.NotifyNewDispatch(ctx, &models.Team{ID: dispatch.TeamID}, dispatch)
	})
}

func TestNotifyNewDispatch_NoRecipients(t *testing.T) {
	svc, tokensMock, publisherMock := newTestNotificationService(t)

	tokensMock.EXPECT().List(gomock.Any()).Return(nil, errors.New("redis down"))
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	svc.NotifyNewDispatch(context.Background(), &models.Team{}, &models.Dispatch{ID: uuid.New()})
}
