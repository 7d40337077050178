package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/mocks"
	"github.com/kingrain94/digital-menu-api/internal/service"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

func newStreamServer(t *testing.T, h *MenuStreamHandler) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/public/menu/:t/stream", h.HandleMenuStream)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestMenuStream_DisabledWithoutSubscriber(t *testing.T) {
	h := NewMenuStreamHandler(NewBaseHandler(false, logger.NewNop()), mocks.NewPublicService(t), nil, logger.NewNop())
	server := newStreamServer(t, h)

	resp, err := http.Get(server.URL + "/api/public/menu/t1/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestMenuStream_UnknownTenant(t *testing.T) {
	public := mocks.NewPublicService(t)
	public.On("Tenant", mock.Anything, "ghost").Return(nil, service.ErrTenantNotFound)
	h := NewMenuStreamHandler(NewBaseHandler(false, logger.NewNop()), public, mocks.NewMenuEventSubscriber(t), logger.NewNop())
	server := newStreamServer(t, h)

	resp, err := http.Get(server.URL + "/api/public/menu/ghost/stream")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMenuStream_DeliversTenantEvents(t *testing.T) {
	public := mocks.NewPublicService(t)
	public.On("Tenant", mock.Anything, "t1").Return(&domain.Tenant{ID: "t1", Active: true}, nil)

	callbacks := make(chan func(domain.MenuEvent), 1)
	unsubscribed := make(chan struct{})
	subscriber := mocks.NewMenuEventSubscriber(t)
	subscriber.On("Subscribe", mock.Anything, "t1", mock.Anything).
		Run(func(args mock.Arguments) {
			callbacks <- args.Get(2).(func(domain.MenuEvent))
		}).
		Return(nil).Once()
	subscriber.On("Unsubscribe", "t1").Run(func(mock.Arguments) { close(unsubscribed) }).Once()
	subscriber.On("Close").Once()

	h := NewMenuStreamHandler(NewBaseHandler(false, logger.NewNop()), public, subscriber, logger.NewNop())
	go h.Start()
	defer h.Stop()
	server := newStreamServer(t, h)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/public/menu/t1/stream"
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	require.NoError(t, err)

	var publish func(domain.MenuEvent)
	select {
	case publish = <-callbacks:
	case <-time.After(5 * time.Second):
		t.Fatal("viewer never subscribed")
	}

	publish(domain.MenuEvent{Type: domain.MenuEventProductCreated, TenantID: "other"})
	publish(domain.MenuEvent{Type: domain.MenuEventProductUpdated, TenantID: "t1", EntityID: "p1"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var event domain.MenuEvent
	require.NoError(t, json.Unmarshal(message, &event))
	assert.Equal(t, domain.MenuEventProductUpdated, event.Type)
	assert.Equal(t, "p1", event.EntityID)

	require.NoError(t, conn.Close())
	select {
	case <-unsubscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("last viewer leaving did not drop the subscription")
	}
}

func streamURL(server *httptest.Server, tenantID string) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + "/api/public/menu/" + tenantID + "/stream"
}

func TestMenuStream_FailedSubscribeIsRetriedByNextViewer(t *testing.T) {
	public := mocks.NewPublicService(t)
	public.On("Tenant", mock.Anything, "t1").Return(&domain.Tenant{ID: "t1", Active: true}, nil)

	subscribed := make(chan struct{})
	subscriber := mocks.NewMenuEventSubscriber(t)
	subscriber.On("Subscribe", mock.Anything, "t1", mock.Anything).Return(errors.New("redis down")).Once()
	subscriber.On("Subscribe", mock.Anything, "t1", mock.Anything).
		Run(func(mock.Arguments) { close(subscribed) }).
		Return(nil).Once()
	subscriber.On("Unsubscribe", "t1").Maybe()
	subscriber.On("Close").Once()

	h := NewMenuStreamHandler(NewBaseHandler(false, logger.NewNop()), public, subscriber, logger.NewNop())
	go h.Start()
	defer h.Stop()
	server := newStreamServer(t, h)

	first, _, err := websocket.DefaultDialer.Dial(streamURL(server, "t1"), nil)
	require.NoError(t, err)
	defer first.Close()

	require.NoError(t, first.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = first.ReadMessage()
	require.Error(t, err, "viewer without a subscription should be disconnected")

	second, _, err := websocket.DefaultDialer.Dial(streamURL(server, "t1"), nil)
	require.NoError(t, err)
	defer second.Close()

	select {
	case <-subscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("second viewer did not resubscribe the tenant")
	}
}

func TestMenuStream_ViewerAfterStopDoesNotBlock(t *testing.T) {
	public := mocks.NewPublicService(t)
	public.On("Tenant", mock.Anything, "t1").Return(&domain.Tenant{ID: "t1", Active: true}, nil)
	subscriber := mocks.NewMenuEventSubscriber(t)
	subscriber.On("Close").Once()

	h := NewMenuStreamHandler(NewBaseHandler(false, logger.NewNop()), public, subscriber, logger.NewNop())
	stopped := make(chan struct{})
	go func() {
		h.Start()
		close(stopped)
	}()
	h.Stop()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("hub did not stop")
	}
	server := newStreamServer(t, h)

	conn, _, err := websocket.DefaultDialer.Dial(streamURL(server, "t1"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "unexpected error: %v", err)
}
