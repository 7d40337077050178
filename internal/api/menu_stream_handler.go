package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/kingrain94/digital-menu-api/internal/api/dto"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/pkg/logger"
)

const (
	websocketReadBufferSize        = 1024
	websocketWriteBufferSize       = 1024
	websocketSendChannelBufferSize = 256
	websocketWriteWait             = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  websocketReadBufferSize,
	WriteBufferSize: websocketWriteBufferSize,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// MenuEventSubscriber delivers one tenant's menu events to a callback.
//
//go:generate mockery --name MenuEventSubscriber --output ../mocks
type MenuEventSubscriber interface {
	Subscribe(ctx context.Context, tenantID string, callback func(domain.MenuEvent)) error
	Unsubscribe(tenantID string)
	Close()
}

type Client struct {
	conn     *websocket.Conn
	tenantID string
	send     chan []byte
}

// MenuStreamHandler pushes menu change events to live viewers. It holds one
// pub/sub subscription per tenant with at least one connected viewer.
type MenuStreamHandler struct {
	*BaseHandler
	public        PublicService
	subscriber    MenuEventSubscriber
	clients       map[*Client]bool
	register      chan *Client
	unregister    chan *Client
	mutex         sync.RWMutex
	logger        *logger.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	tenantClients map[string]int // Count of clients per tenant
}

// NewMenuStreamHandler builds the hub. A nil subscriber makes the stream
// endpoint answer 503.
func NewMenuStreamHandler(base *BaseHandler, public PublicService, subscriber MenuEventSubscriber, logger *logger.Logger) *MenuStreamHandler {
	ctx, cancel := context.WithCancel(context.Background())
	return &MenuStreamHandler{
		BaseHandler:   base,
		public:        public,
		subscriber:    subscriber,
		clients:       make(map[*Client]bool),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
		tenantClients: make(map[string]int),
	}
}

// HandleMenuStream godoc
// @Summary Stream menu changes
// @Description Upgrades to a websocket that receives a JSON event whenever the tenant's catalog or settings change
// @Tags public
// @Param t path string true "Tenant ID"
// @Success 101
// @Failure 404 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router /public/menu/{t}/stream [get]
func (h *MenuStreamHandler) HandleMenuStream(c *gin.Context) {
	if h.subscriber == nil {
		c.JSON(http.StatusServiceUnavailable, dto.Error{Error: "Live menu updates are not enabled"})
		return
	}

	tenant, err := h.public.Tenant(h.RequestCtx(c), c.Param("t"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written an HTTP error response.
		h.logger.Warnf("Failed to upgrade menu stream for tenant %s: %v", tenant.ID, err)
		return
	}

	client := &Client{
		conn:     conn,
		tenantID: tenant.ID,
		send:     make(chan []byte, websocketSendChannelBufferSize),
	}
	select {
	case h.register <- client:
	case <-h.ctx.Done():
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		return
	}

	go h.writePump(client)
	go h.readPump(client)
}

func (h *MenuStreamHandler) Start() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.tenantClients[client.tenantID]++

			// Subscribe to tenant's channel if this is the first client
			if h.tenantClients[client.tenantID] == 1 {
				if err := h.subscriber.Subscribe(h.ctx, client.tenantID, h.handleEvent); err != nil {
					h.logger.Errorf("Failed to subscribe to tenant %s: %v", client.tenantID, err)
					// Disconnect the viewer so the next one retries the subscription.
					delete(h.clients, client)
					delete(h.tenantClients, client.tenantID)
					close(client.send)
				}
			}
			h.mutex.Unlock()

		case client := <-h.unregister:
			h.mutex.Lock()
			h.removeLocked(client)
			h.mutex.Unlock()

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *MenuStreamHandler) Stop() {
	h.cancel()
	if h.subscriber != nil {
		h.subscriber.Close()
	}
}

// handleEvent fans one event out to the viewers of its tenant. A viewer
// whose buffer is full is dropped.
func (h *MenuStreamHandler) handleEvent(event domain.MenuEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Errorf("Error marshaling menu event: %v", err)
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if client.tenantID != event.TenantID {
			continue
		}
		select {
		case client.send <- message:
		default:
			h.removeLocked(client)
		}
	}
}

// removeLocked forgets client and drops the tenant subscription with its
// last viewer. The caller holds the write lock.
func (h *MenuStreamHandler) removeLocked(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	h.tenantClients[client.tenantID]--
	if h.tenantClients[client.tenantID] == 0 {
		h.subscriber.Unsubscribe(client.tenantID)
		delete(h.tenantClients, client.tenantID)
	}
}

func (h *MenuStreamHandler) writePump(client *Client) {
	defer client.conn.Close()

	for message := range client.send {
		_ = client.conn.SetWriteDeadline(time.Now().Add(websocketWriteWait))
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}

	// Channel was closed, send close message
	_ = client.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump only watches for the viewer going away; viewers never send.
func (h *MenuStreamHandler) readPump(client *Client) {
	defer func() {
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
		}
		client.conn.Close()
	}()

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warnf("Unexpected close error for menu viewer of tenant %s: %v", client.tenantID, err)
			}
			return
		}
	}
}
