package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"lead-assessment-service/internal/app"
	"lead-assessment-service/internal/assessment"
	"lead-assessment-service/internal/domain"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	writeWait  = 10 * time.Second
)

// WSHandler drives one assessment session per websocket connection.
type WSHandler struct {
	service  *app.AssessmentService
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.AssessmentService, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		service: service,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

// ServeWS upgrades the request and runs the assessment over the connection.
// Query: questionnaireId (optional) starts a new session; sessionId resumes one.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	questionnaireID := r.URL.Query().Get("questionnaireId")
	sessionID := r.URL.Query().Get("sessionId")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx := r.Context()
	var view assessment.View
	if sessionID != "" {
		view, err = h.service.View(ctx, sessionID)
	} else {
		view, err = h.service.Start(ctx, questionnaireID)
	}
	if err != nil {
		payload, _ := classify(err)
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: payload})
		return
	}
	sessionID = view.SessionID

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})

	// single writer: gorilla connections do not support concurrent writes
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case msg, ok := <-send:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(msg); err != nil {
					h.logger.Debug("ws write error", zap.Error(err))
					return
				}
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	send <- outboundMessage[any]{Type: "state", Payload: view}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		msgType, payload, err := h.dispatch(r, sessionID, inbound)
		if err != nil {
			p, _ := classify(err)
			msgType, payload = "error", p
		}
		select {
		case send <- outboundMessage[any]{Type: msgType, Payload: payload}:
		case <-writerDone:
		}
	}

	close(send)
	<-writerDone
}

type selectPayload struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
}

func (h *WSHandler) dispatch(r *http.Request, sessionID string, inbound inboundMessage) (string, any, error) {
	ctx := r.Context()
	switch inbound.Type {
	case "select":
		var p selectPayload
		if err := json.Unmarshal(inbound.Payload, &p); err != nil {
			return "error", errorPayload{Message: "invalid select payload", Code: "bad_request"}, nil
		}
		view, err := h.service.Select(ctx, sessionID, p.QuestionID, p.Value)
		return "state", view, err
	case "advance":
		view, err := h.service.Advance(ctx, sessionID)
		return "state", view, err
	case "retreat":
		view, err := h.service.Retreat(ctx, sessionID)
		return "state", view, err
	case "result":
		result, err := h.service.Result(ctx, sessionID)
		return "result", result, err
	case "submit":
		var identity domain.Identity
		if err := json.Unmarshal(inbound.Payload, &identity); err != nil {
			return "error", errorPayload{Message: "invalid submit payload", Code: "bad_request"}, nil
		}
		result, err := h.service.Submit(ctx, sessionID, identity)
		return "submitted", result, err
	default:
		return "error", errorPayload{Message: "unsupported message type", Code: "bad_request"}, nil
	}
}
