package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func TestWebSocketAssessmentFlow(t *testing.T) {
	service, sink := newTestService()
	server := httptest.NewServer(NewRouter(service, zap.NewNop()))
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?questionnaireId=readiness"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Expect initial state first.
	_, payload := readNext(conn, t, "state")
	if payload["questionId"] != "website" {
		t.Fatalf("expected first question, got %v", payload["questionId"])
	}

	send(t, conn, "advance", nil)
	_, payload = readNext(conn, t, "error")
	if payload["code"] != "not_answered" {
		t.Fatalf("expected not_answered, got %v", payload["code"])
	}

	send(t, conn, "select", map[string]any{"questionId": "website", "value": "yes"})
	readNext(conn, t, "state")
	send(t, conn, "advance", nil)
	_, payload = readNext(conn, t, "state")
	if payload["questionId"] != "reviews" || payload["isLast"] != true {
		t.Fatalf("expected last question, got %v", payload)
	}

	send(t, conn, "select", map[string]any{"questionId": "reviews", "value": "yes"})
	readNext(conn, t, "state")
	send(t, conn, "advance", nil)
	_, payload = readNext(conn, t, "state")
	if payload["phase"] != "awaiting_identity" {
		t.Fatalf("expected awaiting identity, got %v", payload["phase"])
	}

	send(t, conn, "submit", map[string]any{
		"firstName": "Alice",
		"lastName":  "Smith",
		"email":     "alice@example.com",
	})
	_, payload = readNext(conn, t, "submitted")
	if payload["percentage"] != float64(75) || payload["tier"] != "advanced" {
		t.Fatalf("unexpected result %v", payload)
	}
	if len(sink.Leads()) != 1 {
		t.Fatalf("expected lead recorded")
	}
}

func TestWebSocketUnknownQuestionnaire(t *testing.T) {
	service, _ := newTestService()
	server := httptest.NewServer(NewRouter(service, zap.NewNop()))
	defer server.Close()

	u := "ws" + server.URL[len("http"):] + "/ws?questionnaireId=missing"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	_, payload := readNext(conn, t, "error")
	if payload["code"] != "questionnaire_not_found" {
		t.Fatalf("expected questionnaire_not_found, got %v", payload["code"])
	}
}

func send(t *testing.T, conn *websocket.Conn, typ string, payload any) {
	t.Helper()
	if err := conn.WriteJSON(map[string]any{"type": typ, "payload": payload}); err != nil {
		t.Fatalf("write %s: %v", typ, err)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s (%v)", expect, msg.Type, msg.Payload)
	}
	return msg.Type, msg.Payload
}
