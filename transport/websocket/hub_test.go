package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mazeworks/maze-solver/maze"
	"github.com/mazeworks/maze-solver/solver"
)

func testBroadcastResult(t *testing.T) *solver.Result {
	t.Helper()

	m, err := maze.ParseString("201\n000\n103")
	if err != nil {
		t.Fatalf("Failed to parse test maze: %v", err)
	}

	result, err := solver.Run(solver.AlgorithmBFS, m)
	if err != nil {
		t.Fatalf("Failed to solve test maze: %v", err)
	}
	return result
}

func TestNewHub(t *testing.T) {
	hub := NewHub()

	if hub == nil {
		t.Fatal("NewHub() returned nil")
	}

	if hub.solves == nil {
		t.Error("Hub solves map is nil")
	}

	if hub.broadcast == nil {
		t.Error("Hub broadcast channel is nil")
	}

	if hub.register == nil {
		t.Error("Hub register channel is nil")
	}

	if hub.unregister == nil {
		t.Error("Hub unregister channel is nil")
	}
}

func TestHubRegisterClient(t *testing.T) {
	hub := NewHub()

	// Create a mock client
	client := &Client{
		hub:     hub,
		solveID: "test-solve",
		send:    make(chan []byte, 256),
	}

	// Register the client
	hub.registerClient(client)

	// Check if solve entry was created
	if _, exists := hub.solves["test-solve"]; !exists {
		t.Error("Solve entry was not created")
	}

	// Check if client was added
	if !hub.solves["test-solve"][client] {
		t.Error("Client was not registered for solve")
	}

	// Check client count
	if len(hub.solves["test-solve"]) != 1 {
		t.Errorf("Expected 1 client for solve, got %d", len(hub.solves["test-solve"]))
	}
}

func TestHubUnregisterClient(t *testing.T) {
	hub := NewHub()

	client := &Client{
		hub:     hub,
		solveID: "test-solve",
		send:    make(chan []byte, 256),
	}

	// Register then unregister
	hub.registerClient(client)
	hub.unregisterClient(client)

	// Check if solve entry was cleaned up
	if _, exists := hub.solves["test-solve"]; exists {
		t.Error("Solve entry should have been cleaned up after last client unregistered")
	}
}

func TestHubMultipleClientsPerSolve(t *testing.T) {
	hub := NewHub()
	solveID := "multi-client-solve"

	// Create multiple clients watching the same solve
	client1 := &Client{
		hub:     hub,
		solveID: solveID,
		send:    make(chan []byte, 256),
	}
	client2 := &Client{
		hub:     hub,
		solveID: solveID,
		send:    make(chan []byte, 256),
	}

	// Register both clients
	hub.registerClient(client1)
	hub.registerClient(client2)

	// Check solve has 2 clients
	if len(hub.solves[solveID]) != 2 {
		t.Errorf("Expected 2 clients for solve, got %d", len(hub.solves[solveID]))
	}

	// Unregister one client
	hub.unregisterClient(client1)

	// Solve entry should still exist with 1 client
	if len(hub.solves[solveID]) != 1 {
		t.Errorf("Expected 1 client remaining for solve, got %d", len(hub.solves[solveID]))
	}

	// Check the right client remains
	if !hub.solves[solveID][client2] {
		t.Error("client2 should still be registered")
	}
}

func TestHubBroadcastToSolve(t *testing.T) {
	hub := NewHub()
	solveID := "broadcast-test"

	// Create a test client
	client := &Client{
		hub:     hub,
		solveID: solveID,
		send:    make(chan []byte, 256),
	}

	hub.registerClient(client)

	result := testBroadcastResult(t)

	// Broadcast to the solve
	hub.BroadcastToSolve(solveID, result)

	// Check if message was sent to client
	select {
	case data := <-client.send:
		var message Message
		err := json.Unmarshal(data, &message)
		if err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}

		if message.SolveID != solveID {
			t.Errorf("Expected solveID %s, got %s", solveID, message.SolveID)
		}

		if message.Event != "solve_update" {
			t.Errorf("Expected event 'solve_update', got %s", message.Event)
		}

		if message.Result == nil || !message.Result.Found {
			t.Error("Result not correctly transmitted")
		}

	case <-time.After(100 * time.Millisecond):
		t.Error("No message received within timeout")
	}
}

func TestHubBroadcastEvent(t *testing.T) {
	hub := NewHub()
	done := make(chan bool)

	// Start hub in goroutine
	go func() {
		for {
			select {
			case message := <-hub.broadcast:
				// Verify the broadcast message
				if message.SolveID != "event-test" {
					t.Errorf("Expected solveID 'event-test', got %s", message.SolveID)
				}
				if message.Event != "custom-event" {
					t.Errorf("Expected event 'custom-event', got %s", message.Event)
				}
				if message.Data != "test-data" {
					t.Errorf("Expected data 'test-data', got %v", message.Data)
				}
				done <- true
				return
			case <-time.After(100 * time.Millisecond):
				t.Error("No broadcast message received within timeout")
				done <- false
				return
			}
		}
	}()

	// Send broadcast event
	hub.BroadcastEvent("event-test", "custom-event", "test-data")

	// Wait for verification
	<-done
}

func TestWebSocketUpgrade(t *testing.T) {
	hub := NewHub()

	// Start hub in background
	go hub.Run()

	// Create a test HTTP server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		solveID := r.URL.Query().Get("solve")
		if solveID == "" {
			solveID = "default"
		}
		hub.ServeWS(w, r, solveID)
	}))
	defer server.Close()

	// Convert HTTP URL to WebSocket URL
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?solve=ws-test"

	// Connect to WebSocket
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	// Give some time for registration
	time.Sleep(50 * time.Millisecond)

	// Check if client was registered
	if len(hub.solves["ws-test"]) != 1 {
		t.Errorf("Expected 1 client for solve, got %d", len(hub.solves["ws-test"]))
	}

	// Close connection
	conn.Close()

	// Give some time for unregistration
	time.Sleep(10 * time.Millisecond)

	// Check if client was unregistered and solve entry cleaned up
	if _, exists := hub.solves["ws-test"]; exists {
		t.Error("Solve entry should have been cleaned up after WebSocket close")
	}
}

func TestWebSocketMessageReceive(t *testing.T) {
	hub := NewHub()

	// Start hub
	go hub.Run()

	// Create a test HTTP server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		solveID := r.URL.Query().Get("solve")
		if solveID == "" {
			solveID = "default"
		}
		hub.ServeWS(w, r, solveID)
	}))
	defer server.Close()

	// Convert HTTP URL to WebSocket URL
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?solve=msg-test"

	// Connect to WebSocket
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	// Give time for connection to establish
	time.Sleep(10 * time.Millisecond)

	result := testBroadcastResult(t)
	hub.BroadcastToSolve("msg-test", result)

	// Read message from WebSocket
	conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	_, messageData, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read WebSocket message: %v", err)
	}

	// Parse the message
	var message Message
	err = json.Unmarshal(messageData, &message)
	if err != nil {
		t.Fatalf("Failed to unmarshal message: %v", err)
	}

	// Verify message content
	if message.SolveID != "msg-test" {
		t.Errorf("Expected solveID 'msg-test', got %s", message.SolveID)
	}

	if message.Result == nil {
		t.Fatal("Expected result in message")
	}

	if message.Result.PathLen != result.PathLen {
		t.Errorf("Expected path length %d, got %d", result.PathLen, message.Result.PathLen)
	}

	if message.Result.Algorithm != solver.AlgorithmBFS {
		t.Errorf("Expected algorithm bfs, got %s", message.Result.Algorithm)
	}
}
