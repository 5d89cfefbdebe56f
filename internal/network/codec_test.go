package network

import (
	"net"
	"testing"
)

// net.Pipe is synchronous, so sends run in a goroutine and the test side
// receives.
func TestCodecRoundTrip(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	client := NewCodec(clientConn)
	server := NewCodec(serverConn)

	sendErr := make(chan error, 1)
	go func() {
		sendErr <- client.Send(MessageTypeLogin, &LoginPayload{
			Username: "alice",
			Password: "hunter2",
		})
	}()

	msg, err := server.Receive()
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}
	if err := <-sendErr; err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if msg.Type != MessageTypeLogin {
		t.Fatalf("message type = %s, want %s", msg.Type, MessageTypeLogin)
	}

	var payload LoginPayload
	if err := ParsePayload(msg, &payload); err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	if payload.Username != "alice" || payload.Password != "hunter2" {
		t.Errorf("payload = %+v, want the credentials sent", payload)
	}
}

func TestCodecPreservesMessageOrder(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	client := NewCodec(clientConn)
	server := NewCodec(serverConn)

	indexes := []int{0, 2, 1}
	go func() {
		for _, idx := range indexes {
			if err := client.Send(MessageTypeBuyUnit, &BuyPayload{Index: idx}); err != nil {
				return
			}
		}
	}()

	for i, want := range indexes {
		msg, err := server.Receive()
		if err != nil {
			t.Fatalf("Receive %d failed: %v", i, err)
		}
		var payload BuyPayload
		if err := ParsePayload(msg, &payload); err != nil {
			t.Fatalf("ParsePayload %d failed: %v", i, err)
		}
		if payload.Index != want {
			t.Errorf("message %d index = %d, want %d", i, payload.Index, want)
		}
	}
}

func TestCodecReceiveAfterClose(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	server := NewCodec(serverConn)

	clientConn.Close()
	if _, err := server.Receive(); err == nil {
		t.Error("Receive on a closed connection succeeded, want error")
	}
	serverConn.Close()
}

func TestCodecRichPayload(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	client := NewCodec(clientConn)
	server := NewCodec(serverConn)

	sent := &RoundReportPayload{
		Round: 3,
		Attacks: []AttackInfo{
			{Attacker: "alice", Target: "bob", Damage: 7, Crit: true},
		},
		Outcome: "continue",
		YourUnits: []UnitStatusInfo{
			{Name: "alice", HP: 17, MaxHP: 30, Alive: true},
		},
		OpponentUnits: []UnitStatusInfo{
			{Name: "bob", HP: 0, MaxHP: 30, Alive: false},
		},
	}

	go func() { _ = server.Send(MessageTypeRoundReport, sent) }()

	msg, err := client.Receive()
	if err != nil {
		t.Fatalf("Receive failed: %v", err)
	}

	var got RoundReportPayload
	if err := ParsePayload(msg, &got); err != nil {
		t.Fatalf("ParsePayload failed: %v", err)
	}
	if got.Round != 3 || len(got.Attacks) != 1 || got.Attacks[0] != sent.Attacks[0] {
		t.Errorf("round report = %+v, want %+v", got, *sent)
	}
	if len(got.OpponentUnits) != 1 || got.OpponentUnits[0].Alive {
		t.Errorf("opponent units = %+v, want the dead unit preserved", got.OpponentUnits)
	}
}
