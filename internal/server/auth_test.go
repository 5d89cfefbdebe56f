package server

import (
	"testing"

	"github.com/NP-Dat/battle-arena/internal/game"
)

func TestAuthenticateCreatesAccountOnFirstLogin(t *testing.T) {
	am := NewAuthManager()

	player, err := am.Authenticate("alice", "hunter2")
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	if player.Username != "alice" || player.ID == "" {
		t.Errorf("player = %+v, want a fresh account with an ID", player)
	}
	if player.HashedPassword == "hunter2" {
		t.Error("password stored in plain text")
	}

	// Same credentials log into the same account.
	again, err := am.Authenticate("alice", "hunter2")
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}
	if again.ID != player.ID {
		t.Errorf("second login got ID %s, want %s", again.ID, player.ID)
	}
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	am := NewAuthManager()
	if _, err := am.Authenticate("alice", "hunter2"); err != nil {
		t.Fatalf("account creation failed: %v", err)
	}

	if _, err := am.Authenticate("alice", "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestAuthenticateRejectsEmptyCredentials(t *testing.T) {
	am := NewAuthManager()
	if _, err := am.Authenticate("", "pw"); err == nil {
		t.Error("empty username accepted")
	}
	if _, err := am.Authenticate("alice", ""); err == nil {
		t.Error("empty password accepted")
	}
}

func TestRecordResult(t *testing.T) {
	am := NewAuthManager()
	if _, err := am.Authenticate("alice", "pw"); err != nil {
		t.Fatalf("account creation failed: %v", err)
	}

	record := am.RecordResult("alice", true, game.OutcomePlayerWin)
	if record.Wins != 1 || record.Losses != 0 || record.Draws != 0 {
		t.Errorf("record after win = %+v, want 1-0-0", record)
	}

	record = am.RecordResult("alice", false, game.OutcomeEnemyWin)
	if record.Losses != 1 {
		t.Errorf("record after loss = %+v, want a loss counted", record)
	}

	// Draws count as draws regardless of the won flag.
	record = am.RecordResult("alice", true, game.OutcomeDraw)
	if record.Draws != 1 || record.Wins != 1 {
		t.Errorf("record after draw = %+v, want 1-1-1", record)
	}
	if record.Total() != 3 {
		t.Errorf("total = %d, want 3", record.Total())
	}
}

func TestRecordResultIgnoresUnknownUsers(t *testing.T) {
	am := NewAuthManager()
	record := am.RecordResult("Warlord", true, game.OutcomePlayerWin)
	if record.Total() != 0 {
		t.Errorf("record for unknown user = %+v, want zeroes", record)
	}
}

func TestActiveUserTracking(t *testing.T) {
	am := NewAuthManager()

	if err := am.RegisterActiveUser("alice", "client-1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if !am.IsUserActive("alice") {
		t.Error("registered user not reported active")
	}

	// Re-registering from the same client is fine; another client is not.
	if err := am.RegisterActiveUser("alice", "client-1"); err != nil {
		t.Errorf("re-register from same client failed: %v", err)
	}
	if err := am.RegisterActiveUser("alice", "client-2"); err == nil {
		t.Error("second client allowed to take an active session")
	}

	am.UnregisterActiveUser("alice")
	if am.IsUserActive("alice") {
		t.Error("unregistered user still reported active")
	}
	if err := am.RegisterActiveUser("alice", "client-2"); err != nil {
		t.Errorf("register after unregister failed: %v", err)
	}
}
