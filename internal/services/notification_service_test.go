package services_test

import (
	"errors"
	"testing"

	"harborview/internal/services"
)

func TestNotificationLog(t *testing.T) {
	st := memstore(t)
	notes := services.NewNotificationService(st)

	notes.Add("First", "first message", "info")
	notes.Add("Second", "second message", "warning")

	log, err := notes.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(log) != 2 || log[0].Title != "Second" {
		t.Fatalf("log must be most-recent-first, got %+v", log)
	}
	if n, _ := notes.UnreadCount(); n != 2 {
		t.Fatalf("want 2 unread, got %d", n)
	}

	if err := notes.MarkRead(log[0].ID); err != nil {
		t.Fatal(err)
	}
	if n, _ := notes.UnreadCount(); n != 1 {
		t.Fatalf("want 1 unread after mark, got %d", n)
	}

	if err := notes.MarkRead("NTF-missing"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	if err := notes.Clear(); err != nil {
		t.Fatal(err)
	}
	log, _ = notes.List()
	if len(log) != 0 {
		t.Fatalf("log should be empty after clear, got %+v", log)
	}
}

func TestStaffLogin(t *testing.T) {
	st := memstore(t)
	auth := services.NewAuthService(st)

	if _, err := auth.Login("sid-1", "frontdesk", "wrong"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds, got %v", err)
	}

	u, err := auth.Login("sid-1", "frontdesk", "Fr0ntDesk!")
	if err != nil {
		t.Fatal(err)
	}
	if u.Department != "front-desk" {
		t.Fatalf("want front-desk, got %q", u.Department)
	}

	sess, err := auth.CurrentSession("sid-1")
	if err != nil {
		t.Fatal(err)
	}
	if sess == nil || sess.Username != "frontdesk" {
		t.Fatalf("session not bound: %+v", sess)
	}

	if err := auth.Logout("sid-1"); err != nil {
		t.Fatal(err)
	}
	sess, err = auth.CurrentSession("sid-1")
	if err != nil {
		t.Fatal(err)
	}
	if sess != nil {
		t.Fatalf("session should be gone, got %+v", sess)
	}
}
