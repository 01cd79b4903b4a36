package service

import (
	"context"
	"errors"
	"testing"

	"camtourvisor/internal/model"
)

func TestProfileUpdate(t *testing.T) {
	ctx := context.Background()
	chat := int64(555)
	profiles := newFakeProfiles(model.Profile{ID: "u1", Email: "a@b.cm", Username: "a", TelegramChatID: &chat})
	s := NewProfileService(profiles)

	p, err := s.Update(ctx, "u1", model.ProfileUpdate{FullName: ptr(" Ngono Marie "), AvatarURL: ptr("https://img/me.png")})
	if err != nil {
		t.Fatal(err)
	}
	if p.FullName != "Ngono Marie" || p.Username != "a" || p.TelegramChatID == nil {
		t.Errorf("unexpected profile: %+v", p)
	}

	p, err = s.Update(ctx, "u1", model.ProfileUpdate{TelegramChatID: ptr(int64(0))})
	if err != nil {
		t.Fatal(err)
	}
	if p.TelegramChatID != nil {
		t.Error("telegram chat id not cleared")
	}

	var verr *ValidationError
	if _, err := s.Update(ctx, "u1", model.ProfileUpdate{Username: ptr(" ")}); !errors.As(err, &verr) {
		t.Errorf("err = %v, want ValidationError", err)
	}
	if _, err := s.Update(ctx, "missing", model.ProfileUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestProfileDelete(t *testing.T) {
	ctx := context.Background()
	s := NewProfileService(newFakeProfiles(model.Profile{ID: "u1"}))
	if err := s.Delete(ctx, "u1"); err != nil {
		t.Fatal(err)
	}
	list, err := s.List(ctx)
	if err != nil || len(list) != 0 {
		t.Errorf("List = %v, %v", list, err)
	}
}
