package services

import (
	"errors"
	"testing"

	"csat/pkg/utils"
)

func TestAdminLogin(t *testing.T) {
	svc := NewAdminService("letmein")

	token, err := svc.Login("letmein")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("no token issued")
	}

	if _, err := svc.Login("wrong"); !errors.Is(err, utils.ErrInvalidPassword) {
		t.Fatalf("got %v, want ErrInvalidPassword", err)
	}
}
