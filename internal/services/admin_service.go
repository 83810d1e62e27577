package services

import (
	"log"

	"csat/pkg/utils"
)

// AdminService gates the two destructive actions (clear-to-empty and
// reset-to-seed) behind one shared password. This is a UI gate, not a
// security boundary; the password is exchanged once for a short-lived token.
type AdminServiceInterface interface {
	Login(password string) (string, error)
}

type AdminService struct {
	passwordHash string
}

func NewAdminService(sharedPassword string) AdminServiceInterface {
	hash, err := utils.HashPassword(sharedPassword)
	if err != nil {
		log.Fatalf("Error hashing admin password: %v", err)
	}
	return &AdminService{passwordHash: hash}
}

func (s *AdminService) Login(password string) (string, error) {
	if err := utils.ComparePasswords(s.passwordHash, password); err != nil {
		return "", utils.ErrInvalidPassword
	}
	return utils.CreateToken("admin", "admin")
}
