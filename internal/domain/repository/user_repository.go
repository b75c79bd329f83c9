package repository

import "github.com/allegrotrade/marketplace-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Ausencia se comunica con (nil, nil), nunca con error.
// No existe Delete: el diseño original no expone borrado de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
