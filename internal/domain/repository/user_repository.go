package repository

import "github.com/tu-usuario/inventario-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// FindByUsername devuelve (nil, nil) si el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
}
