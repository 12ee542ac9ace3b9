package memory

import (
	"sync"

	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository.
type UserRepo struct {
	mu    sync.RWMutex
	users []*entity.User
}

// NewUserRepository construye el store de usuarios en memoria.
func NewUserRepository() *UserRepo {
	return &UserRepo{}
}

// Create persiste un usuario nuevo. El username debe ser único; el caso de uso
// verifica existencia antes, pero el store vuelve a comprobar dentro del lock.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUserAlreadyExists
		}
	}
	r.users = append(r.users, user)
	return nil
}

// FindByUsername busca por coincidencia exacta, sensible a mayúsculas.
// Devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// Len devuelve la cantidad de usuarios (para tests).
func (r *UserRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
