package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventario-api/internal/domain"
	"github.com/tu-usuario/inventario-api/internal/domain/entity"
	"github.com/tu-usuario/inventario-api/internal/domain/repository"
	"github.com/tu-usuario/inventario-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve domain.ErrUserAlreadyExists si el username ya existe.
// La verificación de existencia ocurre antes del insert; no es atómica.
func (uc *AuthUseCase) Register(username, name, password string) error {
	existing, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrUserAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if name == "" {
		name = username
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.userRepo.Create(user)
}

// Login verifica username/password y genera el JWT.
// Usuario inexistente y password incorrecto devuelven el mismo
// domain.ErrInvalidCredentials para no permitir enumerar usernames.
func (uc *AuthUseCase) Login(username, password string) (string, error) {
	user, err := uc.userRepo.FindByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return jwt.Generate(uc.jwtCfg.Secret, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
