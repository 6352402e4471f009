// Package auth casos de uso de autenticación: registro y login con JWT.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/textil-api/internal/application/dto"
	"github.com/jhoicas/textil-api/internal/domain"
	"github.com/jhoicas/textil-api/internal/domain/entity"
	"github.com/jhoicas/textil-api/internal/domain/repository"
	"github.com/jhoicas/textil-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterInput datos para crear un usuario.
type RegisterInput struct {
	Username     string
	Password     string
	FullName     string
	Role         string
	WarehouseIDs []string
}

// Register crea un usuario: hashea password con bcrypt y persiste.
func (uc *UseCase) Register(in RegisterInput) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.userRepo.GetByUsername(username); existing != nil {
		return nil, domain.ErrDuplicateCode
	}
	role := in.Role
	if role == "" {
		role = entity.RoleManager
	}
	if role != entity.RoleAdmin && role != entity.RoleManager {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         role,
		WarehouseIDs: in.WarehouseIDs,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica usuario/password, genera JWT y retorna token + datos del usuario.
// Credenciales inválidas y usuario inexistente responden igual para no filtrar
// qué usuarios existen.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	warehouseIDs := user.WarehouseIDs
	if warehouseIDs == nil {
		warehouseIDs = []string{}
	}
	return &dto.LoginResponse{
		Token:        token,
		UserID:       user.ID,
		FullName:     user.FullName,
		Role:         user.Role,
		WarehouseIDs: warehouseIDs,
	}, nil
}
