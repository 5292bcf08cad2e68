package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/cafes-platform-api/internal/application/dto"
	"github.com/jhoicas/cafes-platform-api/internal/domain"
	"github.com/jhoicas/cafes-platform-api/internal/domain/entity"
	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
	"github.com/jhoicas/cafes-platform-api/pkg/jwt"
	"github.com/jhoicas/cafes-platform-api/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para la generación de tokens de API.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta el chequeo de email y el insert dentro de una transacción,
// respaldada por el índice único (cierra la carrera check-then-insert).
type TxRunner interface {
	RunUsers(ctx context.Context, fn func(users repository.UserRepository) error) error
}

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	userRepo repository.UserRepository
	tx       TxRunner
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, tx TxRunner, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register valida email, política de contraseña, confirmación y rol; hashea
// con bcrypt (salt por llamada, costo ajustable) y persiste la cuenta activa.
// Un email ya registrado devuelve domain.ErrEmailAlreadyExists sin insertar.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	v := validator.New()
	v.Required(in.BusinessName, "El nombre del negocio")
	if v.Email(in.Email) {
		v.MaxLength(in.Email, 254, "El email")
	}
	v.Password(in.Password)
	v.InArray(in.Role, entity.RegistrableRoles, "El rol")
	if !v.IsValid() {
		return nil, domain.NewValidationError(v.Errors()...)
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.NewValidationError("Las contraseñas no coinciden")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.BusinessName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Active:       true,
		CreatedAt:    time.Now(),
	}

	err = uc.tx.RunUsers(ctx, func(users repository.UserRepository) error {
		exists, err := users.EmailExists(ctx, in.Email)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrEmailAlreadyExists
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica el email, el estado de la cuenta y la contraseña (verify de
// bcrypt, tiempo constante; jamás comparación directa de strings). Devuelve
// el usuario sin hash más un JWT para clientes de API.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	v := validator.New()
	if !v.Email(in.Email) {
		return nil, domain.NewValidationError(v.Errors()...)
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Active {
		return nil, domain.ErrAccountSuspended
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// Me devuelve la cuenta del actor autenticado leída del almacén, no de la
// sesión: una suspensión posterior al login se refleja de inmediato.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Active {
		return nil, domain.ErrAccountSuspended
	}
	return ToUserResponse(user), nil
}

// ToUserResponse mapea la entidad a la salida pública (sin password hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.StatusLabel(),
		CreatedAt: u.CreatedAt,
	}
}
