// Package services содержит логику бизнес-уровня для регистрации пользователей
// и аутентификации по email и паролю.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/agro-monitor/internal/lib/jwt"
	"github.com/magabrotheeeer/agro-monitor/internal/lib/password"
	"github.com/magabrotheeeer/agro-monitor/internal/models"
)

// ProducerRole — роль, назначаемая каждому новому пользователю при регистрации.
const ProducerRole = "PRODUCTOR"

// ErrInvalidCredentials возвращается при неверном email или пароле.
// Причины (нет пользователя / не совпал пароль) намеренно неразличимы,
// чтобы не раскрывать, какая часть учётных данных неверна.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrRoleNotConfigured возвращается, если роль по умолчанию не заведена в справочнике.
var ErrRoleNotConfigured = errors.New("role PRODUCTOR is not configured")

// ErrUserAlreadyExists возвращается при попытке повторной регистрации
// с занятым email или номером документа.
var ErrUserAlreadyExists = errors.New("user with this email or document already exists")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// FindUserByEmail возвращает пользователя с названием роли или (nil, nil), если не найден.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)

	// FindRoleIDByName возвращает идентификатор роли или пустую строку, если роли нет.
	FindRoleIDByName(ctx context.Context, name string) (string, error)

	// ExistsByEmailOrDocument сообщает, занят ли email или номер документа.
	ExistsByEmailOrDocument(ctx context.Context, email, documentNumber string) (bool, error)

	// CreateUser сохраняет нового пользователя и возвращает его идентификатор.
	CreateUser(ctx context.Context, input models.NewUserInput, passwordHash, roleID string) (string, error)
}

// AuthService отвечает за регистрацию, авторизацию и проверку JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создаёт нового пользователя с ролью PRODUCTOR и хэшированием пароля.
// Возвращает идентификатор созданного пользователя.
//
// Проверка дубликатов и вставка — два отдельных запроса, поэтому гонка
// одновременных регистраций разрешается ограничением уникальности в базе:
// её срабатывание тоже приводит к ErrUserAlreadyExists.
func (s *AuthService) Register(ctx context.Context, input models.NewUserInput) (string, error) {
	const op = "services.auth.Register"

	roleID, err := s.users.FindRoleIDByName(ctx, ProducerRole)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if roleID == "" {
		return "", ErrRoleNotConfigured
	}

	exists, err := s.users.ExistsByEmailOrDocument(ctx, input.Email, input.DocumentNumber)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return "", ErrUserAlreadyExists
	}

	documentTypeID, err := uuid.Parse(input.DocumentTypeID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	input.DocumentTypeID = documentTypeID.String()

	hash, err := password.GetHash(input.Password)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	uid, err := s.users.CreateUser(ctx, input, hash, roleID)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			return "", ErrUserAlreadyExists
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return uid, nil
}

// Login проверяет учётные данные и выпускает JWT с набором утверждений
// {id, email, name, role}. Неизвестный email и неверный пароль дают
// одинаковую ошибку ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, models.Session, error) {
	const op = "services.auth.Login"

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		return "", models.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return "", models.Session{}, ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", models.Session{}, ErrInvalidCredentials
	}

	session := models.Session{
		UID:   user.UID,
		Email: user.Email,
		Name:  user.FullName(),
		Role:  user.Role,
	}
	token, err := s.jwtMaker.GenerateToken(session)
	if err != nil {
		return "", models.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return token, session, nil
}

// ValidateToken проверяет JWT и восстанавливает сессию запроса из его claims.
// Хранилище при этом не опрашивается: схема сессий полностью stateless.
func (s *AuthService) ValidateToken(_ context.Context, token string) (models.Session, error) {
	const op = "services.auth.ValidateToken"

	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("%s: %w", op, err)
	}
	return claims.Session(), nil
}
