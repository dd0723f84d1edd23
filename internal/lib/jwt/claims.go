// Package jwt реализует генерацию и парсинг JWT токенов сессии.
//
// CustomClaims расширяет стандартные claims JWT полями сессии пользователя.
// В токен попадают ровно четыре поля: id, email, name, role. Никакие другие
// данные пользователя в токене не хранятся.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/magabrotheeeer/agro-monitor/internal/models"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	UserUID              string `json:"id"`    // Идентификатор пользователя
	Email                string `json:"email"` // Электронная почта
	Name                 string `json:"name"`  // Отображаемое имя
	Role                 string `json:"role"`  // Название роли
	jwt.RegisteredClaims        // Встроенные стандартные claims JWT (ExpiresAt, IssuedAt и пр.)
}

// Session восстанавливает сессионный объект из утверждений токена.
func (c *CustomClaims) Session() models.Session {
	return models.Session{
		UID:   c.UserUID,
		Email: c.Email,
		Name:  c.Name,
		Role:  c.Role,
	}
}

// GenerateToken создаёт JWT токен с утверждениями сессии, подписывая его секретным ключом.
//
// Время жизни токена определяется полем tokenTTL.
func (j *MakerImpl) GenerateToken(session models.Session) (string, error) {
	claims := CustomClaims{
		UserUID: session.UID,
		Email:   session.Email,
		Name:    session.Name,
		Role:    session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит JWT токен, проверяет его подпись и валидность,
// возвращает CustomClaims с данными, если токен корректен.
func (j *MakerImpl) ParseToken(tokenStr string) (*CustomClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &CustomClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
