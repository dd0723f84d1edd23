// Package jwt реализует генерацию и парсинг JWT токенов сессии с фиксированным
// набором утверждений о пользователе.
//
// Maker определяет интерфейс для создания и проверки токенов.
// MakerImpl — конкретная реализация на секретном ключе HS256 и сроке жизни.
package jwt

import (
	"time"

	"github.com/magabrotheeeer/agro-monitor/internal/models"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов сессии.
type Maker interface {
	// GenerateToken выпускает токен с набором утверждений {id, email, name, role}.
	GenerateToken(session models.Session) (string, error)
	// ParseToken проверяет подпись и срок жизни токена и возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
