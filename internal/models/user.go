// Package models содержит доменные модели приложения: пользователей,
// справочные данные, события наблюдения и культуры. Структуры используются
// в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID            string    // Уникальный идентификатор пользователя
	FirstName      string    // Имя (первое слово полного имени)
	LastName       string    // Фамилия (остальные слова полного имени)
	Email          string    // Электронная почта (уникальная)
	PasswordHash   string    // Bcrypt‑хэш пароля
	Role           string    // Название роли, например PRODUCTOR
	DocumentTypeID string    // Ссылка на тип документа
	DocumentNumber string    // Номер документа
	Phone          *string   // Телефон (опционально)
	Address        *string   // Адрес (опционально)
	CreatedAt      time.Time // Дата создания учётной записи
}

// FullName возвращает отображаемое имя пользователя: имя и фамилия через пробел.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// NewUserInput — нормализованные данные регистрации после валидации.
type NewUserInput struct {
	Name           string // Полное имя, разбивается на имя и фамилию при вставке
	Email          string
	Password       string // Пароль в открытом виде, хэшируется сервисом
	DocumentTypeID string
	DocumentNumber string
	Phone          *string
	Address        *string
}

// Session — восстановленный из токена набор утверждений о пользователе.
// Живёт только в рамках одного запроса, на сервере не хранится.
type Session struct {
	UID   string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// DocumentType — справочная запись типа документа, только для чтения.
type DocumentType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
