package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/agro-monitor/internal/models"
)

// FindUserByEmail возвращает пользователя по email вместе с названием роли.
// Если пользователь не найден, возвращает (nil, nil): отсутствие записи
// не считается ошибкой и отличимо от сбоя запроса.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.FindUserByEmail"

	query := `SELECT u.id, u.first_name, u.last_name, u.email, u.password,
			      r.name, u.document_type_id, u.document_number,
			      u.phone, u.address, u.created_at
			  FROM users u
			  JOIN roles r ON r.id = u.role_id
			  WHERE u.email = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, email)

	var phone, address sql.NullString
	if err := row.Scan(&u.UID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.Role, &u.DocumentTypeID, &u.DocumentNumber, &phone, &address, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if phone.Valid {
		u.Phone = &phone.String
	}
	if address.Valid {
		u.Address = &address.String
	}
	return u, nil
}

// FindRoleIDByName возвращает идентификатор роли по её названию
// или пустую строку, если роль не настроена.
func (s *Storage) FindRoleIDByName(ctx context.Context, name string) (string, error) {
	const op = "storage.FindRoleIDByName"

	var id string
	query := `SELECT id FROM roles WHERE name = $1`
	if err := s.DB.QueryRowContext(ctx, query, name).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// ExistsByEmailOrDocument сообщает, занят ли email или номер документа.
// Используется как предварительная проверка дубликатов перед вставкой.
func (s *Storage) ExistsByEmailOrDocument(ctx context.Context, email, documentNumber string) (bool, error) {
	const op = "storage.ExistsByEmailOrDocument"

	var exists bool
	query := `SELECT EXISTS (
			      SELECT 1 FROM users WHERE email = $1 OR document_number = $2
			  )`
	if err := s.DB.QueryRowContext(ctx, query, email, documentNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// CreateUser сохраняет нового пользователя и возвращает его идентификатор.
// Полное имя разбивается на имя (первое слово) и фамилию (остальные слова).
// Нарушение уникальности email или номера документа транслируется
// в models.ErrAlreadyExists: проверка дубликатов и вставка не атомарны,
// и последним рубежом служит ограничение уникальности в базе.
func (s *Storage) CreateUser(ctx context.Context, input models.NewUserInput, passwordHash, roleID string) (string, error) {
	const op = "storage.CreateUser"

	firstName, lastName := splitName(input.Name)

	var newID string
	query := `INSERT INTO users (first_name, last_name, email, password,
			      role_id, document_type_id, document_number, phone, address)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		firstName, lastName, input.Email, passwordHash, roleID,
		input.DocumentTypeID, input.DocumentNumber, input.Phone, input.Address).Scan(&newID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return "", fmt.Errorf("%s: %w", op, models.ErrAlreadyExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListDocumentTypes возвращает все типы документов из справочника.
func (s *Storage) ListDocumentTypes(ctx context.Context) ([]models.DocumentType, error) {
	const op = "storage.ListDocumentTypes"

	query := `SELECT id, name FROM document_types ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.DocumentType
	for rows.Next() {
		var dt models.DocumentType
		if err = rows.Scan(&dt.ID, &dt.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, dt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// splitName делит полное имя на имя и фамилию: первое слово и всё остальное.
func splitName(full string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(full))
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
