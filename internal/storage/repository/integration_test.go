package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/agro-monitor/internal/migrations"
	"github.com/magabrotheeeer/agro-monitor/internal/models"
)

// setupIntegrationStorage поднимает PostgreSQL в контейнере и прогоняет миграции.
// Тест пропускается, если интеграционное окружение не включено явно.
func setupIntegrationStorage(t *testing.T) *Storage {
	t.Helper()
	if os.Getenv("AGRO_INTEGRATION_TEST") == "" {
		t.Skip("set AGRO_INTEGRATION_TEST=1 to run integration tests")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(3*time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(connStr)
	require.NoError(t, err, "failed to create storage")
	t.Cleanup(func() {
		_ = storage.DB.Close()
	})

	err = migrations.Run(storage.DB, "../../../migrations")
	require.NoError(t, err, "failed to run migrations")

	return storage
}

func TestIntegration_UserLifecycle(t *testing.T) {
	storage := setupIntegrationStorage(t)
	ctx := context.Background()

	// Роль PRODUCTOR заведена сидом миграций
	roleID, err := storage.FindRoleIDByName(ctx, "PRODUCTOR")
	require.NoError(t, err)
	require.NotEmpty(t, roleID)

	types, err := storage.ListDocumentTypes(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, types)

	phone := "3001234567"
	input := models.NewUserInput{
		Name:           "Maria Lopez Garcia",
		Email:          "maria@example.com",
		Password:       "ignored",
		DocumentTypeID: types[0].ID,
		DocumentNumber: "10203040",
		Phone:          &phone,
	}

	uid, err := storage.CreateUser(ctx, input, "$2a$12$fakehash", roleID)
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	user, err := storage.FindUserByEmail(ctx, "maria@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uid, user.UID)
	assert.Equal(t, "Maria", user.FirstName)
	assert.Equal(t, "Lopez Garcia", user.LastName)
	assert.Equal(t, "PRODUCTOR", user.Role)
	require.NotNil(t, user.Phone)
	assert.Equal(t, phone, *user.Phone)

	exists, err := storage.ExistsByEmailOrDocument(ctx, "maria@example.com", "other")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = storage.ExistsByEmailOrDocument(ctx, "other@example.com", "10203040")
	require.NoError(t, err)
	assert.True(t, exists)

	// Повторная вставка упирается в ограничение уникальности
	_, err = storage.CreateUser(ctx, input, "$2a$12$fakehash", roleID)
	assert.ErrorIs(t, err, models.ErrAlreadyExists)

	missing, err := storage.FindUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIntegration_CaptureEvents(t *testing.T) {
	storage := setupIntegrationStorage(t)
	ctx := context.Background()

	_, err := storage.DB.Exec(`INSERT INTO stations (id) VALUES ('station-1'), ('station-2')`)
	require.NoError(t, err)

	_, err = storage.DB.Exec(`INSERT INTO capture_events
		(station_id, capture_date, capture_hour, temperature_dht22, humidity_dht22, hydrogen_mq, radiation)
		VALUES
		('station-1', '2025-03-10', 9, 25.1, 60.0, 0.4, 700.0),
		('station-1', '2025-03-10', 15, 27.9, 55.5, 0.5, 810.0),
		('station-1', '2025-03-12', 9, 26.3, 58.2, 0.3, 765.0),
		('station-2', '2025-03-11', 9, 24.0, 70.0, 0.6, 640.0)`)
	require.NoError(t, err)

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	events, err := storage.ListCaptureEvents(ctx, models.EventFilter{
		StationID: "station-1", From: from, To: to,
	})
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Новые записи первыми: по дате, затем по часу
	assert.Equal(t, 9, events[0].CaptureHour)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), events[0].CaptureDate.UTC())
	assert.Equal(t, 15, events[1].CaptureHour)
	assert.Equal(t, 9, events[2].CaptureHour)

	// Перевёрнутый диапазон — пустой результат
	events, err = storage.ListCaptureEvents(ctx, models.EventFilter{
		StationID: "station-1", From: to, To: from,
	})
	require.NoError(t, err)
	assert.Empty(t, events)

	stations, err := storage.ListStations(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Station{
		{ID: "station-1", Name: "station-1"},
		{ID: "station-2", Name: "station-2"},
	}, stations)
}

func TestIntegration_CropsCatalog(t *testing.T) {
	storage := setupIntegrationStorage(t)
	ctx := context.Background()

	var cycleID string
	err := storage.DB.QueryRow(`INSERT INTO cycles (name) VALUES ('Ciclo corto') RETURNING id`).Scan(&cycleID)
	require.NoError(t, err)

	_, err = storage.DB.Exec(`INSERT INTO crops (type, cycle_id) VALUES ('Maiz', $1), ('Cacao', NULL)`, cycleID)
	require.NoError(t, err)

	crops, err := storage.ListCrops(ctx)
	require.NoError(t, err)
	require.Len(t, crops, 2)

	byType := map[string]string{}
	for _, c := range crops {
		byType[c.Type] = c.CycleName
	}
	assert.Equal(t, "Ciclo corto", byType["Maiz"])
	assert.Equal(t, models.NoCycleLabel, byType["Cacao"])
}
