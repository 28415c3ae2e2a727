package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serversDomain "github.com/keypanel/keypanel/internal/servers/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func TestPostgreSQLServerTemplateRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLServerTemplateRepository(db)

		template := &serversDomain.ServerTemplate{
			ID:            uuid.Must(uuid.NewV7()),
			ServerName:    "eu-west-1",
			CommandFormat: "deploy {target}",
		}

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO server_templates`)).
			WithArgs(template.ID, template.ServerName, template.CommandFormat, template.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), template)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NameConflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLServerTemplateRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO server_templates`)).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "server_templates_server_name_unique"`))

		err := repo.Create(context.Background(), &serversDomain.ServerTemplate{
			ID:            uuid.Must(uuid.NewV7()),
			ServerName:    "eu-west-1",
			CommandFormat: "deploy {target}",
		})
		assert.ErrorIs(t, err, serversDomain.ErrServerNameTaken)
	})
}

func TestPostgreSQLServerTemplateRepository_GetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLServerTemplateRepository(db)

		id := uuid.Must(uuid.NewV7())
		createdAt := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "server_name", "command_format", "created_at"}).
			AddRow(id, "eu-west-1", "deploy {target}", createdAt)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, server_name, command_format, created_at FROM server_templates WHERE id = $1`)).
			WithArgs(id).
			WillReturnRows(rows)

		template, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, template.ID)
		assert.Equal(t, "eu-west-1", template.ServerName)
		assert.Equal(t, "deploy {target}", template.CommandFormat)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLServerTemplateRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).WillReturnError(sql.ErrNoRows)

		template, err := repo.GetByID(context.Background(), uuid.Must(uuid.NewV7()))
		assert.Nil(t, template)
		assert.ErrorIs(t, err, serversDomain.ErrServerTemplateNotFound)
	})
}

func TestPostgreSQLServerTemplateRepository_List(t *testing.T) {
	t.Run("OrderedByName", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLServerTemplateRepository(db)

		rows := sqlmock.NewRows([]string{"id", "server_name", "command_format", "created_at"}).
			AddRow(uuid.Must(uuid.NewV7()), "ap-south-1", "restart {target}", time.Now().UTC()).
			AddRow(uuid.Must(uuid.NewV7()), "eu-west-1", "deploy {target}", time.Now().UTC())

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, server_name, command_format, created_at FROM server_templates ORDER BY server_name ASC`)).
			WillReturnRows(rows)

		templates, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, templates, 2)
		assert.Equal(t, "ap-south-1", templates[0].ServerName)
		assert.Equal(t, "eu-west-1", templates[1].ServerName)
	})

	t.Run("Empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLServerTemplateRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "server_name", "command_format", "created_at"}))

		templates, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, templates)
	})
}

func TestPostgreSQLServerTemplateRepository_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLServerTemplateRepository(db)

		id := uuid.Must(uuid.NewV7())
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM server_templates WHERE id = $1`)).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), id)
		assert.NoError(t, err)
	})

	t.Run("AbsentIDIsNotAnError", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLServerTemplateRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM server_templates`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), uuid.Must(uuid.NewV7()))
		assert.NoError(t, err)
	})
}
