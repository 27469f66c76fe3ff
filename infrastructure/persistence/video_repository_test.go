package persistence

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"walkingtube/domain/model"
)

func videoRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "youtube_id", "latitude", "longitude",
		"description", "location_name", "author_id", "created_at",
	})
}

func TestVideoRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVideoRepository(db)

	newer := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	older := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, youtube_id, latitude, longitude, description, location_name, author_id, created_at FROM videos ORDER BY created_at DESC`)).
		WillReturnRows(videoRows().
			AddRow("v2", "Walking in Shibuya 4K", "W1WdbWq-7u0", 35.6595, 139.7004, "Rainy night walk.", "Shibuya, Tokyo", "u1", newer).
			AddRow("v1", "Bangkok Street Food Tour", "PeW133e5q7I", 13.7563, 100.5018, nil, nil, nil, older))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.Equal(t, "v2", list[0].ID)
	require.Equal(t, "W1WdbWq-7u0", list[0].YouTubeID)
	require.NotNil(t, list[0].AuthorID)
	require.Equal(t, "u1", *list[0].AuthorID)

	require.Equal(t, "v1", list[1].ID)
	require.Nil(t, list[1].Description)
	require.Nil(t, list[1].AuthorID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVideoRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, youtube_id, latitude, longitude, description, location_name, author_id, created_at FROM videos WHERE id = $1`)).
		WithArgs("missing").
		WillReturnRows(videoRows())

	_, err = repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, model.ErrVideoNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_Create_AssignsIDAndCreatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVideoRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO videos`)).
		WithArgs(sqlmock.AnyArg(), "Han River Walk", "dQw4w9WgXcQ", 37.5, 127.0, nil, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	author := "u1"
	video := model.Video{
		Title:     "Han River Walk",
		YouTubeID: "dQw4w9WgXcQ",
		Latitude:  37.5,
		Longitude: 127.0,
		AuthorID:  &author,
	}
	require.NoError(t, repo.Create(context.Background(), &video))
	require.NotEmpty(t, video.ID)
	require.False(t, video.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVideoRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM videos WHERE id = $1`)).
		WithArgs("v1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "v1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_Delete_Missing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewVideoRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM videos WHERE id = $1`)).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(context.Background(), "ghost"), model.ErrVideoNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
