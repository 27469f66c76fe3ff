package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"walkingtube/domain/model"
	"walkingtube/domain/repository"
	"walkingtube/infrastructure/logger"
)

// VideoRepository implements the videos table access using PostgreSQL.
type VideoRepository struct {
	db *sql.DB
}

func NewVideoRepository(db *sql.DB) repository.IVideo { return &VideoRepository{db: db} }

const videoColumns = `id, title, youtube_id, latitude, longitude, description, location_name, author_id, created_at`

func scanVideo(scan func(dest ...interface{}) error) (model.Video, error) {
	var v model.Video
	var description, locationName, authorID sql.NullString
	if err := scan(&v.ID, &v.Title, &v.YouTubeID, &v.Latitude, &v.Longitude, &description, &locationName, &authorID, &v.CreatedAt); err != nil {
		return v, err
	}
	if description.Valid {
		v.Description = &description.String
	}
	if locationName.Valid {
		v.LocationName = &locationName.String
	}
	if authorID.Valid {
		v.AuthorID = &authorID.String
	}
	return v, nil
}

func (r *VideoRepository) List(ctx context.Context) ([]model.Video, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+videoColumns+` FROM videos ORDER BY created_at DESC`)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("query videos failed")
		return nil, err
	}
	defer rows.Close()

	var list []model.Video
	for rows.Next() {
		v, err := scanVideo(rows.Scan)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (model.Video, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id)
	v, err := scanVideo(row.Scan)
	if err == sql.ErrNoRows {
		return v, model.ErrVideoNotFound
	}
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "id": id}).Error("query video by id failed")
	}
	return v, err
}

// Create assigns id and createdAt; they are never accepted from the caller.
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	video.ID = uuid.NewString()
	video.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO videos (`+videoColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		video.ID, video.Title, video.YouTubeID, video.Latitude, video.Longitude,
		video.Description, video.LocationName, video.AuthorID, video.CreatedAt,
	)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":      err,
			"youtube_id": video.YouTubeID,
		}).Error("insert video failed")
	}
	return err
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"error": err, "id": id}).Error("delete video failed")
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.ErrVideoNotFound
	}
	return nil
}
