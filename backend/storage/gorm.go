package storage

import (
	"encoding/json"
	"errors"
	"time"

	"project/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProgressRepository persists progress documents as JSON blobs in
// a key-value table, keyed "progress_<username>". The blob keeps the
// original wire field names, so records survive round-trips with any
// previously stored data.
type GormProgressRepository struct {
	DB *gorm.DB
}

func NewGormProgressRepository(db *gorm.DB) *GormProgressRepository {
	return &GormProgressRepository{DB: db}
}

func (r *GormProgressRepository) Load(username string) (*models.UserProgress, error) {
	var rec models.ProgressRecord
	err := r.DB.First(&rec, "key = ?", ProgressKey(username)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p models.UserProgress
	if err := json.Unmarshal([]byte(rec.Data), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProgressRepository) Save(p *models.UserProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	rec := models.ProgressRecord{
		Key:       ProgressKey(p.Username),
		Data:      string(data),
		UpdatedAt: time.Now(),
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&rec).Error
}

func (r *GormProgressRepository) Reset() error {
	return r.DB.Where("key LIKE ?", "progress_%").Delete(&models.ProgressRecord{}).Error
}

type GormCompletionLog struct {
	DB *gorm.DB
}

func NewGormCompletionLog(db *gorm.DB) *GormCompletionLog {
	return &GormCompletionLog{DB: db}
}

func (l *GormCompletionLog) Append(entry models.ChallengeCompletion) error {
	return l.DB.Create(&entry).Error
}

func (l *GormCompletionLog) ForDate(username, date string) ([]models.ChallengeCompletion, error) {
	var entries []models.ChallengeCompletion
	err := l.DB.Where("username = ? AND date = ?", username, date).
		Order("id").
		Find(&entries).Error
	return entries, err
}

func (l *GormCompletionLog) Reset() error {
	return l.DB.Where("1 = 1").Delete(&models.ChallengeCompletion{}).Error
}

type GormBadgeStore struct {
	DB *gorm.DB
}

func NewGormBadgeStore(db *gorm.DB) *GormBadgeStore {
	return &GormBadgeStore{DB: db}
}

func (s *GormBadgeStore) Unlocked(username string) (map[string]time.Time, error) {
	var rows []models.UserBadge
	if err := s.DB.Where("username = ?", username).Find(&rows).Error; err != nil {
		return nil, err
	}

	unlocked := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		unlocked[row.BadgeID] = row.UnlockedAt
	}
	return unlocked, nil
}

func (s *GormBadgeStore) Unlock(username, badgeID string, at time.Time) error {
	row := models.UserBadge{Username: username, BadgeID: badgeID, UnlockedAt: at}
	return s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

func (s *GormBadgeStore) Reset() error {
	return s.DB.Where("1 = 1").Delete(&models.UserBadge{}).Error
}
