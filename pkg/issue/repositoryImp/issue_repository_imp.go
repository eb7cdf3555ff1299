package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"palmtrack/entities"
	"palmtrack/pkg/issue/repository"
)

type issueRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.IssueRepository { return &issueRepo{db} }

func (r *issueRepo) Create(i *entities.Issue) error { return r.db.Create(i).Error }

func (r *issueRepo) Update(i *entities.Issue) error { return r.db.Save(i).Error }

func (r *issueRepo) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entities.Issue{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *issueRepo) FindByID(id string) (*entities.Issue, error) {
	var i entities.Issue
	if err := r.db.Where("id = ?", id).First(&i).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *issueRepo) ListByGarden(gardenID string) ([]entities.Issue, error) {
	var out []entities.Issue
	if err := r.db.Where("garden_id = ?", gardenID).Order("reported_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *issueRepo) CountOpen() (int64, error) {
	var n int64
	err := r.db.Model(&entities.Issue{}).Where("status = ?", entities.IssueStatusOpen).Count(&n).Error
	return n, err
}
