package repository

import (
	"github.com/cmac111/scraper/internal/models"
	"gorm.io/gorm"
)

// MaxListResults caps unbounded list endpoints
const MaxListResults = 1000

// StatusCheckRepositoryImpl implements StatusCheckRepository
type StatusCheckRepositoryImpl struct {
	db *gorm.DB
}

func NewStatusCheckRepository(db *gorm.DB) models.StatusCheckRepository {
	return &StatusCheckRepositoryImpl{db: db}
}

func (r *StatusCheckRepositoryImpl) Create(check *models.StatusCheck) error {
	return r.db.Create(check).Error
}

func (r *StatusCheckRepositoryImpl) List(limit int) ([]models.StatusCheck, error) {
	var checks []models.StatusCheck
	err := r.db.Limit(limit).Find(&checks).Error
	return checks, err
}

// BusinessLeadRepositoryImpl implements BusinessLeadRepository
type BusinessLeadRepositoryImpl struct {
	db *gorm.DB
}

func NewBusinessLeadRepository(db *gorm.DB) models.BusinessLeadRepository {
	return &BusinessLeadRepositoryImpl{db: db}
}

func (r *BusinessLeadRepositoryImpl) Create(lead *models.BusinessLead) error {
	return r.db.Create(lead).Error
}

func (r *BusinessLeadRepositoryImpl) List(limit int) ([]models.BusinessLead, error) {
	var leads []models.BusinessLead
	err := r.db.Limit(limit).Find(&leads).Error
	return leads, err
}

func (r *BusinessLeadRepositoryImpl) DeleteAll() (int64, error) {
	result := r.db.Exec("DELETE FROM business_leads")
	return result.RowsAffected, result.Error
}

// RepositoryManager bundles all repositories
type RepositoryManager struct {
	StatusCheck  models.StatusCheckRepository
	BusinessLead models.BusinessLeadRepository
}

func NewRepositoryManager(db *gorm.DB) *RepositoryManager {
	return &RepositoryManager{
		StatusCheck:  NewStatusCheckRepository(db),
		BusinessLead: NewBusinessLeadRepository(db),
	}
}
