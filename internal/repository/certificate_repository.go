package repository

import (
	"workshop_hub_backend/internal/model"

	"gorm.io/gorm"
)

type CertificateRepository struct {
	DB *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) Create(certificate *model.Certificate) error {
	return r.DB.Create(certificate).Error
}

func (r *CertificateRepository) FindByID(id uint) (*model.Certificate, error) {
	var certificate model.Certificate
	err := r.DB.
		Preload("Participant").
		Preload("Workshop").
		First(&certificate, id).Error
	return &certificate, err
}

func (r *CertificateRepository) FindByUUID(uuid string) (*model.Certificate, error) {
	var certificate model.Certificate
	err := r.DB.
		Preload("Participant").
		Preload("Workshop").
		Where("uuid = ?", uuid).
		First(&certificate).Error
	return &certificate, err
}

func (r *CertificateRepository) FindByPair(participantID, workshopID uint) (*model.Certificate, error) {
	var certificate model.Certificate
	err := r.DB.
		Where("participant_id = ? AND workshop_id = ?", participantID, workshopID).
		First(&certificate).Error
	return &certificate, err
}

// Delete 证书不可修改，重发只能删除后重新生成。
// 物理删除，否则唯一键 (participant, workshop) 会挡住重新签发
func (r *CertificateRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.Certificate{}, id).Error
}

func (r *CertificateRepository) ListByParticipant(participantID uint) ([]model.Certificate, error) {
	var certificates []model.Certificate
	err := r.DB.
		Preload("Participant").
		Preload("Workshop").
		Where("participant_id = ?", participantID).
		Order("date DESC").
		Find(&certificates).Error
	return certificates, err
}

// CertificateFilter 列表过滤条件
type CertificateFilter struct {
	ParticipantID      uint
	WorkshopID         uint
	TeachingInstructor uint
	OnlyOwnParticipant uint
}

func (r *CertificateRepository) List(page, limit int, filter CertificateFilter) ([]model.Certificate, int64, error) {
	var certificates []model.Certificate
	var total int64

	query := r.DB.Model(&model.Certificate{})

	if filter.ParticipantID != 0 {
		query = query.Where("participant_id = ?", filter.ParticipantID)
	}
	if filter.WorkshopID != 0 {
		query = query.Where("workshop_id = ?", filter.WorkshopID)
	}
	if filter.TeachingInstructor != 0 {
		query = query.Where(
			"workshop_id IN (?)",
			r.DB.Model(&model.WorkshopInstructor{}).Select("workshop_id").Where("instructor_id = ?", filter.TeachingInstructor),
		)
	}
	if filter.OnlyOwnParticipant != 0 {
		query = query.Where("participant_id = ?", filter.OnlyOwnParticipant)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Participant").
		Preload("Workshop").
		Order("date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&certificates).Error
	return certificates, total, err
}
