package model

import "time"

// Certificate 结业证书，(participant, workshop) 唯一，签发后不可修改
// swagger:model Certificate
type Certificate struct {
	BaseModel
	ParticipantID uint      `gorm:"not null;uniqueIndex:idx_certificate_pair" json:"participantId"`
	WorkshopID    uint      `gorm:"not null;uniqueIndex:idx_certificate_pair" json:"workshopId"`
	UUID          string    `gorm:"size:36;uniqueIndex;not null" json:"uuid"`
	Date          time.Time `gorm:"not null" json:"date"`

	Participant *User     `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
	Workshop    *Workshop `gorm:"foreignKey:WorkshopID" json:"workshop,omitempty"`
}

func (Certificate) TableName() string {
	return "certificates"
}
