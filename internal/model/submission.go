package model

import "time"

// Submission 一次评分尝试，(participant, assignment, attempt) 唯一，不允许覆盖
// swagger:model Submission
type Submission struct {
	BaseModel
	ParticipantID uint      `gorm:"not null;uniqueIndex:idx_participant_assignment_attempt" json:"participantId"`
	AssignmentID  uint      `gorm:"not null;uniqueIndex:idx_participant_assignment_attempt" json:"assignmentId"`
	AttemptNumber int       `gorm:"not null;uniqueIndex:idx_participant_assignment_attempt" json:"attemptNumber"`
	Score         int       `gorm:"not null" json:"score"`
	Timestamp     time.Time `gorm:"not null" json:"timestamp"`

	Participant *User       `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
	Assignment  *Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
}

func (Submission) TableName() string {
	return "submissions"
}
