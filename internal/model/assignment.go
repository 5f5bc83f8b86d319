package model

import "gorm.io/datatypes"

type EvaluationType string

const (
	EvaluationLocal  EvaluationType = "LOCAL"
	EvaluationRemote EvaluationType = "REMOTE"
)

// swagger:model Assignment
type Assignment struct {
	BaseModel
	WorkshopID      uint           `gorm:"not null;index" json:"workshopId"`
	Name            string         `gorm:"size:200;not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description,omitempty"`
	MaximumScore    int            `gorm:"not null" json:"maximumScore"`
	PassingScore    int            `gorm:"not null" json:"passingScore"`
	AssignmentOrder int            `gorm:"not null;default:0" json:"assignmentOrder"`
	// 不能带 default 标签：gorm 会在插入时跳过零值字段，false 将存成默认值。
	// 缺省为必做由 service 层补齐。
	IsCompulsory    bool           `gorm:"not null" json:"isCompulsory"`
	EvaluationType  EvaluationType `gorm:"type:varchar(16);default:'LOCAL'" json:"evaluationType"`

	// 评测资源引用
	NotebookPath  string         `gorm:"size:512" json:"notebookPath,omitempty"`
	GraderImage   string         `gorm:"size:512" json:"graderImage,omitempty"`
	EvalBinaryKey string         `gorm:"size:512" json:"evalBinaryKey,omitempty"`
	ReferenceData datatypes.JSON `gorm:"type:json" json:"referenceData,omitempty"`

	Submissions []Submission `gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Assignment) TableName() string {
	return "assignments"
}
