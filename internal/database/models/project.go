package models

// ProjectStatus represents the status of a client project
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusArchived ProjectStatus = "archived"
)

// Project groups sprint drafts for one client engagement
type Project struct {
	BaseModel
	Name        string        `json:"name" gorm:"not null;size:200;uniqueIndex" validate:"required,min=1,max=200"`
	ClientName  string        `json:"client_name" gorm:"size:200" validate:"max=200"`
	Description string        `json:"description" gorm:"type:text"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(50);default:'active'"`
}

// TableName returns the table name for Project
func (Project) TableName() string {
	return "projects"
}
