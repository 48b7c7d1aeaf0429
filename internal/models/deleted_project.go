package models

import "time"

// DeletedProject is the archived shadow of a Project. It has its own
// id sequence; an archived row and an active row never exist for the
// same logical project at the same time.
type DeletedProject struct {
	ID                   uint    `gorm:"primaryKey"`
	Name                 string  `gorm:"size:255;not null"`
	Status               string  `gorm:"size:50;not null"`
	Budget               float64 `gorm:"not null;default:0"`
	AmountSpent          float64 `gorm:"not null;default:0"`
	ExpectedDeliveryDate Date    `gorm:"type:date;not null"`
	Deadline             Date    `gorm:"type:date;not null"`
	ProductOwner         string  `gorm:"size:255;not null"`
	LastUpdateComments   string  `gorm:"type:text"`
	ClientID             uint    `gorm:"not null;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Relationships
	Client Client `gorm:"foreignKey:ClientID"`
}

// NewDeletedProject copies the descriptive fields of an active project
// into an archive record. The onboard date is not carried over.
func NewDeletedProject(project Project) DeletedProject {
	return DeletedProject{
		Name:                 project.Name,
		Status:               project.Status,
		Budget:               project.Budget,
		AmountSpent:          project.AmountSpent,
		ExpectedDeliveryDate: project.ExpectedDeliveryDate,
		Deadline:             project.Deadline,
		ProductOwner:         project.ProductOwner,
		LastUpdateComments:   project.LastUpdateComments,
		ClientID:             project.ClientID,
	}
}

// ToProject rebuilds an active project from the archive record. The
// restored project gets a fresh id and a fresh onboard date.
func (d DeletedProject) ToProject() Project {
	return Project{
		Name:                 d.Name,
		Status:               d.Status,
		Budget:               d.Budget,
		AmountSpent:          d.AmountSpent,
		ExpectedDeliveryDate: d.ExpectedDeliveryDate,
		Deadline:             d.Deadline,
		OnboardDate:          Today(),
		ProductOwner:         d.ProductOwner,
		LastUpdateComments:   d.LastUpdateComments,
		ClientID:             d.ClientID,
	}
}
