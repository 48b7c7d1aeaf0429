package services

import (
	"errors"
	"log"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"gorm.io/gorm"
)

// ProjectService manages the project lifecycle. A logical project
// lives either in the active store or the archive, never both; the
// archive and restore transitions pair their two writes inside a
// single transaction.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// Create persists a new active project. The client reference must
// resolve; the onboard date defaults to today and is never updated
// afterwards.
func (s *ProjectService) Create(project models.Project) (*models.Project, error) {
	if project.ClientID == 0 {
		return nil, ErrClientRequired
	}

	var client models.Client
	if err := s.db.First(&client, project.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Client", ID: project.ClientID}
		}
		return nil, err
	}

	if project.OnboardDate.IsZero() {
		project.OnboardDate = models.Today()
	}
	if project.Status == "" {
		project.Status = models.DefaultProjectStatus
	}
	if project.ProductOwner == "" {
		project.ProductOwner = "Unknown"
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}

	project.Client = client
	log.Printf("Created project %d (%s)", project.ID, project.Name)
	return &project, nil
}

// List returns the active set with client details.
func (s *ProjectService) List() ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Preload("Client").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *ProjectService) Get(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.Preload("Client").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Project", ID: id}
		}
		return nil, err
	}
	return &project, nil
}

// Update overwrites the mutable descriptive fields and optionally
// re-parents the project to another client. The onboard date is left
// untouched.
func (s *ProjectService) Update(id uint, details models.Project) (*models.Project, error) {
	var existing models.Project
	if err := s.db.First(&existing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Project", ID: id}
		}
		return nil, err
	}

	existing.Name = details.Name
	existing.Status = details.Status
	existing.ProductOwner = details.ProductOwner
	existing.ExpectedDeliveryDate = details.ExpectedDeliveryDate
	existing.Deadline = details.Deadline
	existing.Budget = details.Budget
	existing.AmountSpent = details.AmountSpent
	existing.LastUpdateComments = details.LastUpdateComments

	if details.ClientID != 0 && details.ClientID != existing.ClientID {
		var client models.Client
		if err := s.db.First(&client, details.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entity: "Client", ID: details.ClientID}
			}
			return nil, err
		}
		existing.ClientID = details.ClientID
	}

	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Client").First(&existing, existing.ID).Error; err != nil {
		return nil, err
	}

	return &existing, nil
}

// Archive moves an active project into the archive. The insert of the
// archive row and the delete of the active row happen in one
// transaction so a partial move can never be observed.
func (s *ProjectService) Archive(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "Project", ID: id}
			}
			return err
		}

		archived := models.NewDeletedProject(project)
		if err := tx.Create(&archived).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Project{}, id).Error; err != nil {
			return err
		}

		log.Printf("Project %d moved to archive as %d", id, archived.ID)
		return nil
	})
}

// Restore moves an archived project back to the active store under a
// fresh id, removing the archive row in the same transaction.
func (s *ProjectService) Restore(archiveID uint) (*models.Project, error) {
	var restored models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var archived models.DeletedProject
		if err := tx.First(&archived, archiveID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "Deleted Project", ID: archiveID}
			}
			return err
		}

		restored = archived.ToProject()
		if err := tx.Create(&restored).Error; err != nil {
			return err
		}

		return tx.Delete(&models.DeletedProject{}, archiveID).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.Preload("Client").First(&restored, restored.ID).Error; err != nil {
		return nil, err
	}

	log.Printf("Archived project %d restored as %d", archiveID, restored.ID)
	return &restored, nil
}

// ListArchived returns the archive with client details.
func (s *ProjectService) ListArchived() ([]models.DeletedProject, error) {
	var archived []models.DeletedProject
	if err := s.db.Preload("Client").Find(&archived).Error; err != nil {
		return nil, err
	}
	return archived, nil
}
