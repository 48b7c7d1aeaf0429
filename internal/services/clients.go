package services

import (
	"errors"
	"log"

	"github.com/brightdesk-dev/brightdesk/internal/models"
	"gorm.io/gorm"
)

// ClientService is plain CRUD over the client store. Clients own their
// projects; deleting a client removes the owned projects with it.
type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

func (s *ClientService) List() ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *ClientService) Get(id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Client", ID: id}
		}
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Create(client models.Client) (*models.Client, error) {
	if err := s.db.Create(&client).Error; err != nil {
		return nil, err
	}
	log.Printf("Created client %d (%s)", client.ID, client.Name)
	return &client, nil
}

func (s *ClientService) Update(id uint, details models.Client) (*models.Client, error) {
	client, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	client.Name = details.Name
	client.Email = details.Email
	client.Phone = details.Phone
	client.Address = details.Address

	if err := s.db.Save(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

// Delete removes the client and cascades to its projects and invoices
// in the same transaction.
func (s *ClientService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "Client", ID: id}
			}
			return err
		}

		if err := tx.Where("client_id = ?", id).Delete(&models.Invoice{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&models.Project{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&models.DeletedProject{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&client).Error; err != nil {
			return err
		}

		log.Printf("Client %d deleted", id)
		return nil
	})
}
