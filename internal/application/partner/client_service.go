package partner

import (
	"context"

	"github.com/pizzaria/backend/internal/domain/geo"
	"github.com/pizzaria/backend/internal/domain/partner"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo partner.ClientRepository
	cityRepo   geo.CityRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository, cityRepo geo.CityRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo, cityRepo: cityRepo}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	exists, err := s.clientRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this code already exists")
	}

	client, err := partner.NewClient(req.Code, req.Name, req.Document)
	if err != nil {
		return nil, err
	}

	if client.Document != "" {
		exists, err = s.clientRepo.ExistsByDocument(ctx, client.Document)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this document already exists")
		}
	}

	if req.TradeName != "" {
		if err := client.Update(req.Name, req.TradeName); err != nil {
			return nil, err
		}
	}
	if req.ContactName != "" || req.Phone != "" || req.Email != "" {
		if err := client.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Address != "" || req.CityID != nil {
		if err := s.checkCity(ctx, req.CityID); err != nil {
			return nil, err
		}
		if err := client.SetAddress(req.Address, req.CityID); err != nil {
			return nil, err
		}
	}
	if req.CreditLimit != nil {
		if err := client.SetCreditLimit(valueobject.NewMoneyBRL(*req.CreditLimit)); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		client.SetNotes(req.Notes)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, client)
	return &response, nil
}

// GetByCode retrieves a client by code
func (s *ClientService) GetByCode(ctx context.Context, code string) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, client)
	return &response, nil
}

// List retrieves clients with filtering and pagination
func (s *ClientService) List(ctx context.Context, filter ListFilter) ([]ClientResponse, int64, error) {
	domainFilter := buildFilter(filter)

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, s.toResponse(ctx, &clients[i]))
	}
	return responses, total, nil
}

// ListActive retrieves only active clients
func (s *ClientService) ListActive(ctx context.Context, filter ListFilter) ([]ClientResponse, error) {
	clients, err := s.clientRepo.FindByStatus(ctx, partner.StatusActive, buildFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]ClientResponse, 0, len(clients))
	for i := range clients {
		responses = append(responses, s.toResponse(ctx, &clients[i]))
	}
	return responses, nil
}

// Update updates a client
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.TradeName != nil {
		name := client.Name
		tradeName := client.TradeName
		if req.Name != nil {
			name = *req.Name
		}
		if req.TradeName != nil {
			tradeName = *req.TradeName
		}
		if err := client.Update(name, tradeName); err != nil {
			return nil, err
		}
	}

	if req.Document != nil {
		previous := client.Document
		if err := client.SetDocument(*req.Document); err != nil {
			return nil, err
		}
		if client.Document != "" && client.Document != previous {
			exists, err := s.clientRepo.ExistsByDocument(ctx, client.Document)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "Client with this document already exists")
			}
		}
	}

	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		contactName := client.ContactName
		phone := client.Phone
		email := client.Email
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := client.SetContact(contactName, phone, email); err != nil {
			return nil, err
		}
	}

	if req.Address != nil || req.CityID != nil {
		address := client.Address
		cityID := client.CityID
		if req.Address != nil {
			address = *req.Address
		}
		if req.CityID != nil {
			cityID = req.CityID
		}
		if err := s.checkCity(ctx, cityID); err != nil {
			return nil, err
		}
		if err := client.SetAddress(address, cityID); err != nil {
			return nil, err
		}
	}

	if req.CreditLimit != nil {
		if err := client.SetCreditLimit(valueobject.NewMoneyBRL(*req.CreditLimit)); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		client.SetNotes(*req.Notes)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, client)
	return &response, nil
}

// Activate sets the client to active
func (s *ClientService) Activate(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := client.Activate(); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, client)
	return &response, nil
}

// Deactivate sets the client to inactive
func (s *ClientService) Deactivate(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := client.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := s.toResponse(ctx, client)
	return &response, nil
}

// Delete removes a client. Deletion is rejected while receivables or exit
// invoices reference it.
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.clientRepo.FindByID(ctx, id); err != nil {
		return err
	}

	hasDocs, err := s.clientRepo.HasFinancialDocuments(ctx, id)
	if err != nil {
		return err
	}
	if hasDocs {
		return shared.NewDomainError("HAS_DEPENDENTS", "Client has financial documents and cannot be deleted")
	}

	return s.clientRepo.Delete(ctx, id)
}

func (s *ClientService) checkCity(ctx context.Context, cityID *uuid.UUID) error {
	if cityID == nil {
		return nil
	}
	if _, err := s.cityRepo.FindByID(ctx, *cityID); err != nil {
		if err == shared.ErrNotFound {
			return shared.NewDomainError("INVALID_CITY", "Referenced city does not exist")
		}
		return err
	}
	return nil
}

func (s *ClientService) toResponse(ctx context.Context, client *partner.Client) ClientResponse {
	cityName := ""
	if client.CityID != nil {
		if city, err := s.cityRepo.FindByID(ctx, *client.CityID); err == nil {
			cityName = city.Name
		}
	}
	return ToClientResponse(client, cityName)
}

// buildFilter applies list defaults and converts to the domain filter
func buildFilter(filter ListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	return domainFilter
}
