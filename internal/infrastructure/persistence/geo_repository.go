package persistence

import (
	"context"
	"errors"

	"github.com/pizzaria/backend/internal/domain/geo"
	"github.com/pizzaria/backend/internal/domain/shared"
	"github.com/pizzaria/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCountryRepository implements CountryRepository using GORM
type GormCountryRepository struct {
	db *gorm.DB
}

// NewGormCountryRepository creates a new GormCountryRepository
func NewGormCountryRepository(db *gorm.DB) *GormCountryRepository {
	return &GormCountryRepository{db: db}
}

// FindByID finds a country by its ID
func (r *GormCountryRepository) FindByID(ctx context.Context, id uuid.UUID) (*geo.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a country by its name
func (r *GormCountryRepository) FindByName(ctx context.Context, name string) (*geo.Country, error) {
	var model models.CountryModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all countries matching the filter
func (r *GormCountryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]geo.Country, error) {
	var countryModels []models.CountryModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CountryModel{}), filter)

	if err := query.Find(&countryModels).Error; err != nil {
		return nil, err
	}
	countries := make([]geo.Country, len(countryModels))
	for i, model := range countryModels {
		countries[i] = *model.ToDomain()
	}
	return countries, nil
}

// Count counts countries matching the filter
func (r *GormCountryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.CountryModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks if a country with the given name exists
func (r *GormCountryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CountryModel{}).
		Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasStates reports whether any state references the country
func (r *GormCountryRepository) HasStates(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StateModel{}).
		Where("country_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a country
func (r *GormCountryRepository) Save(ctx context.Context, country *geo.Country) error {
	model := models.CountryModelFromDomain(country)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a country by its ID
func (r *GormCountryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CountryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormCountryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	orderBy := ValidateSortField(filter.OrderBy, CountrySortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCountryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR abbreviation ILIKE ?", searchPattern, searchPattern)
	}
	return query
}

// GormStateRepository implements StateRepository using GORM
type GormStateRepository struct {
	db *gorm.DB
}

// NewGormStateRepository creates a new GormStateRepository
func NewGormStateRepository(db *gorm.DB) *GormStateRepository {
	return &GormStateRepository{db: db}
}

// FindByID finds a state by its ID
func (r *GormStateRepository) FindByID(ctx context.Context, id uuid.UUID) (*geo.State, error) {
	var model models.StateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCountry finds all states of a country ordered by name
func (r *GormStateRepository) FindByCountry(ctx context.Context, countryID uuid.UUID) ([]geo.State, error) {
	var stateModels []models.StateModel
	if err := r.db.WithContext(ctx).
		Where("country_id = ?", countryID).
		Order("name ASC").
		Find(&stateModels).Error; err != nil {
		return nil, err
	}
	states := make([]geo.State, len(stateModels))
	for i, model := range stateModels {
		states[i] = *model.ToDomain()
	}
	return states, nil
}

// FindAll finds all states matching the filter
func (r *GormStateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]geo.State, error) {
	var stateModels []models.StateModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.StateModel{}), filter)

	if err := query.Find(&stateModels).Error; err != nil {
		return nil, err
	}
	states := make([]geo.State, len(stateModels))
	for i, model := range stateModels {
		states[i] = *model.ToDomain()
	}
	return states, nil
}

// Count counts states matching the filter
func (r *GormStateRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.StateModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByUF checks if a state with the given UF exists within a country
func (r *GormStateRepository) ExistsByUF(ctx context.Context, countryID uuid.UUID, uf string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StateModel{}).
		Where("country_id = ? AND uf = ?", countryID, uf).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasCities reports whether any city references the state
func (r *GormStateRepository) HasCities(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CityModel{}).
		Where("state_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a state
func (r *GormStateRepository) Save(ctx context.Context, state *geo.State) error {
	model := models.StateModelFromDomain(state)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a state by its ID
func (r *GormStateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.StateModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormStateRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	orderBy := ValidateSortField(filter.OrderBy, StateSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormStateRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR uf ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "country_id":
			query = query.Where("country_id = ?", value)
		}
	}
	return query
}

// GormCityRepository implements CityRepository using GORM
type GormCityRepository struct {
	db *gorm.DB
}

// NewGormCityRepository creates a new GormCityRepository
func NewGormCityRepository(db *gorm.DB) *GormCityRepository {
	return &GormCityRepository{db: db}
}

// FindByID finds a city by its ID
func (r *GormCityRepository) FindByID(ctx context.Context, id uuid.UUID) (*geo.City, error) {
	var model models.CityModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByState finds all cities of a state ordered by name
func (r *GormCityRepository) FindByState(ctx context.Context, stateID uuid.UUID) ([]geo.City, error) {
	var cityModels []models.CityModel
	if err := r.db.WithContext(ctx).
		Where("state_id = ?", stateID).
		Order("name ASC").
		Find(&cityModels).Error; err != nil {
		return nil, err
	}
	cities := make([]geo.City, len(cityModels))
	for i, model := range cityModels {
		cities[i] = *model.ToDomain()
	}
	return cities, nil
}

// FindAll finds all cities matching the filter
func (r *GormCityRepository) FindAll(ctx context.Context, filter shared.Filter) ([]geo.City, error) {
	var cityModels []models.CityModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CityModel{}), filter)

	if err := query.Find(&cityModels).Error; err != nil {
		return nil, err
	}
	cities := make([]geo.City, len(cityModels))
	for i, model := range cityModels {
		cities[i] = *model.ToDomain()
	}
	return cities, nil
}

// Count counts cities matching the filter
func (r *GormCityRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.CityModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasReferences reports whether any client, supplier or carrier points at the city
func (r *GormCityRepository) HasReferences(ctx context.Context, id uuid.UUID) (bool, error) {
	for _, model := range []interface{}{
		&models.ClientModel{},
		&models.SupplierModel{},
		&models.CarrierModel{},
	} {
		var count int64
		if err := r.db.WithContext(ctx).Model(model).
			Where("city_id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// Save creates or updates a city
func (r *GormCityRepository) Save(ctx context.Context, city *geo.City) error {
	model := models.CityModelFromDomain(city)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a city by its ID
func (r *GormCityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CityModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormCityRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)
	query = query.Offset(filter.Offset()).Limit(filter.Limit())

	orderBy := ValidateSortField(filter.OrderBy, CitySortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCityRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR ibge_code ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "state_id":
			query = query.Where("state_id = ?", value)
		}
	}
	return query
}
