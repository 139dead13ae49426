package models

import (
	"github.com/pizzaria/backend/internal/domain/geo"
	"github.com/google/uuid"
)

// CountryModel is the persistence model for the Country aggregate root.
type CountryModel struct {
	AggregateModel
	Name         string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Abbreviation string `gorm:"type:varchar(10)"`
}

// TableName returns the table name for GORM
func (CountryModel) TableName() string {
	return "countries"
}

// ToDomain converts the persistence model to a domain Country entity.
func (m *CountryModel) ToDomain() *geo.Country {
	return &geo.Country{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Abbreviation:      m.Abbreviation,
	}
}

// FromDomain populates the persistence model from a domain Country entity.
func (m *CountryModel) FromDomain(c *geo.Country) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Abbreviation = c.Abbreviation
}

// CountryModelFromDomain creates a new persistence model from a domain Country.
func CountryModelFromDomain(c *geo.Country) *CountryModel {
	m := &CountryModel{}
	m.FromDomain(c)
	return m
}

// StateModel is the persistence model for the State aggregate root.
type StateModel struct {
	AggregateModel
	Name      string    `gorm:"type:varchar(100);not null"`
	UF        string    `gorm:"type:varchar(2);not null;uniqueIndex:idx_state_country_uf,priority:2"`
	CountryID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_state_country_uf,priority:1"`
}

// TableName returns the table name for GORM
func (StateModel) TableName() string {
	return "states"
}

// ToDomain converts the persistence model to a domain State entity.
func (m *StateModel) ToDomain() *geo.State {
	return &geo.State{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		UF:                m.UF,
		CountryID:         m.CountryID,
	}
}

// FromDomain populates the persistence model from a domain State entity.
func (m *StateModel) FromDomain(s *geo.State) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Name = s.Name
	m.UF = s.UF
	m.CountryID = s.CountryID
}

// StateModelFromDomain creates a new persistence model from a domain State.
func StateModelFromDomain(s *geo.State) *StateModel {
	m := &StateModel{}
	m.FromDomain(s)
	return m
}

// CityModel is the persistence model for the City aggregate root.
type CityModel struct {
	AggregateModel
	Name     string    `gorm:"type:varchar(100);not null"`
	IBGECode string    `gorm:"type:varchar(10);index"`
	StateID  uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (CityModel) TableName() string {
	return "cities"
}

// ToDomain converts the persistence model to a domain City entity.
func (m *CityModel) ToDomain() *geo.City {
	return &geo.City{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		IBGECode:          m.IBGECode,
		StateID:           m.StateID,
	}
}

// FromDomain populates the persistence model from a domain City entity.
func (m *CityModel) FromDomain(c *geo.City) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.IBGECode = c.IBGECode
	m.StateID = c.StateID
}

// CityModelFromDomain creates a new persistence model from a domain City.
func CityModelFromDomain(c *geo.City) *CityModel {
	m := &CityModel{}
	m.FromDomain(c)
	return m
}
