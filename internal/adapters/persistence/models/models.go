package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Accounts
// ============================================================

// User types
const (
	UserTypeIndividual = "individual"
	UserTypeAgent      = "agent"
)

// User represents users table. Agent-only fields (OrganizationName,
// INN) are required at request-validation time when UserType is agent,
// not at the storage level.
type User struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Email            string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Phone            *string        `gorm:"uniqueIndex;size:20" json:"phone"`
	Password         string         `gorm:"size:255;not null" json:"-"`
	UserType         string         `gorm:"size:20;default:'individual'" json:"user_type"`
	FullName         string         `gorm:"size:200" json:"full_name"`
	OrganizationName string         `gorm:"size:300" json:"organization_name"`
	INN              string         `gorm:"size:50" json:"inn"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID               uint      `json:"id"`
	Email            string    `json:"email"`
	UserType         string    `json:"user_type"`
	FullName         string    `json:"full_name"`
	Phone            *string   `json:"phone"`
	OrganizationName *string   `json:"organization_name"`
	INN              *string   `json:"inn"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToResponse projects a user; organization fields are exposed for
// agents only.
func (u *User) ToResponse() *UserResponse {
	resp := &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		UserType:  u.UserType,
		FullName:  u.FullName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
	if u.UserType == UserTypeAgent {
		resp.OrganizationName = &u.OrganizationName
		resp.INN = &u.INN
	}
	return resp
}

// ============================================================
// Real-estate objects
// ============================================================

// Region represents re_regions table
type Region struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:200;not null" json:"name"`
	Code      *string   `gorm:"uniqueIndex;size:20" json:"code"`
	IsDefault bool      `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Region) TableName() string {
	return "re_regions"
}

// City represents re_cities table
type City struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null;uniqueIndex:uniq_city_region" json:"name"`
	RegionID  uint      `gorm:"not null;uniqueIndex:uniq_city_region" json:"region_id"`
	IsDefault bool      `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Region *Region `gorm:"foreignKey:RegionID" json:"region,omitempty"`
}

func (City) TableName() string {
	return "re_cities"
}

// Building represents re_buildings table
type Building struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	UUID        string    `gorm:"uniqueIndex;size:36;not null" json:"uuid"`
	Name        string    `gorm:"size:300;not null" json:"name"`
	Address     string    `gorm:"size:500;not null" json:"address"`
	CityID      uint      `gorm:"index;not null" json:"city_id"`
	Description string    `gorm:"type:text" json:"description"`
	TotalFloors *int      `json:"total_floors"`
	YearBuilt   *int      `json:"year_built"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
}

func (Building) TableName() string {
	return "re_buildings"
}

// BeforeCreate assigns the public identifier.
func (b *Building) BeforeCreate(tx *gorm.DB) error {
	if b.UUID == "" {
		b.UUID = uuid.NewString()
	}
	return nil
}

// BuildingOption DTO for the search filter multiselect
type BuildingOption struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Floor represents re_floors table. Number may be negative (basements).
type Floor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BuildingID  uint      `gorm:"not null;uniqueIndex:uniq_floor_building" json:"building_id"`
	Number      int       `gorm:"not null;uniqueIndex:uniq_floor_building" json:"number"`
	Description string    `gorm:"size:500" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Building *Building `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
}

func (Floor) TableName() string {
	return "re_floors"
}

// Premise statuses
const (
	PremiseStatusAvailable   = "available"
	PremiseStatusReserved    = "reserved"
	PremiseStatusRented      = "rented"
	PremiseStatusUnavailable = "unavailable"
)

// Premise types
const (
	PremiseTypeOffice = "office"
	PremiseTypeOther  = "other"
)

// Premise represents re_premises table, the unit listed for rent or
// sale. The int primary key never leaves the API: UUID is the public
// identifier.
type Premise struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	UUID             string    `gorm:"uniqueIndex;size:36;not null" json:"uuid"`
	CityID           uint      `gorm:"index:idx_premises_city_status;not null" json:"city_id"`
	BuildingID       uint      `gorm:"index;not null" json:"building_id"`
	FloorID          *uint     `json:"floor_id"`
	Number           string    `gorm:"size:50" json:"number"`
	Area             float64   `gorm:"type:decimal(10,2);not null;index" json:"area"`
	PricePerMonth    *float64  `gorm:"type:decimal(12,2);index" json:"price_per_month"`
	PricePerSqm      *float64  `gorm:"type:decimal(10,2)" json:"price_per_sqm"`
	PremiseType      string    `gorm:"size:50;default:'office'" json:"premise_type"`
	Status           string    `gorm:"size:20;default:'available';index:idx_premises_city_status" json:"status"`
	AvailableForRent bool      `gorm:"default:true" json:"available_for_rent"`
	AvailableForSale bool      `gorm:"default:false" json:"available_for_sale"`
	CeilingHeight    *float64  `gorm:"type:decimal(5,2)" json:"ceiling_height"`
	HasWindows       bool      `gorm:"default:true" json:"has_windows"`
	HasParking       bool      `gorm:"default:false" json:"has_parking"`
	IsFurnished      bool      `gorm:"default:false" json:"is_furnished"`
	Description      string    `gorm:"type:text" json:"description"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	City     *City          `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Building *Building      `gorm:"foreignKey:BuildingID" json:"building,omitempty"`
	Floor    *Floor         `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
	Images   []PremiseImage `gorm:"foreignKey:PremiseID" json:"images,omitempty"`
}

func (Premise) TableName() string {
	return "re_premises"
}

// BeforeSave assigns the public identifier and keeps price_per_sqm in
// lockstep with price/area. The stored value is never hand-edited: it
// is recomputed on every save and cleared when price is absent.
func (p *Premise) BeforeSave(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.NewString()
	}
	if p.PricePerMonth != nil && p.Area > 0 {
		v := *p.PricePerMonth / p.Area
		p.PricePerSqm = &v
	} else {
		p.PricePerSqm = nil
	}
	return nil
}

// HasTenant reports whether the premise is currently taken; reserved,
// rented and unavailable are treated alike.
func (p *Premise) HasTenant() bool {
	return p.Status != PremiseStatusAvailable
}

// PremiseImage represents re_premise_images table
type PremiseImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PremiseID uint      `gorm:"index;not null" json:"premise_id"`
	URL       string    `gorm:"size:500;not null" json:"url"`
	Title     string    `gorm:"size:200" json:"title"`
	IsPrimary bool      `gorm:"default:false" json:"is_primary"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PremiseImage) TableName() string {
	return "re_premise_images"
}

// ============================================================
// Premise DTOs
// ============================================================

// PremisePhoto DTO
type PremisePhoto struct {
	URL       string  `json:"url"`
	Title     *string `json:"title"`
	IsPrimary bool    `json:"is_primary"`
}

// PremiseVideo DTO. No video storage exists yet; the structure is
// reserved for the frontend contract.
type PremiseVideo struct {
	URL   string  `json:"url"`
	Title *string `json:"title"`
}

// PremiseMedia DTO
type PremiseMedia struct {
	Photos []PremisePhoto `json:"photos"`
	Videos []PremiseVideo `json:"videos"`
}

// PremiseListItem DTO for search results
type PremiseListItem struct {
	UUID      string       `json:"uuid"`
	Name      string       `json:"name"`
	Price     *float64     `json:"price"`
	Address   string       `json:"address"`
	Floor     *int         `json:"floor"`
	Area      float64      `json:"area"`
	HasTenant bool         `json:"has_tenant"`
	Media     PremiseMedia `json:"media"`
}

// PremiseDetail DTO for the detail card
type PremiseDetail struct {
	PremiseListItem
	Description   *string  `json:"description"`
	PricePerSqm   *float64 `json:"price_per_sqm"`
	CeilingHeight *float64 `json:"ceiling_height"`
	HasWindows    bool     `json:"has_windows"`
	HasParking    bool     `json:"has_parking"`
	IsFurnished   bool     `json:"is_furnished"`
}

func (p *Premise) buildMedia() PremiseMedia {
	images := make([]PremiseImage, len(p.Images))
	copy(images, p.Images)
	sort.Slice(images, func(i, j int) bool {
		if images[i].SortOrder != images[j].SortOrder {
			return images[i].SortOrder < images[j].SortOrder
		}
		return images[i].ID < images[j].ID
	})

	photos := make([]PremisePhoto, 0, len(images))
	for _, img := range images {
		photos = append(photos, PremisePhoto{
			URL:       img.URL,
			Title:     optionalString(img.Title),
			IsPrimary: img.IsPrimary,
		})
	}
	return PremiseMedia{Photos: photos, Videos: []PremiseVideo{}}
}

// ToListItem projects a premise for list views. Name falls back to the
// owning building's name when the unit number is blank; address always
// comes from the building. Requires Building, Floor and Images loaded.
func (p *Premise) ToListItem() *PremiseListItem {
	item := &PremiseListItem{
		UUID:      p.UUID,
		Price:     p.PricePerMonth,
		Area:      p.Area,
		HasTenant: p.HasTenant(),
		Media:     p.buildMedia(),
	}
	item.Name = p.Number
	if p.Building != nil {
		item.Address = p.Building.Address
		if item.Name == "" {
			item.Name = p.Building.Name
		}
	}
	if p.Floor != nil {
		n := p.Floor.Number
		item.Floor = &n
	}
	return item
}

// ToDetail projects a premise for the detail view.
func (p *Premise) ToDetail() *PremiseDetail {
	return &PremiseDetail{
		PremiseListItem: *p.ToListItem(),
		Description:     optionalString(p.Description),
		PricePerSqm:     p.PricePerSqm,
		CeilingHeight:   p.CeilingHeight,
		HasWindows:      p.HasWindows,
		HasParking:      p.HasParking,
		IsFurnished:     p.IsFurnished,
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ============================================================
// Site settings (singleton rows)
// ============================================================

// SingletonID pins every settings table to one row.
const SingletonID uint = 1

// MainSettings represents main_settings table. At most one row exists;
// the repository pins the primary key to SingletonID.
type MainSettings struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	Phone        string    `gorm:"size:20" json:"phone"`
	DisplayPhone string    `gorm:"size:50" json:"display_phone"`
	Email        string    `gorm:"size:50" json:"email"`
	WhatsappLink string    `gorm:"size:200" json:"whatsapp_link"`
	TelegramLink string    `gorm:"size:200" json:"telegram_link"`
	Description  string    `gorm:"type:text" json:"description"`
	OrgName      string    `gorm:"type:text" json:"org_name"`
	INN          string    `gorm:"size:50" json:"inn"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MainSettings) TableName() string {
	return "main_settings"
}

// ContactsSettings represents contacts_settings table; requisites only,
// the contact block is projected from MainSettings.
type ContactsSettings struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	OGRN               string    `gorm:"size:20" json:"ogrn"`
	LegalAddress       string    `gorm:"size:500" json:"legal_address"`
	Latitude           *float64  `json:"latitude"`
	Longitude          *float64  `json:"longitude"`
	SalesCenterAddress string    `gorm:"size:500" json:"sales_center_address"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ContactsSettings) TableName() string {
	return "contacts_settings"
}

// MainSettingsResponse DTO
type MainSettingsResponse struct {
	Phone        string  `json:"phone"`
	DisplayPhone string  `json:"display_phone"`
	Email        string  `json:"email"`
	WhatsappLink *string `json:"whatsapp_link"`
	TelegramLink *string `json:"telegram_link"`
	Description  *string `json:"description"`
	InfoName     *string `json:"info_name"`
	INN          *string `json:"inn"`
}

// ToResponse projects main settings; a blank display phone echoes the
// primary phone.
func (s *MainSettings) ToResponse() *MainSettingsResponse {
	display := s.DisplayPhone
	if display == "" {
		display = s.Phone
	}
	return &MainSettingsResponse{
		Phone:        s.Phone,
		DisplayPhone: display,
		Email:        s.Email,
		WhatsappLink: optionalString(s.WhatsappLink),
		TelegramLink: optionalString(s.TelegramLink),
		Description:  optionalString(s.Description),
		InfoName:     optionalString(s.OrgName),
		INN:          optionalString(s.INN),
	}
}

// ContactsSettingsResponse DTO; contact block from MainSettings plus
// requisites from ContactsSettings.
type ContactsSettingsResponse struct {
	Phone        string  `json:"phone"`
	DisplayPhone string  `json:"display_phone"`
	Email        string  `json:"email"`
	WhatsappLink *string `json:"whatsapp_link"`
	TelegramLink *string `json:"telegram_link"`
	OGRN         *string `json:"ogrn"`
	LegalAddress *string `json:"legal_address"`
}

// MergeContacts combines the singleton rows into the contacts projection.
func MergeContacts(main *MainSettings, contacts *ContactsSettings) *ContactsSettingsResponse {
	display := main.DisplayPhone
	if display == "" {
		display = main.Phone
	}
	return &ContactsSettingsResponse{
		Phone:        main.Phone,
		DisplayPhone: display,
		Email:        main.Email,
		WhatsappLink: optionalString(main.WhatsappLink),
		TelegramLink: optionalString(main.TelegramLink),
		OGRN:         optionalString(contacts.OGRN),
		LegalAddress: optionalString(contacts.LegalAddress),
	}
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Region{},
		&City{},
		&Building{},
		&Floor{},
		&Premise{},
		&PremiseImage{},
		&MainSettings{},
		&ContactsSettings{},
	)
}
