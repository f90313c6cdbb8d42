// Package model defines the nine Toolshop tables as Go structs. The same
// structs are exported to CSV, rendered as SQL and migrated with gorm.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole represents the role of a user
type UserRole string

const (
	RoleCustomer       UserRole = "customer"
	RoleAdmin          UserRole = "admin"
	RoleManager        UserRole = "manager"
	RoleSalesRep       UserRole = "sales_rep"
	RoleWarehouseStaff UserRole = "warehouse_staff"
)

// PaymentMethod is how an invoice was paid
type PaymentMethod string

const (
	MethodCreditCard     PaymentMethod = "CREDIT_CARD"
	MethodBankTransfer   PaymentMethod = "BANK_TRANSFER"
	MethodCashOnDelivery PaymentMethod = "CASH_ON_DELIVERY"
	MethodBuyNowPayLater PaymentMethod = "BUY_NOW_PAY_LATER"
)

// PaymentStatus is the outcome of a payment
type PaymentStatus string

const (
	StatusSuccess PaymentStatus = "SUCCESS"
	StatusPending PaymentStatus = "PENDING"
	StatusFailed  PaymentStatus = "FAILED"
)

// Timestamps are set by the generator and never touched by gorm
type Timestamps struct {
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

type User struct {
	ID                  string     `gorm:"primaryKey;type:char(26)"`
	UID                 *string    `gorm:"column:uid;type:varchar(64)"`
	Provider            *string    `gorm:"type:varchar(32)"`
	FirstName           string     `gorm:"type:varchar(100);not null"`
	LastName            string     `gorm:"type:varchar(100);not null"`
	Street              *string    `gorm:"type:varchar(255)"`
	City                *string    `gorm:"type:varchar(100)"`
	State               *string    `gorm:"type:varchar(50)"`
	Country             *string    `gorm:"type:varchar(2)"`
	PostalCode          *string    `gorm:"type:varchar(16)"`
	Phone               *string    `gorm:"type:varchar(32)"`
	DOB                 *time.Time `gorm:"column:dob;type:date"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password            *string    `gorm:"type:varchar(255)"`
	Role                UserRole   `gorm:"type:varchar(32);not null;default:'customer'"`
	Enabled             bool       `gorm:"not null"`
	FailedLoginAttempts int        `gorm:"not null;default:0"`
	TOTPSecret          *string    `gorm:"column:totp_secret;type:varchar(64)"`
	TOTPEnabled         bool       `gorm:"column:totp_enabled;not null;default:false"`
	TOTPVerifiedAt      *time.Time `gorm:"column:totp_verified_at"`
	Timestamps
}

type Category struct {
	ID       string  `gorm:"primaryKey;type:char(26)"`
	Name     string  `gorm:"type:varchar(120);not null"`
	Slug     string  `gorm:"type:varchar(120);uniqueIndex;not null"`
	ParentID *string `gorm:"type:char(26);index"`
	Timestamps
}

type Brand struct {
	ID   string `gorm:"primaryKey;type:char(26)"`
	Name string `gorm:"type:varchar(120);not null"`
	Slug string `gorm:"type:varchar(120);uniqueIndex;not null"`
	Timestamps
}

type ProductImage struct {
	ID         string `gorm:"primaryKey;type:char(26)"`
	ByName     string `gorm:"type:varchar(120);not null"`
	ByURL      string `gorm:"column:by_url;type:varchar(255);not null"`
	SourceName string `gorm:"type:varchar(120);not null"`
	SourceURL  string `gorm:"column:source_url;type:varchar(255);not null"`
	FileName   string `gorm:"type:varchar(255);not null"`
	Title      string `gorm:"type:varchar(255);not null"`
	Timestamps
}

type Product struct {
	ID              string          `gorm:"primaryKey;type:char(26)"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Description     string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsLocationOffer bool            `gorm:"not null;default:false"`
	IsRental        bool            `gorm:"not null;default:false"`
	CategoryID      string          `gorm:"type:char(26);not null;index"`
	BrandID         string          `gorm:"type:char(26);not null;index"`
	ProductImageID  string          `gorm:"type:char(26);not null;index"`
	InStock         bool            `gorm:"not null"`
	Stock           int             `gorm:"not null;default:0"`
	Timestamps
}

type Favorite struct {
	ID        string `gorm:"primaryKey;type:char(26)"`
	UserID    string `gorm:"type:char(26);not null;uniqueIndex:idx_favorite_pair,priority:1"`
	ProductID string `gorm:"type:char(26);not null;uniqueIndex:idx_favorite_pair,priority:2"`
	Timestamps
}

type Invoice struct {
	ID              string          `gorm:"primaryKey;type:char(26)"`
	InvoiceNumber   string          `gorm:"type:varchar(32);uniqueIndex;not null"`
	InvoiceDate     time.Time       `gorm:"not null"`
	BillingAddress  string          `gorm:"type:varchar(255);not null"`
	BillingCity     string          `gorm:"type:varchar(100);not null"`
	BillingState    *string         `gorm:"type:varchar(50)"`
	BillingCountry  string          `gorm:"type:varchar(2);not null"`
	BillingPostcode *string         `gorm:"type:varchar(16)"`
	UserID          string          `gorm:"type:char(26);not null;index"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Timestamps
}

type InvoiceItem struct {
	ID        string          `gorm:"primaryKey;type:char(26)"`
	InvoiceID string          `gorm:"type:char(26);not null;index"`
	ProductID string          `gorm:"type:char(26);not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Timestamps
}

// Subtotal is quantity times unit price, exact
func (i InvoiceItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Payment struct {
	ID                 string        `gorm:"primaryKey;type:char(26)"`
	InvoiceID          string        `gorm:"type:char(26);not null;index"`
	Method             PaymentMethod `gorm:"type:varchar(32);not null"`
	Status             PaymentStatus `gorm:"type:varchar(16);not null"`
	PaymentReferenceID *string       `gorm:"type:varchar(26)"`
	Timestamps
}

func (User) TableName() string         { return TableUsers }
func (Category) TableName() string     { return TableCategories }
func (Brand) TableName() string        { return TableBrands }
func (ProductImage) TableName() string { return TableProductImages }
func (Product) TableName() string      { return TableProducts }
func (Favorite) TableName() string     { return TableFavorites }
func (Invoice) TableName() string      { return TableInvoices }
func (InvoiceItem) TableName() string  { return TableInvoiceItems }
func (Payment) TableName() string      { return TablePayments }
