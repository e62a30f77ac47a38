package employee

import (
	"time"

	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/lookup"
	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/user"
)

// Employee is the aggregate root. Every employee owns exactly one Person and
// references one EmployeeType; the User link is optional.
type Employee struct {
	ID             int64      `gorm:"column:employee_id;primaryKey"`
	EmployeeImage  *string    `gorm:"column:employee_image"`
	State          bool       `gorm:"column:state"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	ModifiedAt     *time.Time `gorm:"column:modified_at"`
	ModifiedByUser string     `gorm:"column:modified_by_user"`

	PersonID       int64  `gorm:"column:person_id"`
	EmployeeTypeID int64  `gorm:"column:employee_type_id"`
	UserID         *int64 `gorm:"column:user_id"`

	Person       *Person              `gorm:"foreignKey:PersonID;references:ID"`
	EmployeeType *lookup.EmployeeType `gorm:"foreignKey:EmployeeTypeID;references:ID"`
	User         *user.User           `gorm:"foreignKey:UserID;references:ID"`
}

func (Employee) TableName() string {
	return "employee"
}

type Person struct {
	ID             int64      `gorm:"column:person_id;primaryKey"`
	Name           string     `gorm:"column:name"`
	LastName       string     `gorm:"column:last_name"`
	EmailAddress   string     `gorm:"column:email_address;uniqueIndex:uq_person_email"`
	PhoneNumber    string     `gorm:"column:phone_number;uniqueIndex:uq_person_phone"`
	State          bool       `gorm:"column:state"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	ModifiedAt     *time.Time `gorm:"column:modified_at"`
	ModifiedByUser string     `gorm:"column:modified_by_user"`

	AddressID      int64 `gorm:"column:address_id"`
	DocumentTypeID int64 `gorm:"column:document_type_id"`

	Address      *Address             `gorm:"foreignKey:AddressID;references:ID"`
	DocumentType *lookup.DocumentType `gorm:"foreignKey:DocumentTypeID;references:ID"`
}

func (Person) TableName() string {
	return "person"
}

// Address is owned exclusively by one Person; it has no lifecycle of its own.
type Address struct {
	ID          int64  `gorm:"column:address_id;primaryKey"`
	City        string `gorm:"column:city"`
	State       string `gorm:"column:state"`
	Country     string `gorm:"column:country"`
	Street      string `gorm:"column:street"`
	PostalCode  string `gorm:"column:postal_code"`
	Description string `gorm:"column:description"`
}

func (Address) TableName() string {
	return "address"
}
