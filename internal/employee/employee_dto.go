package employee

import (
	"io"

	"github.com/RPantaX/user-service-braidsbeautyByAngie/internal/lookup"
)

// CreateEmployeeRequest is the flat write shape used by both save and
// update. It binds from multipart form fields; the optional image part is
// handled separately by the handler.
type CreateEmployeeRequest struct {
	Name           string `form:"name" json:"name" binding:"required"`
	LastName       string `form:"lastName" json:"lastName" binding:"required"`
	EmailAddress   string `form:"emailAddress" json:"emailAddress" binding:"required,email"`
	PhoneNumber    string `form:"phoneNumber" json:"phoneNumber" binding:"required"`
	DocumentTypeID int64  `form:"documentTypeId" json:"documentTypeId" binding:"required"`
	EmployeeTypeID int64  `form:"employeeTypeId" json:"employeeTypeId" binding:"required"`
	City           string `form:"city" json:"city" binding:"required"`
	State          string `form:"state" json:"state" binding:"required"`
	Country        string `form:"country" json:"country" binding:"required"`
	Street         string `form:"street" json:"street" binding:"required"`
	PostalCode     string `form:"postalCode" json:"postalCode" binding:"required"`
	Description    string `form:"description" json:"description" binding:"required"`
	DeleteFile     bool   `form:"deleteFile" json:"deleteFile"`
}

// ImageFile carries an uploaded employee image from the handler to the
// service without tying the service to multipart types.
type ImageFile struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.Reader
}

type AddressResponse struct {
	ID          int64  `json:"id"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	Street      string `json:"street"`
	PostalCode  string `json:"postalCode"`
	Description string `json:"description"`
}

type PersonResponse struct {
	ID           int64                        `json:"id"`
	Name         string                       `json:"name"`
	LastName     string                       `json:"lastName"`
	EmailAddress string                       `json:"emailAddress"`
	PhoneNumber  string                       `json:"phoneNumber"`
	Address      *AddressResponse             `json:"address,omitempty"`
	DocumentType *lookup.DocumentTypeResponse `json:"documentType,omitempty"`
}

type UserSummaryResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Enabled  bool   `json:"enabled"`
}

type EmployeeResponse struct {
	ID             int64                        `json:"id"`
	EmployeeImage  *string                      `json:"employeeImage,omitempty"`
	PersonID       int64                        `json:"personId"`
	EmployeeTypeID int64                        `json:"employeeTypeId"`
	UserID         *int64                       `json:"userId,omitempty"`
	EmployeeName   string                       `json:"employeeName,omitempty"`
	EmployeeEmail  string                       `json:"employeeEmail,omitempty"`
	Person         *PersonResponse              `json:"person,omitempty"`
	EmployeeType   *lookup.EmployeeTypeResponse `json:"employeeType,omitempty"`
	User           *UserSummaryResponse         `json:"user,omitempty"`
}

// EmployeeListPageableResponse is the paginated listing payload with the
// paging metadata derived from the count query.
type EmployeeListPageableResponse struct {
	Employees     []EmployeeResponse `json:"employees"`
	PageNumber    int                `json:"pageNumber"`
	PageSize      int                `json:"pageSize"`
	TotalPages    int                `json:"totalPages"`
	TotalElements int64              `json:"totalElements"`
	End           bool               `json:"end"`
}
