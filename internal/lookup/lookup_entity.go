package lookup

// DocumentType is a read-only reference row (e.g. DNI, PASSPORT).
type DocumentType struct {
	ID    int64  `gorm:"column:document_type_id;primaryKey"`
	Value string `gorm:"column:document_type_value"`
}

func (DocumentType) TableName() string {
	return "document_type"
}

// EmployeeType is a read-only reference row (e.g. STYLIST, RECEPTIONIST).
type EmployeeType struct {
	ID    int64  `gorm:"column:employee_type_id;primaryKey"`
	Value string `gorm:"column:employee_type_value"`
}

func (EmployeeType) TableName() string {
	return "employee_type"
}
