package lookup

type DocumentTypeResponse struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

type EmployeeTypeResponse struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}
