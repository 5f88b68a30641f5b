package models

// AdminOverview counts the records behind the admin screens.
type AdminOverview struct {
	Students int `json:"students"`
	Teachers int `json:"teachers"`
	HRs      int `json:"hrs"`
}
