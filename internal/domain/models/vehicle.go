package models

type Vehicle struct {
	ID       string `json:"id"`
	Plate    string `json:"plate"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
}
