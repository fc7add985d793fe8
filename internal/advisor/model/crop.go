package model

type Crop struct {
	Name        string `json:"name"`
	Season      string `json:"season"`
	Soil        string `json:"soil"`
	Water       string `json:"water"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type SoilType struct {
	Slug     string
	Name     string
	Summary  string
	Traits   []string
	Crops    []string
	CareTips []string
}
