package models

type LabTestInfo struct {
	Name              string `json:"name"`
	Unit              string `json:"unit"`
	NormalRangeMale   string `json:"normal_range_male"`
	NormalRangeFemale string `json:"normal_range_female"`
	Description       string `json:"description"`
	HighMeaning       string `json:"high_meaning"`
	LowMeaning        string `json:"low_meaning"`
}

type MedicationInfo struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Purpose     string   `json:"purpose"`
	SideEffects []string `json:"side_effects"`
	Precautions string   `json:"precautions"`
}
