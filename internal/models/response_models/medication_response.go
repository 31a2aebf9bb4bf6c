package response_models

import "time"

// MedicationSlotRow is the flattened schedule view: one row per slot with
// its medication context folded in.
type MedicationSlotRow struct {
	SlotID     string    `json:"id"`
	MedicineID string    `json:"medicineId"`
	Frequency  string    `json:"frequency"`
	Note       string    `json:"note"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	TimeOfDay  string    `json:"timeOfDay"`
	Amount     float64   `json:"amount"`
}
