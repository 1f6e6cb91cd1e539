package response

type SlotOccupancyResponse struct {
	DeviceCode string `json:"device_code"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	Occupied   bool   `json:"occupied"`
}
