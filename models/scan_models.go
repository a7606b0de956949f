package models

// ScanEvent is published by the upstream extractor after it reads a QR
// photograph: the candidate static payload, the merchant metadata it
// recognized, and the amount the user keyed in.
type ScanEvent struct {
	ScanID       string `json:"scan_id"`
	Payload      string `json:"payload"`
	Amount       string `json:"amount"`
	MerchantName string `json:"merchant_name"`
	MerchantCity string `json:"merchant_city"`
	ScannedAt    string `json:"scanned_at"`
}

// MerchantHistory is the persisted record of one transformed payload.
// History is deduplicated on the static payload string, so rescanning the
// same code refreshes the existing entry instead of adding another.
type MerchantHistory struct {
	ScanID         string `json:"scan_id" bson:"_id"`
	Payload        string `json:"payload" bson:"payload"`
	DynamicPayload string `json:"dynamic_payload" bson:"dynamic_payload"`
	Amount         string `json:"amount" bson:"amount"`
	MerchantName   string `json:"merchant_name" bson:"merchant_name"`
	MerchantCity   string `json:"merchant_city" bson:"merchant_city"`
	ScannedAt      string `json:"scanned_at" bson:"scanned_at"`
}

func (e *ScanEvent) Transform(dynamicPayload string) MerchantHistory {
	return MerchantHistory{
		ScanID:         e.ScanID,
		Payload:        e.Payload,
		DynamicPayload: dynamicPayload,
		Amount:         e.Amount,
		MerchantName:   e.MerchantName,
		MerchantCity:   e.MerchantCity,
		ScannedAt:      e.ScannedAt,
	}
}
