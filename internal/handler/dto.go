package handler

import "github.com/weiawesome/imei-service/pkg/imei/imeijson"

// BatchRequest is the body of POST /api/v1/imei/batch.
type BatchRequest struct {
	Count int `json:"count"`
}

type GenerateResponse struct {
	IMEI imeijson.Value `json:"imei"`
}

type BatchResponse struct {
	Count int              `json:"count"`
	IMEIs []imeijson.Value `json:"imeis"`
}

type ValidateResponse struct {
	IMEI   string `json:"imei"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ParseResponse lists the decoded sub-fields of a valid IMEI.
type ParseResponse struct {
	IMEI       imeijson.Value `json:"imei"`
	TAC        int            `json:"tac"`
	FAC        int            `json:"fac"`
	SNR        int            `json:"snr"`
	CheckDigit int            `json:"check_digit"`
}
