package imeirpc

// IMEIs travel as 15-digit strings so clients in any language keep leading
// zeros and never round through a float.

type GenerateRequest struct{}

type GenerateResponse struct {
	Imei string `json:"imei"`
}

func (x *GenerateResponse) GetImei() string {
	if x != nil {
		return x.Imei
	}
	return ""
}

type GenerateBatchRequest struct {
	Count int32 `json:"count"`
}

func (x *GenerateBatchRequest) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type GenerateBatchResponse struct {
	Imeis []string `json:"imeis"`
}

func (x *GenerateBatchResponse) GetImeis() []string {
	if x != nil {
		return x.Imeis
	}
	return nil
}

type ValidateRequest struct {
	Imei string `json:"imei"`
}

func (x *ValidateRequest) GetImei() string {
	if x != nil {
		return x.Imei
	}
	return ""
}

type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type ParseRequest struct {
	Imei string `json:"imei"`
}

func (x *ParseRequest) GetImei() string {
	if x != nil {
		return x.Imei
	}
	return ""
}

// ParseResponse carries the decoded fields when Valid is true and
// ErrorMessage otherwise.
type ParseResponse struct {
	Valid        bool   `json:"valid"`
	ErrorMessage string `json:"error_message,omitempty"`
	Imei         string `json:"imei,omitempty"`
	Tac          int32  `json:"tac"`
	Fac          int32  `json:"fac"`
	Snr          int32  `json:"snr"`
	CheckDigit   int32  `json:"check_digit"`
}
