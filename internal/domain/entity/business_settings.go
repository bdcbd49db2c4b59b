package entity

// BusinessSettings configuración del negocio (cabecera de recibos, datos fiscales).
type BusinessSettings struct {
	BusinessName  string `json:"business_name"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	TaxPIN        string `json:"kra_pin,omitempty"` // PIN de la KRA
	Currency      string `json:"currency,omitempty"`
	ReceiptFooter string `json:"receipt_footer,omitempty"`
	LogoURL       string `json:"logo_url,omitempty"`
}
