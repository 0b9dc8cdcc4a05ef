package service

import (
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// QRGenerator renders the handoff code a courier scans at the building.
type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func NewDefaultQRGenerator(baseURL string) *DefaultQRGenerator {
	return &DefaultQRGenerator{BaseURL: strings.TrimRight(baseURL, "/")}
}

// Link is the order page URL the code encodes.
func (g *DefaultQRGenerator) Link(orderID string) string {
	return g.BaseURL + "/orders/" + orderID
}

func (g *DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	return qrcode.Encode(g.Link(orderID), qrcode.Medium, 256)
}
