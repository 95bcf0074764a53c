package qrcode

import (
	"encoding/json"
	"fmt"
	"math"

	"dietplan/internal/domain/entity"
	"dietplan/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const shoppingListType = "shopping_list"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type  string   `json:"type"`
	Items []QRItem `json:"items"`
}

// QRItem is a compact shopping list line. Contributing dishes are left out to keep the code scannable.
type QRItem struct {
	Name     string  `json:"n"`
	Quantity float64 `json:"q"`
	Unit     string  `json:"u,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.ShoppingListQRService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateShoppingListQR generates a PNG QR code carrying the shopping list
func (s *qrcodeService) GenerateShoppingListQR(items []entity.ShoppingListItem) ([]byte, error) {
	data := QRCodeData{
		Type:  shoppingListType,
		Items: make([]QRItem, 0, len(items)),
	}
	for _, item := range items {
		data.Items = append(data.Items, QRItem{
			Name:     item.Name,
			Quantity: math.Round(item.Quantity*100) / 100,
			Unit:     item.Unit,
		})
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShoppingListQR parses QR code data back into shopping list lines
func (s *qrcodeService) ParseShoppingListQR(qrData string) ([]entity.ShoppingListItem, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != shoppingListType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	items := make([]entity.ShoppingListItem, 0, len(data.Items))
	for i, item := range data.Items {
		if item.Name == "" {
			return nil, fmt.Errorf("invalid QR code item %d: missing name", i)
		}
		items = append(items, entity.ShoppingListItem{
			Name:     item.Name,
			Unit:     item.Unit,
			Quantity: item.Quantity,
		})
	}

	return items, nil
}
