package service

import "dietplan/internal/domain/entity"

// ShoppingListQRService renders a shopping list as a scannable QR code.
type ShoppingListQRService interface {
	// GenerateShoppingListQR encodes the list as a PNG image.
	GenerateShoppingListQR(items []entity.ShoppingListItem) ([]byte, error)

	// ParseShoppingListQR decodes the text payload carried by the QR code.
	ParseShoppingListQR(payload string) ([]entity.ShoppingListItem, error)
}
