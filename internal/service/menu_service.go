package service

import (
	"errors"
	"fmt"
	"strings"

	"kitchary/internal/domain"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrInvalidItemName  = errors.New("menu item name is required")
	ErrInvalidItemPrice = errors.New("menu item price must not be negative")
)

type MenuService struct {
	menu MenuRepository
}

func NewMenuService(menu MenuRepository) *MenuService {
	return &MenuService{menu: menu}
}

func (s *MenuService) ListItems() ([]domain.MenuItem, error) {
	return s.menu.ListMenuItems()
}

func (s *MenuService) CreateItem(item *domain.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrInvalidItemName
	}
	if item.Price < 0 {
		return ErrInvalidItemPrice
	}
	if err := s.menu.InsertMenuItem(item); err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (s *MenuService) SetItemImage(itemID int, imageURL string) error {
	found, err := s.menu.UpdateMenuItemImage(itemID, imageURL)
	if err != nil {
		return fmt.Errorf("failed to update menu item image: %w", err)
	}
	if !found {
		return ErrMenuItemNotFound
	}
	return nil
}
