package service

import (
	"context"
	"fmt"
	"strings"

	"food-kart/internal/model"
	"food-kart/internal/repository"
	"food-kart/internal/safety"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo    repository.CartRepository
	foodRepo    repository.FoodRepository
	profileRepo repository.HealthProfileRepository
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	foodRepo repository.FoodRepository,
	profileRepo repository.HealthProfileRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		foodRepo:    foodRepo,
		profileRepo: profileRepo,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// GetCart returns the user's cart, persisting an empty one if none exists.
func (s *cartService) GetCart(ctx context.Context, userID string) (*model.CartResponse, error) {
	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, cart)
}

// SetCartItems replaces the cart contents.
//
// Duplicate food IDs are merged by summing quantities, lines whose merged
// quantity is zero or less are removals, and foods missing from the catalogue
// are dropped. A line quantity or merged total above MaxItemQuantity, or an
// entry below its negation, fails with ErrInvalidQuantity. If the request wanted to keep at least one line and none
// survived, ErrEmptyAfterValidation is returned and the stored cart is left
// untouched. An empty request empties the cart.
func (s *cartService) SetCartItems(ctx context.Context, userID string, items []model.CartItem) (*model.CartResponse, error) {
	candidates, wantsItems, err := collapseItems(items)
	if err != nil {
		s.logger.Warn().
			Str("user_id", userID).
			Int("requested", len(items)).
			Msg("cart quantity out of range")
		return nil, err
	}

	ids := make([]string, len(candidates))
	for i, item := range candidates {
		ids[i] = item.FoodID
	}

	known := make(map[string]bool, len(ids))
	if len(ids) > 0 {
		foods, err := s.foodRepo.GetByIDs(ctx, ids)
		if err != nil {
			s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to resolve cart foods")
			return nil, fmt.Errorf("failed to resolve cart foods: %w", err)
		}
		for _, f := range foods {
			known[f.ID] = true
		}
	}

	kept := make([]model.CartItem, 0, len(candidates))
	for _, item := range candidates {
		if known[item.FoodID] {
			kept = append(kept, item)
		}
	}

	if wantsItems && len(kept) == 0 {
		s.logger.Warn().
			Str("user_id", userID).
			Int("requested", len(items)).
			Msg("no cart items survived validation")
		return nil, model.ErrEmptyAfterValidation
	}

	cart := &model.Cart{UserID: userID, Items: kept}
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to save cart")
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Int("requested", len(items)).
		Int("kept", len(kept)).
		Msg("cart updated")

	return s.view(ctx, cart)
}

// ClearCart empties the cart.
func (s *cartService) ClearCart(ctx context.Context, userID string) (*model.CartResponse, error) {
	cart := &model.Cart{UserID: userID, Items: []model.CartItem{}}
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear cart")
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info().Str("user_id", userID).Msg("cart cleared")

	return s.view(ctx, cart)
}

// AddItem merges quantity units of foodID into the existing cart.
func (s *cartService) AddItem(ctx context.Context, userID, foodID string, quantity int) (*model.CartResponse, error) {
	if quantity <= 0 || quantity > model.MaxItemQuantity {
		return nil, model.ErrInvalidQuantity
	}

	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := append(cloneItems(cart.Items), model.CartItem{FoodID: foodID, Quantity: quantity})
	return s.SetCartItems(ctx, userID, items)
}

// UpdateItemQuantity sets the absolute quantity of foodID.
func (s *cartService) UpdateItemQuantity(ctx context.Context, userID, foodID string, quantity int) (*model.CartResponse, error) {
	cart, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := cloneItems(cart.Items)
	found := false
	for i := range items {
		if items[i].FoodID == foodID {
			items[i].Quantity = quantity
			found = true
		}
	}
	if !found {
		if quantity <= 0 {
			return s.view(ctx, cart)
		}
		items = append(items, model.CartItem{FoodID: foodID, Quantity: quantity})
	}

	return s.SetCartItems(ctx, userID, items)
}

func (s *cartService) load(ctx context.Context, userID string) (*model.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get cart")
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart != nil {
		return cart, nil
	}

	cart = &model.Cart{UserID: userID, Items: []model.CartItem{}}
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create cart")
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	s.logger.Debug().Str("user_id", userID).Msg("created empty cart")

	return cart, nil
}

// view joins the stored cart with the current catalogue and the user's
// profile. Lines whose food has disappeared are left out.
func (s *cartService) view(ctx context.Context, cart *model.Cart) (*model.CartResponse, error) {
	resp := &model.CartResponse{
		UserID:    cart.UserID,
		Items:     []model.CartLine{},
		UpdatedAt: cart.UpdatedAt,
	}
	if len(cart.Items) == 0 {
		return resp, nil
	}

	ids := make([]string, len(cart.Items))
	for i, item := range cart.Items {
		ids[i] = item.FoodID
	}

	foods, err := s.foodRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", cart.UserID).Msg("failed to resolve cart foods")
		return nil, fmt.Errorf("failed to resolve cart foods: %w", err)
	}
	byID := make(map[string]model.FoodItem, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	profile, err := s.profileRepo.Get(ctx, cart.UserID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", cart.UserID).Msg("failed to get health profile")
		return nil, fmt.Errorf("failed to get health profile: %w", err)
	}

	for _, item := range cart.Items {
		food, ok := byID[item.FoodID]
		if !ok {
			continue
		}
		lineTotal, err := model.LineTotal(food.Price, item.Quantity)
		if err != nil {
			s.logger.Warn().Err(err).Str("user_id", cart.UserID).Str("food_id", item.FoodID).Msg("cart line out of range")
			return nil, err
		}
		if resp.Subtotal, err = model.AddAmount(resp.Subtotal, lineTotal); err != nil {
			s.logger.Warn().Err(err).Str("user_id", cart.UserID).Msg("cart subtotal out of range")
			return nil, err
		}
		verdict := safety.Check(profile, &food)
		resp.Items = append(resp.Items, model.CartLine{
			FoodID:    item.FoodID,
			Quantity:  item.Quantity,
			Food:      food,
			LineTotal: lineTotal,
			Safety:    &verdict,
		})
	}

	return resp, nil
}

// collapseItems merges duplicate food IDs in first-seen order and drops
// removals. wantsItems reports whether any merged line had a positive
// quantity, including lines whose food ID is blank. Entries outside
// [-MaxItemQuantity, MaxItemQuantity] and merged lines above
// MaxItemQuantity are rejected, which also keeps the sums from wrapping.
func collapseItems(items []model.CartItem) (candidates []model.CartItem, wantsItems bool, err error) {
	order := make([]string, 0, len(items))
	totals := make(map[string]int, len(items))
	for _, item := range items {
		if item.Quantity > model.MaxItemQuantity || item.Quantity < -model.MaxItemQuantity {
			return nil, false, model.ErrInvalidQuantity
		}
		id := strings.TrimSpace(item.FoodID)
		if _, seen := totals[id]; !seen {
			order = append(order, id)
		}
		totals[id] += item.Quantity
	}

	candidates = make([]model.CartItem, 0, len(order))
	for _, id := range order {
		qty := totals[id]
		if qty > model.MaxItemQuantity {
			return nil, false, model.ErrInvalidQuantity
		}
		if qty <= 0 {
			continue
		}
		wantsItems = true
		if id == "" {
			continue
		}
		candidates = append(candidates, model.CartItem{FoodID: id, Quantity: qty})
	}
	return candidates, wantsItems, nil
}

func cloneItems(items []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, len(items), len(items)+1)
	copy(out, items)
	return out
}
