package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"fleur-api/dto"
	"fleur-api/events"
	"fleur-api/kafka"
	"fleur-api/logger"
	"fleur-api/models"
	"fleur-api/repositories"
)

// OrderService places and lists orders. Placed orders start pending; the
// checkout service confirms them after payment verification.
type OrderService struct {
	orders   *repositories.OrderRepository
	products *repositories.ProductRepository
	carts    *repositories.CartRepository
	producer kafka.Producer
}

func NewOrderService(orders *repositories.OrderRepository, products *repositories.ProductRepository, carts *repositories.CartRepository, producer kafka.Producer) *OrderService {
	return &OrderService{orders: orders, products: products, carts: carts, producer: producer}
}

// Create snapshots product data into the order, clears the cart, and
// emits an order.placed event. The total is recomputed from the catalog
// rather than trusted from the client.
func (s *OrderService) Create(ctx context.Context, userID string, req dto.OrderCreateRequestDTO) (*dto.OrderDTO, error) {
	items := make([]models.OrderItem, 0, len(req.Items))
	total := 0.0
	for _, line := range req.Items {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
			}
			return nil, err
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  line.Quantity,
			Size:      product.Size,
		})
		total += product.Price * float64(line.Quantity)
	}

	order := &models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   models.PaymentStatusPending,
		OrderStatus:     models.OrderStatusProcessing,
		TotalAmount:     total,
		CreatedAt:       time.Now(),
	}
	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		logger.ErrorWithFields("failed to clear cart after order", logger.Fields{
			"order_id": order.ID,
			"error":    err.Error(),
		})
	}

	event := events.OrderPlacedEvent{
		BaseEvent:     events.NewBase(events.OrderPlaced),
		OrderID:       order.ID,
		UserID:        userID,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: order.PaymentMethod,
		ItemCount:     len(order.Items),
	}
	if err := s.producer.PublishEvent(kafka.TopicOrderEvents, event); err != nil {
		logger.Log.Errorf("failed to publish order.placed: %v", err)
	}

	d := dto.NewOrderDTO(*order)
	return &d, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]dto.OrderDTO, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewOrderDTOs(orders), nil
}

// Get returns an order only to its owner.
func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*dto.OrderDTO, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	d := dto.NewOrderDTO(*order)
	return &d, nil
}
