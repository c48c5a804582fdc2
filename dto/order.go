package dto

import (
	"time"

	"fleur-api/models"
)

type OrderCreateRequestDTO struct {
	Items           []CartItemRequestDTO `json:"items" binding:"required,min=1,dive"`
	ShippingAddress map[string]string    `json:"shipping_address" binding:"required"`
	PaymentMethod   string               `json:"payment_method" binding:"required,oneof=stripe razorpay"`
	TotalAmount     float64              `json:"total_amount" binding:"required,gt=0"`
}

type OrderItemDTO struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
}

type OrderDTO struct {
	ID              string            `json:"id"`
	UserID          string            `json:"user_id"`
	Items           []OrderItemDTO    `json:"items"`
	ShippingAddress map[string]string `json:"shipping_address"`
	PaymentMethod   string            `json:"payment_method"`
	PaymentStatus   string            `json:"payment_status"`
	OrderStatus     string            `json:"order_status"`
	TotalAmount     float64           `json:"total_amount"`
	CreatedAt       time.Time         `json:"created_at"`
}

func NewOrderDTO(o models.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemDTO{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Image:     it.Image,
			Quantity:  it.Quantity,
			Size:      it.Size,
		})
	}
	return OrderDTO{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		OrderStatus:     o.OrderStatus,
		TotalAmount:     o.TotalAmount,
		CreatedAt:       o.CreatedAt,
	}
}

func NewOrderDTOs(orders []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderDTO(o))
	}
	return out
}
