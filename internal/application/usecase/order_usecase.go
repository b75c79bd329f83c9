package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/allegrotrade/marketplace-api/internal/application/dto"
	"github.com/allegrotrade/marketplace-api/internal/domain/entity"
	"github.com/allegrotrade/marketplace-api/internal/domain/repository"
)

// OrderUseCase colocación y seguimiento de órdenes entre empresas.
type OrderUseCase struct {
	repo          repository.OrderRepository
	inventoryRepo repository.InventoryRepository
}

// NewOrderUseCase construye el caso de uso con los puertos de persistencia.
func NewOrderUseCase(repo repository.OrderRepository, inventoryRepo repository.InventoryRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo, inventoryRepo: inventoryRepo}
}

// Create coloca una orden. Genera ID, CreatedAt y UpdatedAt. Las referencias
// a empresas e inventario no se validan (débiles); si totalPrice viene en
// cero y el item referenciado existe, se deriva como precio × cantidad.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.OrderPending
	}
	total := in.TotalPrice
	if total.IsZero() && in.InventoryID != "" {
		if item, _ := uc.inventoryRepo.GetByID(in.InventoryID); item != nil {
			total = item.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		}
	}
	now := time.Now()
	order := &entity.Order{
		ID:               uuid.New().String(),
		BuyerCompanyID:   in.BuyerCompanyID,
		SellerCompanyID:  in.SellerCompanyID,
		InventoryID:      in.InventoryID,
		Quantity:         in.Quantity,
		TotalPrice:       total,
		Status:           status,
		EscrowStatus:     in.EscrowStatus,
		BlockchainTxHash: in.BlockchainTxHash,
		ShippingStatus:   in.ShippingStatus,
		TrackingNumber:   in.TrackingNumber,
		Notes:            in.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID. (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// ListByBuyer lista las compras de una empresa.
func (uc *OrderUseCase) ListByBuyer(buyerCompanyID string) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListByBuyer(buyerCompanyID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListBySeller lista las ventas de una empresa.
func (uc *OrderUseCase) ListBySeller(sellerCompanyID string) ([]dto.OrderResponse, error) {
	list, err := uc.repo.ListBySeller(sellerCompanyID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// Update aplica solo los campos presentes y refresca UpdatedAt; CreatedAt
// nunca cambia. No hay máquina de estados: cualquier status se acepta.
// (nil, nil) si la orden no existe.
func (uc *OrderUseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if in.BuyerCompanyID != nil {
		order.BuyerCompanyID = *in.BuyerCompanyID
	}
	if in.SellerCompanyID != nil {
		order.SellerCompanyID = *in.SellerCompanyID
	}
	if in.InventoryID != nil {
		order.InventoryID = *in.InventoryID
	}
	if in.Quantity != nil {
		order.Quantity = *in.Quantity
	}
	if in.TotalPrice != nil {
		order.TotalPrice = *in.TotalPrice
	}
	if in.Status != nil {
		order.Status = *in.Status
	}
	if in.EscrowStatus != nil {
		order.EscrowStatus = *in.EscrowStatus
	}
	if in.BlockchainTxHash != nil {
		order.BlockchainTxHash = *in.BlockchainTxHash
	}
	if in.ShippingStatus != nil {
		order.ShippingStatus = *in.ShippingStatus
	}
	if in.TrackingNumber != nil {
		order.TrackingNumber = *in.TrackingNumber
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// Delete elimina la orden y reporta si existía.
func (uc *OrderUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:               o.ID,
		BuyerCompanyID:   o.BuyerCompanyID,
		SellerCompanyID:  o.SellerCompanyID,
		InventoryID:      o.InventoryID,
		Quantity:         o.Quantity,
		TotalPrice:       o.TotalPrice,
		Status:           o.Status,
		EscrowStatus:     o.EscrowStatus,
		BlockchainTxHash: o.BlockchainTxHash,
		ShippingStatus:   o.ShippingStatus,
		TrackingNumber:   o.TrackingNumber,
		Notes:            o.Notes,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items
}
