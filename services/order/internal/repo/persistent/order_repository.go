package persistent

import (
	"context"
	"errors"
	"time"

	"tiktok-shop/pkg/apperr"
	"tiktok-shop/services/order/internal/entity"
	"tiktok-shop/services/order/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error)
	// UpdateStatus moves the order from one status to another only if it is still in from.
	// Delivery also opens a wallet for every seller of the order.
	UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus) (*entity.Order, error)
	GetSellerIDByUserID(ctx context.Context, userID string) (string, error)
	// MissingSellers returns the ids in sellerIDs that have no seller row.
	MissingSellers(ctx context.Context, sellerIDs []string) ([]string, error)
	SellerUserIDs(ctx context.Context, sellerIDs []string) ([]string, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func storageErr(op string, err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.Storage(op, err)
}

// isMissing reports whether err means the looked up row cannot exist.
func isMissing(err error) bool {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	orderModel := ToOrderModel(order)
	if err := r.db.WithContext(ctx).Create(orderModel).Error; err != nil {
		return nil, storageErr("failed to create order", err)
	}
	return r.GetOrder(ctx, orderModel.ID)
}

func (r *orderRepository) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	var orderModel model.OrderModel
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&orderModel).Error
	if err != nil {
		if isMissing(err) {
			return nil, entity.ErrOrderNotFound
		}
		return nil, storageErr("failed to get order", err)
	}
	return ToOrderEntity(&orderModel), nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("customer_id = ?", customerID))
}

func (r *orderRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Order, error) {
	sellerOrderIDs := r.db.Model(&model.OrderItemModel{}).Select("order_id").Where("seller_id = ?", sellerID)
	return r.list(ctx, r.db.WithContext(ctx).Where("id IN (?)", sellerOrderIDs))
}

func (r *orderRepository) list(ctx context.Context, query *gorm.DB) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	if err := query.Preload("Items").Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, storageErr("failed to list orders", err)
	}

	orders := make([]*entity.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = ToOrderEntity(&orderModels[i])
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, from, to entity.OrderStatus) (*entity.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.OrderModel{}).
			Where("id = ? AND status = ?", id, string(from)).
			Updates(map[string]interface{}{"status": string(to), "updated_at": time.Now().UTC()})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrStatusConflict
		}

		if to != entity.StatusDelivered {
			return nil
		}

		var sellerUserIDs []string
		err := tx.Model(&model.SellerModel{}).
			Where("id IN (?)", tx.Model(&model.OrderItemModel{}).Select("seller_id").Where("order_id = ?", id)).
			Pluck("user_id", &sellerUserIDs).Error
		if err != nil {
			return err
		}

		for _, userID := range sellerUserIDs {
			wallet := model.WalletModel{UserID: userID}
			err := tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
				Create(&wallet).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("failed to update order status", err)
	}

	return r.GetOrder(ctx, id)
}

func (r *orderRepository) GetSellerIDByUserID(ctx context.Context, userID string) (string, error) {
	var sellerModel model.SellerModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&sellerModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", entity.ErrSellerNotFound
		}
		return "", storageErr("failed to get seller", err)
	}
	return sellerModel.ID, nil
}

func (r *orderRepository) MissingSellers(ctx context.Context, sellerIDs []string) ([]string, error) {
	var found []string
	if err := r.db.WithContext(ctx).Model(&model.SellerModel{}).Where("id IN ?", sellerIDs).Pluck("id", &found).Error; err != nil {
		return nil, storageErr("failed to check sellers", err)
	}

	known := make(map[string]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}

	var missing []string
	for _, id := range sellerIDs {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *orderRepository) SellerUserIDs(ctx context.Context, sellerIDs []string) ([]string, error) {
	var userIDs []string
	if err := r.db.WithContext(ctx).Model(&model.SellerModel{}).Where("id IN ?", sellerIDs).Pluck("user_id", &userIDs).Error; err != nil {
		return nil, storageErr("failed to get seller users", err)
	}
	return userIDs, nil
}
