package migrate

import (
	"context"

	"github.com/HamzaHajMtir1/Elite-Shop/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MigrateOptions struct {
	CreateExtensions       bool // pgcrypto, uuid-ossp, pg_trgm
	CreateChecks           bool // CHECK constraints
	CreateIndexes          bool // indexes and UNIQUE
	CreateFKsViaSQL        bool // FKs via SQL on top of GORM constraints
	CreateUpdatedAtTrigger bool // updated_at trigger
}

func DefaultMigrateOptions() MigrateOptions {
	return MigrateOptions{
		CreateExtensions:       true,
		CreateChecks:           true,
		CreateIndexes:          true,
		CreateFKsViaSQL:        true,
		CreateUpdatedAtTrigger: true,
	}
}

func MigrateStoreDB(ctx context.Context, db *gorm.DB, log *zap.Logger, opt MigrateOptions) error {
	log.Info("starting store database migration")

	if opt.CreateExtensions {
		log.Info("creating PostgreSQL extensions")
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
			log.Error("failed to enable pgcrypto", zap.Error(err))
			return err
		}
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
			log.Error("failed to enable uuid-ossp", zap.Error(err))
			return err
		}
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`).Error; err != nil {
			log.Error("failed to enable pg_trgm", zap.Error(err))
			return err
		}
	}

	log.Info("creating tables")
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Error("failed to create tables", zap.Error(err))
		return err
	}

	if opt.CreateUpdatedAtTrigger {
		log.Info("creating updated_at triggers")
		if err := db.Exec(`
CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
BEGIN NEW.updated_at = now(); RETURN NEW; END; $$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS trg_products_updated ON products;
CREATE TRIGGER trg_products_updated
BEFORE UPDATE ON products
FOR EACH ROW EXECUTE FUNCTION set_updated_at();

DROP TRIGGER IF EXISTS trg_orders_updated ON orders;
CREATE TRIGGER trg_orders_updated
BEFORE UPDATE ON orders
FOR EACH ROW EXECUTE FUNCTION set_updated_at();
`).Error; err != nil {
			log.Error("failed to create updated_at triggers", zap.Error(err))
			return err
		}
	}

	if opt.CreateChecks {
		log.Info("creating CHECK constraints")

		if err := db.Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_status_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_status_allowed
  CHECK (status IN ('pending','processing','shipped','delivered','cancelled'));
`).Error; err != nil {
			log.Error("failed to create CHECK for orders.status", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_payment_method_allowed;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_payment_method_allowed
  CHECK (payment_method IN ('stripe','paypal','cod'));
`).Error; err != nil {
			log.Error("failed to create CHECK for orders.payment_method", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE orders
  DROP CONSTRAINT IF EXISTS chk_orders_amounts_non_negative;
ALTER TABLE orders
  ADD CONSTRAINT chk_orders_amounts_non_negative
  CHECK (total_amount_cents >= 0 AND shipping_cost_cents >= 0);
`).Error; err != nil {
			log.Error("failed to create CHECK for orders amounts", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS chk_products_stock_non_negative;
ALTER TABLE products
  ADD CONSTRAINT chk_products_stock_non_negative
  CHECK (stock >= 0);
`).Error; err != nil {
			log.Error("failed to create CHECK for products.stock", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS chk_products_price_non_negative;
ALTER TABLE products
  ADD CONSTRAINT chk_products_price_non_negative
  CHECK (price_cents >= 0);
`).Error; err != nil {
			log.Error("failed to create CHECK for products.price_cents", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE cart_items
  DROP CONSTRAINT IF EXISTS chk_cart_items_quantity_gt_zero;
ALTER TABLE cart_items
  ADD CONSTRAINT chk_cart_items_quantity_gt_zero
  CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("failed to create CHECK for cart_items.quantity", zap.Error(err))
			return err
		}

		// a cart row belongs to exactly one owner kind
		if err := db.Exec(`
ALTER TABLE cart_items
  DROP CONSTRAINT IF EXISTS chk_cart_items_single_owner;
ALTER TABLE cart_items
  ADD CONSTRAINT chk_cart_items_single_owner
  CHECK ((user_id IS NULL) <> (session_token IS NULL));
`).Error; err != nil {
			log.Error("failed to create CHECK for cart_items owner", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_quantity_gt_zero;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_quantity_gt_zero
  CHECK (quantity > 0);
`).Error; err != nil {
			log.Error("failed to create CHECK for order_items.quantity", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS chk_order_items_price_non_negative;
ALTER TABLE order_items
  ADD CONSTRAINT chk_order_items_price_non_negative
  CHECK (product_price_cents >= 0);
`).Error; err != nil {
			log.Error("failed to create CHECK for order_items.product_price_cents", zap.Error(err))
			return err
		}
	}

	if opt.CreateIndexes {
		log.Info("creating indexes")

		// one cart row per owner+product, split by owner kind
		if err := db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_cart_items_user_product
ON cart_items (user_id, product_id)
WHERE user_id IS NOT NULL;
`).Error; err != nil {
			log.Error("failed to create unique index ux_cart_items_user_product", zap.Error(err))
			return err
		}
		if err := db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_cart_items_session_product
ON cart_items (session_token, product_id)
WHERE session_token IS NOT NULL;
`).Error; err != nil {
			log.Error("failed to create unique index ux_cart_items_session_product", zap.Error(err))
			return err
		}

		if err := db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS ux_orders_order_number
ON orders (order_number);
`).Error; err != nil {
			log.Error("failed to create unique index ux_orders_order_number", zap.Error(err))
			return err
		}

		if err := db.Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_user_created
ON orders (user_id, created_at DESC);
`).Error; err != nil {
			log.Error("failed to create index ix_orders_user_created", zap.Error(err))
			return err
		}

		if err := db.Exec(`
CREATE INDEX IF NOT EXISTS ix_orders_status_created
ON orders (status, created_at DESC);
`).Error; err != nil {
			log.Error("failed to create index ix_orders_status_created", zap.Error(err))
			return err
		}

		if err := db.Exec(`
CREATE INDEX IF NOT EXISTS ix_products_category
ON products (category_id);
`).Error; err != nil {
			log.Error("failed to create index ix_products_category", zap.Error(err))
			return err
		}

		// trigram index for name search
		if err := db.Exec(`
CREATE INDEX IF NOT EXISTS ix_products_name_trgm
ON products USING gin (name gin_trgm_ops);
`).Error; err != nil {
			log.Error("failed to create index ix_products_name_trgm", zap.Error(err))
			return err
		}
	}

	if opt.CreateFKsViaSQL {
		log.Info("creating foreign keys")

		if err := db.Exec(`
ALTER TABLE products
  DROP CONSTRAINT IF EXISTS fk_products_category,
  ADD CONSTRAINT fk_products_category
    FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL;
`).Error; err != nil {
			log.Error("failed to create FK products.category_id", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE cart_items
  DROP CONSTRAINT IF EXISTS fk_cart_items_product,
  ADD CONSTRAINT fk_cart_items_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("failed to create FK cart_items.product_id", zap.Error(err))
			return err
		}

		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_order,
  ADD CONSTRAINT fk_order_items_order
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE;
`).Error; err != nil {
			log.Error("failed to create FK order_items.order_id", zap.Error(err))
			return err
		}

		// frozen line items survive product deletion
		if err := db.Exec(`
ALTER TABLE order_items
  DROP CONSTRAINT IF EXISTS fk_order_items_product,
  ADD CONSTRAINT fk_order_items_product
    FOREIGN KEY (product_id) REFERENCES products(id) ON DELETE SET NULL;
`).Error; err != nil {
			log.Error("failed to create FK order_items.product_id", zap.Error(err))
			return err
		}
	}

	log.Info("store database migration completed")
	return nil
}
