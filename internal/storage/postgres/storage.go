package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/vitrinepdv/vitrine/internal/domain/errors"
	"github.com/vitrinepdv/vitrine/internal/domain/model"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage relies on.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type staffRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Staff() repository.StaffRepository {
	return &staffRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE SEQUENCE IF NOT EXISTS order_numbers`,
		`CREATE TABLE IF NOT EXISTS staff (
            id BIGSERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'seller',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            cost_price DOUBLE PRECISION,
            promo_price DOUBLE PRECISION,
            images TEXT[] NOT NULL DEFAULT '{}',
            category_id TEXT NOT NULL DEFAULT '',
            stock INT NOT NULL DEFAULT 0 CHECK (stock >= 0),
            min_stock INT,
            sizes TEXT[] NOT NULL DEFAULT '{}',
            colors JSONB NOT NULL DEFAULT '[]',
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            number BIGINT UNIQUE NOT NULL DEFAULT nextval('order_numbers'),
            idempotency_key TEXT UNIQUE NOT NULL,
            customer_id TEXT NOT NULL DEFAULT '',
            customer_name TEXT NOT NULL,
            customer_email TEXT NOT NULL DEFAULT '',
            customer_phone TEXT NOT NULL DEFAULT '',
            subtotal DOUBLE PRECISION NOT NULL,
            shipping_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
            discount DOUBLE PRECISION NOT NULL DEFAULT 0,
            total DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL,
            payment_method TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            payment_id TEXT NOT NULL DEFAULT '',
            invoice_url TEXT NOT NULL DEFAULT '',
            qr_image TEXT NOT NULL DEFAULT '',
            qr_payload TEXT NOT NULL DEFAULT '',
            qr_expiration TIMESTAMPTZ,
            bank_slip_url TEXT NOT NULL DEFAULT '',
            carrier TEXT NOT NULL DEFAULT '',
            shipping_days INT NOT NULL DEFAULT 0,
            addr_street TEXT NOT NULL DEFAULT '',
            addr_number TEXT NOT NULL DEFAULT '',
            addr_complement TEXT NOT NULL DEFAULT '',
            addr_district TEXT NOT NULL DEFAULT '',
            addr_city TEXT NOT NULL DEFAULT '',
            addr_state TEXT NOT NULL DEFAULT '',
            addr_cep TEXT NOT NULL DEFAULT '',
            tracking_code TEXT NOT NULL DEFAULT '',
            notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            paid_at TIMESTAMPTZ,
            shipped_at TIMESTAMPTZ,
            delivered_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id BIGSERIAL PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            product_id TEXT NOT NULL,
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            promo_price DOUBLE PRECISION,
            image TEXT NOT NULL DEFAULT '',
            size TEXT NOT NULL DEFAULT '',
            color TEXT NOT NULL DEFAULT '',
            quantity INT NOT NULL CHECK (quantity > 0)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const orderColumns = `id, number, idempotency_key,
    customer_id, customer_name, customer_email, customer_phone,
    subtotal, shipping_cost, discount, total,
    status, payment_method, payment_status,
    payment_id, invoice_url, qr_image, qr_payload, qr_expiration, bank_slip_url,
    carrier, shipping_days,
    addr_street, addr_number, addr_complement, addr_district, addr_city, addr_state, addr_cep,
    tracking_code, notes, created_at, updated_at, paid_at, shipped_at, delivered_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.Number, &o.IdempotencyKey,
		&o.Customer.ID, &o.Customer.Name, &o.Customer.Email, &o.Customer.Phone,
		&o.Subtotal, &o.ShippingCost, &o.Discount, &o.Total,
		&o.Status, &o.PaymentMethod, &o.PaymentStatus,
		&o.Payment.PaymentID, &o.Payment.InvoiceURL, &o.Payment.QRImage, &o.Payment.QRPayload, &o.Payment.QRExpiration, &o.Payment.BankSlipURL,
		&o.Shipping.Carrier, &o.Shipping.EstimatedDays,
		&o.Address.Street, &o.Address.Number, &o.Address.Complement, &o.Address.District, &o.Address.City, &o.Address.State, &o.Address.CEP,
		&o.TrackingCode, &o.Notes, &o.CreatedAt, &o.UpdatedAt, &o.PaidAt, &o.ShippedAt, &o.DeliveredAt,
	)
	if err != nil {
		return nil, err
	}
	o.Shipping.Cost = o.ShippingCost
	return &o, nil
}

func loadOrderItems(ctx context.Context, q querier, orderID string) ([]model.CartItem, error) {
	const query = `SELECT product_id, name, price, promo_price, image, size, color, quantity
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.CartItem
	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Price, &item.PromoPrice, &item.Image, &item.Size, &item.Color, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, bool, error) {
	replay := false
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insert = `INSERT INTO orders (
                id, idempotency_key,
                customer_id, customer_name, customer_email, customer_phone,
                subtotal, shipping_cost, discount, total,
                status, payment_method, payment_status,
                carrier, shipping_days,
                addr_street, addr_number, addr_complement, addr_district, addr_city, addr_state, addr_cep,
                notes)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
            ON CONFLICT (idempotency_key) DO NOTHING
            RETURNING number, created_at, updated_at`
		err := tx.QueryRow(ctx, insert,
			order.ID, order.IdempotencyKey,
			order.Customer.ID, order.Customer.Name, order.Customer.Email, order.Customer.Phone,
			order.Subtotal, order.ShippingCost, order.Discount, order.Total,
			order.Status, order.PaymentMethod, order.PaymentStatus,
			order.Shipping.Carrier, order.Shipping.EstimatedDays,
			order.Address.Street, order.Address.Number, order.Address.Complement, order.Address.District, order.Address.City, order.Address.State, order.Address.CEP,
			order.Notes,
		).Scan(&order.Number, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				replay = true
				return nil
			}
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, name, price, promo_price, image, size, color, quantity)
                            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
		for _, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem, order.ID, item.ProductID, item.Name, item.Price, item.PromoPrice, item.Image, item.Size, item.Color, item.Quantity); err != nil {
				return err
			}
			if err := decrementStockTx(ctx, tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if replay {
		existing, err := r.getByIdempotencyKey(ctx, order.IdempotencyKey)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	return order, true, nil
}

func (r *orderRepository) getByIdempotencyKey(ctx context.Context, key string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE idempotency_key=$1`
	return r.fetchOne(ctx, query, key)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return r.fetchOne(ctx, query, id)
}

func (r *orderRepository) GetByNumber(ctx context.Context, number int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE number=$1`
	return r.fetchOne(ctx, query, number)
}

func (r *orderRepository) GetByPaymentID(ctx context.Context, paymentID string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE payment_id=$1`
	return r.fetchOne(ctx, query, paymentID)
}

func (r *orderRepository) fetchOne(ctx context.Context, query string, arg any) (*model.Order, error) {
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	items, err := loadOrderItems(ctx, r.storage.pool, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var (
		conds []string
		args  []any
	)
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		conds = append(conds, fmt.Sprintf("customer_id=$%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("created_at < $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := loadOrderItems(ctx, r.storage.pool, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *orderRepository) SelectPendingPayments(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
              WHERE status='PENDING' AND payment_method <> 'CASH' AND payment_id <> ''
              ORDER BY created_at
              LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ApplyTransition(ctx context.Context, orderID string, tr repository.Transition) (*model.Order, error) {
	expected := make([]string, 0, len(tr.ExpectStatus))
	for _, s := range tr.ExpectStatus {
		expected = append(expected, string(s))
	}

	var (
		paymentID, invoiceURL, qrImage, qrPayload, bankSlipURL *string
		qrExpiration                                           *time.Time
	)
	if tr.PaymentRefs != nil {
		paymentID = &tr.PaymentRefs.PaymentID
		invoiceURL = &tr.PaymentRefs.InvoiceURL
		qrImage = &tr.PaymentRefs.QRImage
		qrPayload = &tr.PaymentRefs.QRPayload
		bankSlipURL = &tr.PaymentRefs.BankSlipURL
		qrExpiration = tr.PaymentRefs.QRExpiration
	}

	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		query := `UPDATE orders SET
                status=$2,
                payment_status=COALESCE($3, payment_status),
                tracking_code=COALESCE($4, tracking_code),
                notes=CASE WHEN $5::text IS NULL THEN notes
                           WHEN notes = '' THEN $5
                           ELSE notes || E'\n' || $5 END,
                payment_id=COALESCE($6, payment_id),
                invoice_url=COALESCE($7, invoice_url),
                qr_image=COALESCE($8, qr_image),
                qr_payload=COALESCE($9, qr_payload),
                qr_expiration=COALESCE($10, qr_expiration),
                bank_slip_url=COALESCE($11, bank_slip_url),
                paid_at=CASE WHEN $12 THEN COALESCE(paid_at, NOW()) ELSE paid_at END,
                shipped_at=CASE WHEN $13 THEN COALESCE(shipped_at, NOW()) ELSE shipped_at END,
                delivered_at=CASE WHEN $14 THEN COALESCE(delivered_at, NOW()) ELSE delivered_at END,
                updated_at=NOW()
            WHERE id=$1 AND status = ANY($15)
            RETURNING ` + orderColumns

		var paymentStatus *string
		if tr.PaymentStatus != nil {
			s := string(*tr.PaymentStatus)
			paymentStatus = &s
		}

		updated, err := scanOrder(tx.QueryRow(ctx, query,
			orderID, tr.Status, paymentStatus, tr.TrackingCode, tr.Notes,
			paymentID, invoiceURL, qrImage, qrPayload, qrExpiration, bankSlipURL,
			tr.StampPaid, tr.StampShipped, tr.StampDelivered, expected,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				var exists bool
				if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE id=$1)`, orderID).Scan(&exists); err != nil {
					return err
				}
				if exists {
					return domainErrors.ErrIllegalTransition
				}
				return domainErrors.ErrNotFound
			}
			return err
		}

		items, err := loadOrderItems(ctx, tx, orderID)
		if err != nil {
			return err
		}
		updated.Items = items

		if tr.RestoreStock {
			for _, item := range items {
				if _, err := tx.Exec(ctx, `UPDATE products SET stock = stock + $2, updated_at = NOW() WHERE id=$1`, item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}

		order = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// --- ProductRepository implementation ---

const productColumns = `id, name, description, price, cost_price, promo_price, images,
    category_id, stock, min_stock, sizes, colors, active, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p      model.Product
		colors []byte
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CostPrice, &p.PromoPrice, &p.Images,
		&p.CategoryID, &p.Stock, &p.MinStock, &p.Sizes, &colors, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(colors) > 0 {
		if err := json.Unmarshal(colors, &p.Colors); err != nil {
			return nil, fmt.Errorf("decode colors: %w", err)
		}
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	colors, err := json.Marshal(product.Colors)
	if err != nil {
		return nil, fmt.Errorf("encode colors: %w", err)
	}
	const query = `INSERT INTO products (id, name, description, price, cost_price, promo_price, images, category_id, stock, min_stock, sizes, colors, active)
                   VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
                   RETURNING created_at, updated_at`
	err = r.storage.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.CostPrice, product.PromoPrice, product.Images,
		product.CategoryID, product.Stock, product.MinStock, product.Sizes, colors, product.Active,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	colors, err := json.Marshal(product.Colors)
	if err != nil {
		return fmt.Errorf("encode colors: %w", err)
	}
	const query = `UPDATE products SET
            name=$2, description=$3, price=$4, cost_price=$5, promo_price=$6, images=$7,
            category_id=$8, min_stock=$9, sizes=$10, colors=$11, active=$12, updated_at=NOW()
        WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.CostPrice, product.PromoPrice, product.Images,
		product.CategoryID, product.MinStock, product.Sizes, colors, product.Active,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	product, err := scanProduct(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) List(ctx context.Context, onlyActive bool) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) ListLowStock(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
              WHERE active AND min_stock IS NOT NULL AND stock <= min_stock
              ORDER BY stock`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// decrementStockTx is the single conditional statement that keeps stock
// non-negative: zero affected rows on an existing product means the decrement
// would oversell and is rejected.
func decrementStockTx(ctx context.Context, q querier, productID string, quantity int) error {
	tag, err := q.Exec(ctx, `UPDATE products SET stock = stock - $2, updated_at = NOW() WHERE id=$1 AND stock >= $2`, productID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id=$1)`, productID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domainErrors.ErrNotFound
		}
		return domainErrors.ErrInsufficientStock
	}
	return nil
}

func (r *productRepository) DecrementStock(ctx context.Context, productID string, quantity int) error {
	return decrementStockTx(ctx, r.storage.pool, productID, quantity)
}

func (r *productRepository) RestoreStock(ctx context.Context, productID string, quantity int) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE products SET stock = stock + $2, updated_at = NOW() WHERE id=$1`, productID, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- StaffRepository implementation ---

func (r *staffRepository) Create(ctx context.Context, login, passwordHash string, role model.StaffRole) (*model.Staff, error) {
	const query = `INSERT INTO staff (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	var s model.Staff
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, role).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	s.Login = login
	s.PasswordHash = passwordHash
	s.Role = role
	return &s, nil
}

func (r *staffRepository) GetByLogin(ctx context.Context, login string) (*model.Staff, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM staff WHERE login=$1`
	var s model.Staff
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&s.ID, &s.Login, &s.PasswordHash, &s.Role, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*model.Staff, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM staff WHERE id=$1`
	var s model.Staff
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Login, &s.PasswordHash, &s.Role, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
