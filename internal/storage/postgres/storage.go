package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/domain/model"
	"github.com/jokistudio/portal/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool used by the storage; tests swap in
// a pgxmock pool through the same interface.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type portfolioRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
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
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Portfolios() repository.PortfolioRepository {
	return &portfolioRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            name TEXT NOT NULL,
            image TEXT NOT NULL DEFAULT '',
            role TEXT NOT NULL DEFAULT 'USER' CHECK (role IN ('USER', 'ADMIN')),
            password_hash TEXT,
            fcm_token TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS pesanan (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            nama TEXT NOT NULL,
            nama_aplikasi TEXT NOT NULL,
            keperluan TEXT NOT NULL,
            teknologi TEXT[] NOT NULL,
            fitur TEXT[] NOT NULL,
            deadline TIMESTAMPTZ NOT NULL,
            akun_tiktok TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'PENDING'
                CHECK (status IN ('PENDING', 'PROSES', 'SELESAI', 'DITOLAK')),
            bukti_dp TEXT,
            bukti_pelunasan TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS portfolio (
            id BIGSERIAL PRIMARY KEY,
            nama TEXT NOT NULL,
            deskripsi TEXT NOT NULL,
            tech_stack TEXT[] NOT NULL,
            link TEXT NOT NULL,
            image TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_pesanan_user ON pesanan(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

const userColumns = `id, email, name, image, role, password_hash, fcm_token, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Image, &u.Role, &u.PasswordHash, &u.FCMToken, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Upsert(ctx context.Context, identity model.Identity) (*model.User, error) {
	// The no-op conflict update returns the stored row, so a returning
	// visitor keeps the role assigned at first sign-in.
	const query = `INSERT INTO users (email, name, image, role) VALUES ($1, $2, $3, 'USER')
                   ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
                   RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, identity.Email, identity.Name, identity.Image))
}

func (r *userRepository) EnsureAdmin(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	// Existing accounts are promoted and get the fresh credential; the
	// stored name is kept so provisioning never clobbers a profile.
	const query = `INSERT INTO users (email, name, role, password_hash) VALUES ($1, $2, 'ADMIN', $3)
                   ON CONFLICT (email) DO UPDATE SET role = 'ADMIN', password_hash = EXCLUDED.password_hash
                   RETURNING ` + userColumns
	return scanUser(r.storage.pool.QueryRow(ctx, query, email, name, passwordHash))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) SetFCMToken(ctx context.Context, userID int64, token *string) error {
	const query = `UPDATE users SET fcm_token=$2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, userID, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) ListAdminTokens(ctx context.Context) ([]string, error) {
	const query = `SELECT fcm_token FROM users WHERE role='ADMIN' AND fcm_token IS NOT NULL`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, user_id, nama, nama_aplikasi, keperluan, teknologi, fitur,
                      deadline, akun_tiktok, status, bukti_dp, bukti_pelunasan, created_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Nama, &o.NamaAplikasi, &o.Keperluan, &o.Teknologi, &o.Fitur,
		&o.Deadline, &o.AkunTiktok, &o.Status, &o.BuktiDP, &o.BuktiPelunasan, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) Create(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
	const query = `INSERT INTO pesanan (user_id, nama, nama_aplikasi, keperluan, teknologi, fitur, deadline, akun_tiktok, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'PENDING')
                   RETURNING ` + orderColumns
	return scanOrder(r.storage.pool.QueryRow(ctx, query,
		userID, draft.Nama, draft.NamaAplikasi, draft.Keperluan, draft.Teknologi, draft.Fitur, draft.Deadline, draft.AkunTiktok))
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM pesanan WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM pesanan WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
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

func (r *orderRepository) ListAll(ctx context.Context) ([]model.OrderWithOwner, error) {
	const query = `SELECT p.id, p.user_id, p.nama, p.nama_aplikasi, p.keperluan, p.teknologi, p.fitur,
                          p.deadline, p.akun_tiktok, p.status, p.bukti_dp, p.bukti_pelunasan, p.created_at,
                          u.name, u.email
                   FROM pesanan p JOIN users u ON u.id = p.user_id
                   ORDER BY p.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderWithOwner
	for rows.Next() {
		var o model.OrderWithOwner
		err := rows.Scan(&o.ID, &o.UserID, &o.Nama, &o.NamaAplikasi, &o.Keperluan, &o.Teknologi, &o.Fitur,
			&o.Deadline, &o.AkunTiktok, &o.Status, &o.BuktiDP, &o.BuktiPelunasan, &o.CreatedAt,
			&o.OwnerName, &o.OwnerEmail)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// conditionalUpdate runs an UPDATE ... RETURNING guarded by lifecycle
// preconditions. A guard miss is reported as matched=false, never as a
// partial write: precondition check and mutation are one statement.
func (r *orderRepository) conditionalUpdate(ctx context.Context, query string, args ...any) (*model.Order, bool, error) {
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return order, true, nil
}

func (r *orderRepository) AttachDepositProof(ctx context.Context, orderID, userID int64, proofURL string) (*model.Order, bool, error) {
	const query = `UPDATE pesanan SET bukti_dp=$3, status='PROSES'
                   WHERE id=$1 AND user_id=$2 AND status='PENDING'
                   RETURNING ` + orderColumns
	return r.conditionalUpdate(ctx, query, orderID, userID, proofURL)
}

func (r *orderRepository) AttachFinalProof(ctx context.Context, orderID, userID int64, proofURL string) (*model.Order, bool, error) {
	const query = `UPDATE pesanan SET bukti_pelunasan=$3
                   WHERE id=$1 AND user_id=$2 AND status='SELESAI' AND bukti_dp IS NOT NULL
                   RETURNING ` + orderColumns
	return r.conditionalUpdate(ctx, query, orderID, userID, proofURL)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to model.OrderStatus) (*model.Order, bool, error) {
	// A settled order (final proof attached) accepts no transition; the
	// guard closes the window between the caller's read and this update.
	const query = `UPDATE pesanan SET status=$3
                   WHERE id=$1 AND status=$2 AND bukti_pelunasan IS NULL
                   RETURNING ` + orderColumns
	return r.conditionalUpdate(ctx, query, orderID, from, to)
}

// --- PortfolioRepository implementation ---

const portfolioColumns = `id, nama, deskripsi, tech_stack, link, image, created_at`

func scanPortfolio(row pgx.Row) (*model.Portfolio, error) {
	var p model.Portfolio
	err := row.Scan(&p.ID, &p.Nama, &p.Deskripsi, &p.TechStack, &p.Link, &p.Image, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *portfolioRepository) Create(ctx context.Context, p model.Portfolio) (*model.Portfolio, error) {
	const query = `INSERT INTO portfolio (nama, deskripsi, tech_stack, link, image)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING ` + portfolioColumns
	return scanPortfolio(r.storage.pool.QueryRow(ctx, query, p.Nama, p.Deskripsi, p.TechStack, p.Link, p.Image))
}

func (r *portfolioRepository) GetByID(ctx context.Context, id int64) (*model.Portfolio, error) {
	const query = `SELECT ` + portfolioColumns + ` FROM portfolio WHERE id=$1`
	item, err := scanPortfolio(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *portfolioRepository) List(ctx context.Context) ([]model.Portfolio, error) {
	const query = `SELECT ` + portfolioColumns + ` FROM portfolio ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Portfolio
	for rows.Next() {
		item, err := scanPortfolio(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *portfolioRepository) Update(ctx context.Context, p model.Portfolio) (*model.Portfolio, error) {
	const query = `UPDATE portfolio SET nama=$2, deskripsi=$3, tech_stack=$4, link=$5, image=$6
                   WHERE id=$1
                   RETURNING ` + portfolioColumns
	item, err := scanPortfolio(r.storage.pool.QueryRow(ctx, query, p.ID, p.Nama, p.Deskripsi, p.TechStack, p.Link, p.Image))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM portfolio WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
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
