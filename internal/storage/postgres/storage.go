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

	domainErrors "github.com/creditum/creditum/internal/domain/errors"
	"github.com/creditum/creditum/internal/domain/model"
	"github.com/creditum/creditum/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on; tests
// substitute a mock through newPgxPool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
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

type customerRepository struct {
	storage *Storage
}

type loanRepository struct {
	storage *Storage
}

type seedRepository struct {
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
func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Loans() repository.LoanRepository {
	return &loanRepository{storage: s}
}

func (s *Storage) Seeds() repository.SeedRepository {
	return &seedRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
            id BIGSERIAL PRIMARY KEY,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            age INT NOT NULL,
            phone_number TEXT UNIQUE NOT NULL,
            monthly_salary NUMERIC(12,2) NOT NULL,
            approved_limit NUMERIC(12,2) NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS loans (
            id BIGSERIAL PRIMARY KEY,
            customer_id BIGINT NOT NULL REFERENCES customers(id),
            loan_amount NUMERIC(12,2) NOT NULL,
            tenure INT NOT NULL,
            interest_rate NUMERIC(5,2) NOT NULL,
            monthly_payment NUMERIC(12,2) NOT NULL,
            emis_paid_on_time INT NOT NULL DEFAULT 0,
            date_of_approval DATE NOT NULL,
            end_date DATE NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_loans_customer ON loans(customer_id, date_of_approval DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- CustomerRepository implementation ---

func (r *customerRepository) Create(ctx context.Context, customer model.Customer) (*model.Customer, error) {
	const query = `INSERT INTO customers (first_name, last_name, age, phone_number, monthly_salary, approved_limit)
                   VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query,
		customer.FirstName, customer.LastName, customer.Age,
		customer.PhoneNumber, customer.MonthlySalary, customer.ApprovedLimit,
	).Scan(&customer.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT id, first_name, last_name, age, phone_number, monthly_salary, approved_limit
                   FROM customers WHERE id=$1`
	customer, err := scanCustomerRow(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func scanCustomerRow(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Age, &c.PhoneNumber, &c.MonthlySalary, &c.ApprovedLimit)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// --- LoanRepository implementation ---

const loanColumns = `id, customer_id, loan_amount, tenure, interest_rate, monthly_payment, emis_paid_on_time, date_of_approval, end_date`

func (r *loanRepository) GetByID(ctx context.Context, id int64) (*model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id=$1`
	var l model.Loan
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.CustomerID, &l.LoanAmount, &l.Tenure, &l.InterestRate,
		&l.MonthlyPayment, &l.EMIsPaidOnTime, &l.DateOfApproval, &l.EndDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrLoanNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *loanRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE customer_id=$1 ORDER BY date_of_approval`
	rows, err := r.storage.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	return collectLoans(rows)
}

func (r *loanRepository) OriginateForCustomer(ctx context.Context, customerID int64, decide repository.OriginateFunc) (*model.Loan, error) {
	var created *model.Loan
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// The row lock serializes originations per customer: two
		// concurrent requests cannot both decide on the same history.
		const lockQuery = `SELECT id, first_name, last_name, age, phone_number, monthly_salary, approved_limit
                           FROM customers WHERE id=$1 FOR UPDATE`
		customer, err := scanCustomerRow(tx.QueryRow(ctx, lockQuery, customerID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrCustomerNotFound
			}
			return err
		}

		historyQuery := `SELECT ` + loanColumns + ` FROM loans WHERE customer_id=$1 ORDER BY date_of_approval`
		rows, err := tx.Query(ctx, historyQuery, customerID)
		if err != nil {
			return err
		}
		history, err := collectLoans(rows)
		if err != nil {
			return err
		}

		loan, err := decide(*customer, history)
		if err != nil {
			return err
		}
		if loan == nil {
			return nil
		}

		const insertQuery = `INSERT INTO loans (customer_id, loan_amount, tenure, interest_rate, monthly_payment, emis_paid_on_time, date_of_approval, end_date)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
		if err := tx.QueryRow(ctx, insertQuery,
			loan.CustomerID, loan.LoanAmount, loan.Tenure, loan.InterestRate,
			loan.MonthlyPayment, loan.EMIsPaidOnTime, loan.DateOfApproval, loan.EndDate,
		).Scan(&loan.ID); err != nil {
			return err
		}
		created = loan
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func collectLoans(rows pgx.Rows) ([]model.Loan, error) {
	defer rows.Close()

	var result []model.Loan
	for rows.Next() {
		var l model.Loan
		if err := rows.Scan(
			&l.ID, &l.CustomerID, &l.LoanAmount, &l.Tenure, &l.InterestRate,
			&l.MonthlyPayment, &l.EMIsPaidOnTime, &l.DateOfApproval, &l.EndDate,
		); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- SeedRepository implementation ---

func (r *seedRepository) SeedCustomers(ctx context.Context, customers []model.Customer) (int, error) {
	var inserted int
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		populated, err := tableHasRows(ctx, tx, "customers")
		if err != nil || populated {
			return err
		}

		const insertQuery = `INSERT INTO customers (id, first_name, last_name, age, phone_number, monthly_salary, approved_limit)
                             VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (id) DO NOTHING`
		for _, c := range customers {
			tag, err := tx.Exec(ctx, insertQuery,
				c.ID, c.FirstName, c.LastName, c.Age, c.PhoneNumber, c.MonthlySalary, c.ApprovedLimit)
			if err != nil {
				return err
			}
			inserted += int(tag.RowsAffected())
		}

		return advanceSequence(ctx, tx, "customers")
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *seedRepository) SeedLoans(ctx context.Context, loans []model.Loan) (int, error) {
	var inserted int
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		populated, err := tableHasRows(ctx, tx, "loans")
		if err != nil || populated {
			return err
		}

		const insertQuery = `INSERT INTO loans (id, customer_id, loan_amount, tenure, interest_rate, monthly_payment, emis_paid_on_time, date_of_approval, end_date)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) ON CONFLICT (id) DO NOTHING`
		for _, l := range loans {
			tag, err := tx.Exec(ctx, insertQuery,
				l.ID, l.CustomerID, l.LoanAmount, l.Tenure, l.InterestRate,
				l.MonthlyPayment, l.EMIsPaidOnTime, l.DateOfApproval, l.EndDate)
			if err != nil {
				return err
			}
			inserted += int(tag.RowsAffected())
		}

		return advanceSequence(ctx, tx, "loans")
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func tableHasRows(ctx context.Context, tx pgx.Tx, table string) (bool, error) {
	var populated bool
	err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+`)`).Scan(&populated)
	return populated, err
}

func advanceSequence(ctx context.Context, tx pgx.Tx, table string) error {
	query := `SELECT setval(pg_get_serial_sequence('` + table + `', 'id'), (SELECT COALESCE(MAX(id), 1) FROM ` + table + `))`
	_, err := tx.Exec(ctx, query)
	return err
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
