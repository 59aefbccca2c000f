package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finance-tracker/internal/entity/currency"
	"max.ks1230/finance-tracker/internal/entity/finance"
	"max.ks1230/finance-tracker/internal/logger"
	"max.ks1230/finance-tracker/internal/model/customerr"
)

const dsnTemplate = "user=%s password=%s host=%s port=%d dbname=%s sslmode=disable"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Port() int
	Username() string
	Password() string
	Database() string
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Port(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresStorage{db}, nil
}

// EnsureProfile creates the profile row on first touch. Every
// authenticated request path goes through this before reading data.
func (s *PostgresStorage) EnsureProfile(ctx context.Context, profile finance.Profile) error {
	query := psql.Insert("profiles").
		Columns("id", "email", "name", "created_at").
		Values(profile.ID, profile.Email, profile.Name, time.Now()).
		Suffix("ON CONFLICT(id) DO NOTHING")

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "ensure profile")
}

func (s *PostgresStorage) GetProfile(ctx context.Context, userID int64) (finance.Profile, error) {
	query := psql.Select("id", "email", "name", "created_at").
		From("profiles").
		Where(sq.Eq{"id": userID})

	var p finance.Profile
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&p.ID, &p.Email, &p.Name, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return finance.Profile{}, &customerr.NotFoundError{Entity: "profile", ID: userID}
	}
	return p, errors.Wrap(err, "get profile")
}

func (s *PostgresStorage) SaveTransaction(ctx context.Context, userID int64, tx finance.Transaction) error {
	query := psql.Insert("transactions").
		Columns("user_id", "name", "amount", "date", "category", "recurring", "created_at").
		Values(userID, tx.Name, tx.Amount, tx.Date, tx.Category, tx.Recurring, time.Now())

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save transaction")
}

func (s *PostgresStorage) GetTransactions(ctx context.Context, userID int64) ([]finance.Transaction, error) {
	query := psql.Select("id", "user_id", "name", "amount", "date", "category", "recurring", "created_at").
		From("transactions").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get transactions")
	}
	defer closeRows(rows)

	txs := make([]finance.Transaction, 0)
	for rows.Next() {
		var t finance.Transaction
		err = rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Amount, &t.Date, &t.Category, &t.Recurring, &t.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "get transactions")
		}
		txs = append(txs, t)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get transactions")
	}
	return txs, nil
}

func (s *PostgresStorage) DeleteTransaction(ctx context.Context, userID, id int64) error {
	return s.deleteOwned(ctx, "transactions", "transaction", userID, id)
}

func (s *PostgresStorage) SaveBudget(ctx context.Context, userID int64, budget finance.Budget) error {
	query := psql.Insert("budgets").
		Columns("user_id", "category", "maximum", "theme", "created_at").
		Values(userID, budget.Category, budget.Maximum, budget.Theme, time.Now())

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save budget")
}

func (s *PostgresStorage) GetBudgets(ctx context.Context, userID int64) ([]finance.Budget, error) {
	query := psql.Select("id", "user_id", "category", "maximum", "theme", "created_at").
		From("budgets").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get budgets")
	}
	defer closeRows(rows)

	budgets := make([]finance.Budget, 0)
	for rows.Next() {
		var b finance.Budget
		err = rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Maximum, &b.Theme, &b.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "get budgets")
		}
		budgets = append(budgets, b)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get budgets")
	}
	return budgets, nil
}

func (s *PostgresStorage) DeleteBudget(ctx context.Context, userID, id int64) error {
	return s.deleteOwned(ctx, "budgets", "budget", userID, id)
}

func (s *PostgresStorage) SavePot(ctx context.Context, userID int64, pot finance.Pot) error {
	query := psql.Insert("pots").
		Columns("user_id", "name", "target", "total", "theme", "created_at").
		Values(userID, pot.Name, pot.Target, pot.Total, pot.Theme, time.Now())

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save pot")
}

func (s *PostgresStorage) GetPots(ctx context.Context, userID int64) ([]finance.Pot, error) {
	query := psql.Select("id", "user_id", "name", "target", "total", "theme", "created_at").
		From("pots").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get pots")
	}
	defer closeRows(rows)

	pots := make([]finance.Pot, 0)
	for rows.Next() {
		var p finance.Pot
		err = rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Target, &p.Total, &p.Theme, &p.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "get pots")
		}
		pots = append(pots, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get pots")
	}
	return pots, nil
}

// UpdatePotTotal moves money in or out of a pot. delta may be
// negative; the total never drops below zero.
func (s *PostgresStorage) UpdatePotTotal(ctx context.Context, userID, id int64, delta float64) error {
	query := psql.Update("pots").
		Set("total", sq.Expr("GREATEST(total + ?, 0)", delta)).
		Where(sq.Eq{"id": id, "user_id": userID})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "update pot total")
	}
	return ensureAffected(res, "pot", id)
}

func (s *PostgresStorage) DeletePot(ctx context.Context, userID, id int64) error {
	return s.deleteOwned(ctx, "pots", "pot", userID, id)
}

func (s *PostgresStorage) SaveBill(ctx context.Context, userID int64, bill finance.RecurringBill) error {
	query := psql.Insert("recurring_bills").
		Columns("user_id", "name", "amount", "due_date", "created_at").
		Values(userID, bill.Name, bill.Amount, bill.DueDate, time.Now())

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save bill")
}

func (s *PostgresStorage) GetBills(ctx context.Context, userID int64) ([]finance.RecurringBill, error) {
	query := psql.Select("id", "user_id", "name", "amount", "due_date", "created_at").
		From("recurring_bills").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("due_date")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get bills")
	}
	defer closeRows(rows)

	bills := make([]finance.RecurringBill, 0)
	for rows.Next() {
		var b finance.RecurringBill
		err = rows.Scan(&b.ID, &b.UserID, &b.Name, &b.Amount, &b.DueDate, &b.CreatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "get bills")
		}
		bills = append(bills, b)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get bills")
	}
	return bills, nil
}

func (s *PostgresStorage) DeleteBill(ctx context.Context, userID, id int64) error {
	return s.deleteOwned(ctx, "recurring_bills", "bill", userID, id)
}

func (s *PostgresStorage) GetSettings(ctx context.Context, userID int64) (finance.Settings, error) {
	query := psql.Select("user_id", "currency", "base_currency", "budget_alerts", "bill_reminders", "goal_milestones", "language").
		From("user_settings").
		Where(sq.Eq{"user_id": userID})

	var set finance.Settings
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(
		&set.UserID, &set.Currency, &set.BaseCurrency,
		&set.BudgetAlerts, &set.BillReminders, &set.GoalMilestones, &set.Language)
	if errors.Is(err, sql.ErrNoRows) {
		// no row yet means defaults everywhere
		return finance.Settings{UserID: userID}, nil
	}
	return set, errors.Wrap(err, "get settings")
}

func (s *PostgresStorage) SaveSettings(ctx context.Context, set finance.Settings) error {
	query := psql.Insert("user_settings").
		Columns("user_id", "currency", "base_currency", "budget_alerts", "bill_reminders", "goal_milestones", "language").
		Values(set.UserID, set.Currency, set.BaseCurrency, set.BudgetAlerts, set.BillReminders, set.GoalMilestones, set.Language).
		Suffix("ON CONFLICT(user_id) DO UPDATE SET currency = ?, base_currency = ?, budget_alerts = ?, bill_reminders = ?, goal_milestones = ?, language = ?",
			set.Currency, set.BaseCurrency, set.BudgetAlerts, set.BillReminders, set.GoalMilestones, set.Language)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save settings")
}

func (s *PostgresStorage) SaveRate(ctx context.Context, name string, val float64) error {
	query := psql.Insert("rates").
		Columns("name", "base_rate", "updated_at").
		Values(name, val, time.Now()).
		Suffix("ON CONFLICT(name) DO UPDATE SET base_rate = ?, updated_at = ?", val, time.Now())

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save rate")
}

// LoadRates returns the persisted rate table, or the fallback table
// when nothing has been pulled yet.
func (s *PostgresStorage) LoadRates(ctx context.Context) (currency.RateTable, error) {
	query := psql.Select("name", "base_rate", "updated_at").
		From("rates")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return currency.RateTable{}, errors.Wrap(err, "load rates")
	}
	defer closeRows(rows)

	table := currency.RateTable{Rates: make(map[string]float64)}
	for rows.Next() {
		var rate currency.Rate
		err = rows.Scan(&rate.Name, &rate.BaseRate, &rate.UpdatedAt)
		if err != nil {
			return currency.RateTable{}, errors.Wrap(err, "load rates")
		}
		table.Rates[rate.Name] = rate.BaseRate
		if rate.UpdatedAt.After(table.UpdatedAt) {
			table.UpdatedAt = rate.UpdatedAt
		}
	}
	if err = rows.Err(); err != nil {
		return currency.RateTable{}, errors.Wrap(err, "load rates")
	}

	if len(table.Rates) == 0 {
		return currency.FallbackTable(), nil
	}
	return table, nil
}

func (s *PostgresStorage) deleteOwned(ctx context.Context, table, entity string, userID, id int64) error {
	query := psql.Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID})

	res, err := query.RunWith(s.db).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "delete "+entity)
	}
	return ensureAffected(res, entity, id)
}

func ensureAffected(res sql.Result, entity string, id int64) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete "+entity)
	}
	if affected == 0 {
		return &customerr.NotFoundError{Entity: entity, ID: id}
	}
	return nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logger.Error("error closing rows", zap.Error(err))
	}
}
