package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/pkg/metrics"
)

// DBExecutor минимальный интерфейс для выполнения запросов
// Реализуется *sql.DB, *sql.Tx, *DB и *Tx
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type ctxKey int

const txCtxKey ctxKey = iota

// WithTx кладет транзакцию в контекст
// Репозитории достают её через GetExecutor
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txCtxKey, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она там есть,
// иначе - executor по умолчанию
func GetExecutor(ctx context.Context, def DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txCtxKey).(TxExecutor); ok {
		return tx
	}
	return def
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey).(TxExecutor)
	return ok
}

// DB обертка над *sql.DB, снимающая метрики времени выполнения запросов
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает *sql.DB сбором метрик запросов
func Wrap(db *sql.DB, m *metrics.Metrics) *DB {
	return &DB{db: db, metrics: m}
}

// WrapWithDefault оборачивает *sql.DB и запускает периодический сбор
// статистики connection pool до закрытия stopCh
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbName string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m)

	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				m.DBConnectionsOpen.WithLabelValues(dbName).Set(float64(stats.OpenConnections))
				m.DBConnectionsIdle.WithLabelValues(dbName).Set(float64(stats.Idle))
				m.DBConnectionsInUse.WithLabelValues(dbName).Set(float64(stats.InUse))
			}
		}
	}()

	return wrapped
}

// QueryContext выполняет запрос, возвращающий строки
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

// QueryRowContext выполняет запрос, возвращающий одну строку
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, nil)
	return row
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

// BeginTx начинает транзакцию; запросы внутри неё тоже попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

func (d *DB) observe(query string, start time.Time, err error) {
	if d.metrics == nil {
		return
	}

	op := queryOperation(query)
	status := "ok"
	if err != nil {
		status = "error"
	}

	d.metrics.DBQueriesTotal.WithLabelValues(op, status).Inc()
	d.metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Tx транзакция с метриками
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.parent.observe(query, start, nil)
	return row
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.parent.observe(query, start, err)
	return res, err
}

func (t *Tx) Commit() error   { return t.tx.Commit() }
func (t *Tx) Rollback() error { return t.tx.Rollback() }

// queryOperation достает первое слово запроса (SELECT/INSERT/UPDATE/DELETE)
func queryOperation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
